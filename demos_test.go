package blockfunc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldStuff(t *testing.T) {
	var buf bytes.Buffer
	var got []any
	require.NoError(t, YieldStuff(&buf, Collect(&got)))

	assert.Equal(t, []any{3, "cow", 2.09}, got)
	assert.Equal(t, "start\nstop\n", buf.String())
}

func TestYieldStuff_NilBlock(t *testing.T) {
	var buf bytes.Buffer
	err := YieldStuff(&buf, nil)

	require.ErrorIs(t, err, ErrNilBlock)
	assert.Equal(t, "start\n", buf.String())
}

func TestFib(t *testing.T) {
	tests := map[int][]int{
		1:  {1},
		2:  {1, 1},
		3:  {1, 1, 2},
		5:  {1, 1, 2, 3, 5},
		10: {1, 1, 2, 3, 5, 8, 13, 21, 34, 55},
	}

	for n, want := range tests {
		var got []int
		require.NoError(t, Fib(n, Collect(&got)))
		assert.Equal(t, want, got, "Fib(%d)", n)
	}
}

func TestFib_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		calls := 0
		err := Fib(n, func(int) { calls++ })
		assert.ErrorIs(t, err, ErrInvalidArgument, "Fib(%d)", n)
		assert.Zero(t, calls)
	}
}

func TestFib_IntLimit(t *testing.T) {
	var got []int
	require.NoError(t, Fib(MaxFib, Collect(&got)))
	require.Len(t, got, MaxFib)
	assert.Equal(t, 7540113804746346429, got[MaxFib-1])
	for i := 2; i < len(got); i++ {
		require.Equal(t, got[i-2]+got[i-1], got[i], "value %d", i)
	}

	calls := 0
	err := Fib(MaxFib+1, func(int) { calls++ })
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, MaxFib+1, valErr.Value)
	assert.Zero(t, calls)

	count := 0
	for range FibSeq(1000) {
		count++
	}
	assert.Equal(t, MaxFib, count)
}

func TestMyTimes(t *testing.T) {
	var got []int
	require.NoError(t, MyTimes(5, Collect(&got)))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	for _, n := range []int{0, -3} {
		calls := 0
		require.NoError(t, MyTimes(n, func(int) { calls++ }))
		assert.Zero(t, calls, "MyTimes(%d)", n)
	}
}

func TestMyTimes_Squares(t *testing.T) {
	var squares []int
	require.NoError(t, MyTimes(5, func(n int) { squares = append(squares, n*n) }))
	assert.Equal(t, []int{0, 1, 4, 9, 16}, squares)
}

func TestFibSeq_Break(t *testing.T) {
	var got []int
	for f := range FibSeq(50) {
		if f > 20 {
			break
		}
		got = append(got, f)
	}
	assert.Equal(t, []int{1, 1, 2, 3, 5, 8, 13}, got)
}
