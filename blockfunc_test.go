package blockfunc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ============================================================================
// YieldFunc Tests
// ============================================================================

func TestYieldFunc_Empty(t *testing.T) {
	called := false
	block := YieldFunc[int](func(int) { called = true }).Empty()
	block.Yield(1)
	assert.False(t, called)
}

func TestYieldFunc_Compose(t *testing.T) {
	var order []string
	first := YieldFunc[string](func(s string) { order = append(order, "first:"+s) })
	second := YieldFunc[string](func(s string) { order = append(order, "second:"+s) })

	first.Compose(second).Yield("x")

	assert.Equal(t, []string{"first:x", "second:x"}, order)
}

func TestYieldFunc_Filter(t *testing.T) {
	var got []int
	block := Collect(&got).Filter(func(n int) bool { return n%2 == 0 })

	require.NoError(t, MyTimes(7, block))
	assert.Equal(t, []int{0, 2, 4, 6}, got)
}

func TestYieldFunc_TapAndCount(t *testing.T) {
	var tapped, got []int
	count := 0
	block := Collect(&got).Tap(func(n int) { tapped = append(tapped, n) }).Count(&count)

	require.NoError(t, MyTimes(3, block))
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 1, 2}, tapped)
	assert.Equal(t, got, tapped)
}

// ============================================================================
// IndexedFunc / BlockFunc Tests
// ============================================================================

func TestIndexedFunc_ComposeAndDropIndex(t *testing.T) {
	var pairs []Pair[string]
	var values []string
	block := CollectPairs(&pairs).Compose(DropIndex(Collect(&values)))

	require.NoError(t, Slice[string]{"a", "b"}.MyEachWithIndex(block))
	assert.Equal(t, []Pair[string]{{0, "a"}, {1, "b"}}, pairs)
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestBlockFunc_Compose(t *testing.T) {
	n := 0
	inc := BlockFunc(func() { n++ })
	inc.Compose(inc).Compose(inc.Empty()).Run()
	assert.Equal(t, 2, n)
}

// ============================================================================
// Nil Block Tests
// ============================================================================

func TestNilBlock(t *testing.T) {
	tests := map[string]struct {
		run     func() error
		wantErr bool
	}{
		"MyTimes with values":        {run: func() error { return MyTimes(3, nil) }, wantErr: true},
		"MyTimes without values":     {run: func() error { return MyTimes(0, nil) }},
		"Fib":                        {run: func() error { return Fib(1, nil) }, wantErr: true},
		"PrimesLessThan with values": {run: func() error { return Int(10).PrimesLessThan(nil) }, wantErr: true},
		"PrimesLessThan no primes":   {run: func() error { return Int(2).PrimesLessThan(nil) }},
		"Digits":                     {run: func() error { return Int(7).Digits(nil) }, wantErr: true},
		"JustLetters digits only":    {run: func() error { return String("123").JustLetters(nil) }},
		"JustLetters":                {run: func() error { return String("a").JustLetters(nil) }, wantErr: true},
		"MyEach empty":               {run: func() error { return Slice[int](nil).MyEach(nil) }},
		"MyEachWithIndex":            {run: func() error { return Slice[int]{1}.MyEachWithIndex(nil) }, wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.run()
			if !test.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNilBlock)

			var invErr *InvocationError
			require.True(t, errors.As(err, &invErr))
			assert.NotEmpty(t, invErr.Routine)
		})
	}
}
