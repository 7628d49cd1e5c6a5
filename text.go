package blockfunc

import "iter"

// String carries the string extensions.
type String string

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Letters yields the characters of s matching [a-zA-Z], in order.
func (s String) Letters() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if isASCIILetter(r) && !yield(r) {
				return
			}
		}
	}
}

// JustLetters invokes fn with each ASCII letter of s and skips everything else.
func (s String) JustLetters(fn YieldFunc[rune]) error {
	return drain("JustLetters", s.Letters(), fn)
}
