package zarray

// Build returns the Z-array of s.
//
// Algorithm Outline:
//  1. z[0] = n.
//  2. Keep the window [l, r): the rightmost known segment with s[l:r] == s[0:r-l].
//  3. For i = 1..n-1:
//     a. If i < r, seed z[i] = min(z[i-l], r-i) without comparing characters.
//     b. Extend while s[z[i]] == s[i+z[i]].
//     c. If i+z[i] > r, move the window to [i, i+z[i]).
//
// Edge cases: an empty input yields an empty, non-nil slice.
// Complexity: O(n) time and memory.
func Build[T comparable](s []T) []int {
	n := len(s)
	z := make([]int, n)
	if n == 0 {
		return z
	}
	z[0] = n

	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(z[i-l], r-i)
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}

	return z
}

// BuildString returns the Z-array of the bytes of s.
func BuildString(s string) []int {
	return Build([]byte(s))
}

// Occurrences returns, in ascending order, every offset at which pattern
// occurs in text. An empty pattern yields nil.
//
// The Z-array of pattern++text is scanned for positions in the text part whose
// common prefix with the whole sequence reaches len(pattern). No separator is
// needed: z-values there may exceed len(pattern) without changing the answer.
//
// Complexity: O(|pattern| + |text|).
func Occurrences[T comparable](pattern, text []T) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}

	joined := make([]T, 0, m+len(text))
	joined = append(joined, pattern...)
	joined = append(joined, text...)
	z := Build(joined)

	var hits []int
	for i := m; i+m <= len(joined); i++ {
		if z[i] >= m {
			hits = append(hits, i-m)
		}
	}

	return hits
}
