// Package zarray computes Z-arrays: for every position i of a sequence s,
// z[i] is the length of the longest common prefix of s and s[i:].
//
// 🚀 What is a Z-array?
//
//	s = a a b x a a b
//	z = 7 1 0 0 3 1 0
//
//	z[0] is len(s) by definition; z[4] = 3 because s[4:] = "aab" repeats the
//	first three characters of s.
//
// ✨ Key features:
//   - Build works for any comparable element type.
//   - BuildString is the byte-wise shortcut for strings.
//   - Occurrences finds every match of a pattern in a text in O(|p|+|t|).
//
// Complexity:
//
//   - Time:   O(n), each character is matched successfully at most once.
//   - Memory: O(n) for the result.
//
// The result is a plain []int owned by the caller.
package zarray
