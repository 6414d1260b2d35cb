// Package dfs: slice helpers shared by the cycle code.
package dfs

import "strings"

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse returns a new slice with the elements of s in reverse order.
func Reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length slices: −1, 0 or +1.
func Compare(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// JoinSig joins c with commas into a signature.
func JoinSig(c []string) string { return strings.Join(c, ",") }

// MinimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm.
//
// Steps:
//  1. Scan s doubled, of length 2n, keeping failure links f (−1 initially).
//  2. Track the candidate start k; a smaller element on a mismatch moves k.
//  3. Copy the n elements starting at k.
//
// Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]string(nil), doubled[k:k+n]...)
}
