package util

import "sort"

// Map applies fn to every element and returns the results in order.
func Map[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// Filter returns the elements for which keep reports true, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortedBy returns a copy of items sorted by less. The input slice is
// left untouched.
func SortedBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
