package natsort

import "slices"

// Less reports whether a sorts before b, ignoring case.
func Less(a, b string) bool { return Compare(a, b, true) < 0 }

// SortFunc returns a comparison function for [slices.SortStableFunc].
func SortFunc(foldCase bool) func(a, b string) int {
	return func(a, b string) int { return Compare(a, b, foldCase) }
}

// Sort sorts names in natural order. Names that compare equal keep their
// relative order.
func Sort(names []string, foldCase bool) {
	slices.SortStableFunc(names, SortFunc(foldCase))
}
