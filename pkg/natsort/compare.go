package natsort

import (
	"cmp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Compare orders two file names naturally and returns -1, 0 or 1.
//
// Base names are compared first and extensions only break ties. Runs of
// digits and dots are compared by numeric value, so "page_5" sorts before
// "page_10" and "page_01.5" between "page_01" and "page_02". Numbers of equal
// value fall back to comparing their text, which puts "01" before "1".
// Everything else is compared byte by byte, upper-cased first when foldCase
// is set. Upper-casing uses the full Unicode mapping, which can change the
// length of a name: "ß" becomes "SS", so "straße" and "STRASSE" compare
// equal when folding case.
//
// Names with an empty base name compare equal to everything.
func Compare(a, b string, foldCase bool) int {
	pa, pb := Split(a), Split(b)
	if pa.Basename == "" || pb.Basename == "" {
		return 0
	}

	if foldCase {
		upper := cases.Upper(language.Und)
		pa.Basename, pa.Extension = upper.String(pa.Basename), upper.String(pa.Extension)
		pb.Basename, pb.Extension = upper.String(pb.Basename), upper.String(pb.Extension)
	}

	if c := compareNatural(pa.Basename, pb.Basename); c != 0 {
		return c
	}
	return compareNatural(pa.Extension, pb.Extension)
}

func compareNatural(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if i < len(a) && j < len(b) && isNumeric(a[i]) && isNumeric(b[j]) {
			va, okA := parseNumber(a[i:])
			vb, okB := parseNumber(b[j:])
			if okA && okB {
				if c := cmp.Compare(va, vb); c != 0 {
					return c
				}
			}
		}

		// The shorter string compares as if padded with NUL bytes.
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
			i++
		}
		if j < len(b) {
			cb = b[j]
			j++
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumeric(c byte) bool { return isDigit(c) || c == '.' }

// parseNumber parses the longest prefix of s of the form digits[.digits] as
// a single-precision float. It fails for prefixes without digits and for
// values out of float32 range.
func parseNumber(s string) (float32, bool) {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	digits := n
	if n < len(s) && s[n] == '.' {
		frac := n + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		digits += frac - n - 1
		if digits > 0 {
			n = frac
		}
	}
	if digits == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:n], 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}
