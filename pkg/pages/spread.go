package pages

import (
	"strings"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
)

// SinglePage selects which pages double page mode shows on their own.
// The values are flags; [SingleAlways] combines both rules.
type SinglePage int

const (
	SingleNever  SinglePage = 0
	SingleTitle  SinglePage = 1 // the first page
	SingleWide   SinglePage = 2 // a page wider than tall, and the page before it
	SingleAlways            = SingleTitle | SingleWide
)

var singlePageNames = [...]string{"never", "title", "wide", "always"}

func (s SinglePage) String() string {
	if s < SingleNever || s > SingleAlways {
		return "unknown"
	}
	return singlePageNames[s]
}

// ParseSinglePage parses a name as printed by [SinglePage.String].
func ParseSinglePage(s string) (SinglePage, error) {
	for i, name := range singlePageNames {
		if strings.EqualFold(s, name) {
			return SinglePage(i), nil
		}
	}
	return SingleNever, errs.New(errs.ErrCodeInvalidInput,
		"invalid double page mode %q (want one of %s)", s, strings.Join(singlePageNames[:], ", "))
}

// Spreads pages through a book the way a reader does. A spread starts at
// the current page and shows it alone or together with the next one.
//
// In double page mode two pages are paired unless [Spreads.Single] keeps
// the current page alone: the title page, or a pair in which either page
// is wider than tall. Paging steps over the whole spread, and stepping back
// lands on the start of the previous spread.
type Spreads struct {
	Sizes  []layout.Vec2 // page sizes in reading order
	Double bool
	Single SinglePage
}

// alone reports whether double page mode shows page index by itself.
func (s Spreads) alone(index int) bool {
	if index == 0 && s.Single&SingleTitle != 0 {
		return true
	}
	if s.Single&SingleWide == 0 || index < 0 || index >= len(s.Sizes)-1 {
		return false
	}
	for _, size := range s.Sizes[index : index+2] {
		if size[0] > size[1] {
			return true
		}
	}
	return false
}

// At returns the half-open page range [start, end) of the spread starting
// at page index. index is clamped into range.
func (s Spreads) At(index int) (start, end int) {
	n := len(s.Sizes)
	if n == 0 {
		return 0, 0
	}
	start = max(0, min(index, n-1))
	if s.Double && start < n-1 && !s.alone(start) {
		return start, start + 2
	}
	return start, start + 1
}

// Next returns the first page of the spread after the one at index, or
// index itself at the end of the book.
func (s Spreads) Next(index int) int {
	next := index + 1
	if s.Double && !s.alone(index) {
		next++
	}
	if next >= len(s.Sizes) {
		return index
	}
	return next
}

// Prev returns the first page of the spread before the one at index. It
// stays on the first page.
func (s Spreads) Prev(index int) int {
	if index <= 0 {
		return 0
	}
	prev := index - 1
	if s.Double && !s.alone(prev-1) {
		prev--
	}
	return max(prev, 0)
}

// All returns every spread of the book from the first page on.
func (s Spreads) All() [][2]int {
	var spreads [][2]int
	if len(s.Sizes) == 0 {
		return spreads
	}
	for index := 0; ; {
		start, end := s.At(index)
		spreads = append(spreads, [2]int{start, end})
		next := s.Next(index)
		if next == index {
			return spreads
		}
		index = next
	}
}
