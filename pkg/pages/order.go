package pages

import (
	"cmp"
	"os"
	"slices"
	"strings"
	"time"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/natsort"
)

// SortBy selects the key files are ordered by.
type SortBy int

const (
	SortNone        SortBy = iota // listing order
	SortName                      // natural order of names
	SortSize                      // smallest file first
	SortModified                  // most recently modified first
	SortNameLiteral               // byte order of names
)

var sortByNames = [...]string{"none", "name", "size", "modified", "literal"}

func (s SortBy) String() string {
	if s < SortNone || s > SortNameLiteral {
		return "unknown"
	}
	return sortByNames[s]
}

// ParseSortBy parses a sort key name as printed by [SortBy.String].
func ParseSortBy(s string) (SortBy, error) {
	for i, name := range sortByNames {
		if strings.EqualFold(s, name) {
			return SortBy(i), nil
		}
	}
	return SortNone, errs.New(errs.ErrCodeInvalidInput,
		"invalid sort key %q (want one of %s)", s, strings.Join(sortByNames[:], ", "))
}

// Order is a file ordering policy. Descending reverses the whole result,
// so descending by size puts the largest file first.
type Order struct {
	By         SortBy
	Descending bool
	FoldCase   bool // ignore case for SortName
}

// NaturalOrder is ascending natural order ignoring case.
var NaturalOrder = Order{By: SortName, FoldCase: true}

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (o Order) needsStat() bool {
	return o.By == SortSize || o.By == SortModified
}

func (o Order) sort(files []fileInfo) {
	var compare func(a, b fileInfo) int
	switch o.By {
	case SortName:
		compare = func(a, b fileInfo) int { return natsort.Compare(a.name, b.name, o.FoldCase) }
	case SortSize:
		compare = func(a, b fileInfo) int { return cmp.Compare(a.size, b.size) }
	case SortModified:
		compare = func(a, b fileInfo) int { return b.modTime.Compare(a.modTime) }
	case SortNameLiteral:
		compare = func(a, b fileInfo) int { return strings.Compare(a.name, b.name) }
	}
	if compare != nil {
		slices.SortStableFunc(files, compare)
	}
	if o.Descending {
		slices.Reverse(files)
	}
}

// SortPaths orders paths in place. Names are compared as given; size and
// modification time are read with os.Stat when the order needs them.
func SortPaths(paths []string, o Order) error {
	files := make([]fileInfo, len(paths))
	for i, p := range paths {
		files[i].name = p
		if !o.needsStat() {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				return errs.Wrap(errs.ErrCodeFileNotFound, err, "page %s", p)
			}
			return err
		}
		files[i].size, files[i].modTime = info.Size(), info.ModTime()
	}

	o.sort(files)
	for i, f := range files {
		paths[i] = f.name
	}
	return nil
}
