package pages

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
)

// writeSized creates name in dir with size bytes and the given age.
func writeSized(t *testing.T, dir, name string, size int, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	mod := time.Now().Add(-age)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestListOrder(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "page10.png", 300, 3*time.Hour)
	writeSized(t, dir, "page2.png", 100, 1*time.Hour)
	writeSized(t, dir, "Page1.png", 200, 2*time.Hour)
	writeSized(t, dir, "notes.txt", 50, 0)

	tests := []struct {
		name  string
		order Order
		want  []string
	}{
		{"natural", NaturalOrder, []string{"Page1.png", "page2.png", "page10.png"}},
		{"natural descending", Order{By: SortName, FoldCase: true, Descending: true}, []string{"page10.png", "page2.png", "Page1.png"}},
		{"natural case sensitive", Order{By: SortName}, []string{"Page1.png", "page2.png", "page10.png"}},
		{"literal", Order{By: SortNameLiteral}, []string{"Page1.png", "page10.png", "page2.png"}},
		{"size", Order{By: SortSize}, []string{"page2.png", "Page1.png", "page10.png"}},
		{"size descending", Order{By: SortSize, Descending: true}, []string{"page10.png", "Page1.png", "page2.png"}},
		{"modified", Order{By: SortModified}, []string{"page2.png", "Page1.png", "page10.png"}},
		{"modified descending", Order{By: SortModified, Descending: true}, []string{"page10.png", "Page1.png", "page2.png"}},
		{"none keeps listing order", Order{By: SortNone}, []string{"Page1.png", "page10.png", "page2.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := List(dir, tt.order)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			names := make([]string, len(paths))
			for i, p := range paths {
				names[i] = filepath.Base(p)
			}
			if diff := cmp.Diff(tt.want, names); diff != "" {
				t.Errorf("List() order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortPaths(t *testing.T) {
	dir := t.TempDir()
	writeSized(t, dir, "b.png", 10, time.Hour)
	writeSized(t, dir, "a.png", 20, 2*time.Hour)
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")

	paths := []string{a, b}
	if err := SortPaths(paths, Order{By: SortSize}); err != nil {
		t.Fatalf("SortPaths() error: %v", err)
	}
	if diff := cmp.Diff([]string{b, a}, paths); diff != "" {
		t.Errorf("by size mismatch (-want +got):\n%s", diff)
	}

	names := []string{"x10", "x9", "X1"}
	if err := SortPaths(names, NaturalOrder); err != nil {
		t.Fatalf("SortPaths() error: %v", err)
	}
	if diff := cmp.Diff([]string{"X1", "x9", "x10"}, names); diff != "" {
		t.Errorf("natural mismatch (-want +got):\n%s", diff)
	}

	err := SortPaths([]string{filepath.Join(dir, "missing.png")}, Order{By: SortModified})
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %s", err, errs.ErrCodeFileNotFound)
	}
}

func TestParseSortBy(t *testing.T) {
	for _, want := range []SortBy{SortNone, SortName, SortSize, SortModified, SortNameLiteral} {
		got, err := ParseSortBy(want.String())
		if err != nil || got != want {
			t.Errorf("ParseSortBy(%q) = %v, %v", want.String(), got, err)
		}
	}
	if _, err := ParseSortBy("date"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("ParseSortBy(date) error = %v, want %s", err, errs.ErrCodeInvalidInput)
	}
}
