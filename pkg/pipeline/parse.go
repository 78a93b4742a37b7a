package pipeline

import (
	"context"

	"github.com/thermitegod/mcomix-lite/pkg/pages"
)

// ReadPages resolves the page source of opts to pages with sizes.
// Pages given by size only are named by opts.Names where available.
func (r *Runner) ReadPages(ctx context.Context, opts Options) ([]pages.Page, error) {
	if err := opts.ValidateForRead(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	reader := pages.NewReader(r.Cache, r.Keyer, opts.Logger)
	switch {
	case opts.Dir != "":
		return reader.Discover(ctx, opts.Dir, opts.Order)
	case len(opts.Paths) > 0:
		return reader.ReadPages(ctx, opts.Paths)
	}

	pg := make([]pages.Page, len(opts.PageSizes))
	for i, s := range opts.PageSizes {
		pg[i] = pages.Page{Size: s}
		if i < len(opts.Names) {
			pg[i].Name = opts.Names[i]
		}
	}
	return pg, nil
}
