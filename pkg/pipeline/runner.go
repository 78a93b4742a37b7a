package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/thermitegod/mcomix-lite/pkg/cache"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/observability"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/render"
)

// Runner executes the pipeline with a page size cache.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete read → zoom → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	hooks := observability.Pipeline()

	// Stage 1: Read
	source := opts.source()
	hooks.OnReadStart(ctx, source)
	readStart := time.Now()
	pg, err := r.ReadPages(ctx, opts)
	hooks.OnReadComplete(ctx, source, len(pg), time.Since(readStart), err)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	result.Pages = pg
	result.Stats.PageCount = len(pg)
	result.Stats.ReadTime = time.Since(readStart)

	r.Logger.Info("read pages",
		"pages", len(pg),
		"duration", result.Stats.ReadTime)

	// Stages 2 and 3: Zoom and layout
	hooks.OnLayoutStart(ctx, len(pg))
	layoutStart := time.Now()
	zoomed, l, err := r.ComputeLayout(pages.Sizes(pg), opts)
	hooks.OnLayoutComplete(ctx, len(pg), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Zoomed = zoomed
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	union := l.UnionBox().Size()
	result.Stats.UnionSize = layout.Vec2{union[0], union[1]}

	r.Logger.Info("computed layout",
		"union", result.Stats.UnionSize,
		"current", l.CurrentIndex(),
		"duration", result.Stats.LayoutTime)

	names := make([]string, len(pg))
	for i, p := range pg {
		names[i] = p.Name
	}
	result.Arrangement = render.Export(l, names)

	// Stage 4: Render
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Arrangement, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger routes option logging to the runner's logger.
func (r *Runner) applyLogger(opts *Options) {
	if r.Logger != nil {
		opts.Logger = r.Logger
	}
}
