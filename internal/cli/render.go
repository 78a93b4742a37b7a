package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pages"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
)

// renderFlags holds flags for the render command.
type renderFlags struct {
	geometryFlags
	formats string
	output  string
	page    int
	all     bool
	to      string
	noCache bool
}

// renderCommand creates the render command for drawing page arrangements.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [DIR | IMAGE...]",
		Short: "Render the arrangement of a spread to files",
		Long: `Read page sizes from images, lay out one spread and write it in the
requested formats: json, dot, svg (via Graphviz) and txt (a text miniature).

With a directory the images inside it are ordered by --sort-by, naturally
by default. In double page mode the title page and wide pages are shown
alone as --double-page-mode selects. --page selects the spread starting at
that page; --all writes every spread from the first page on.`,
		Example: `  # SVG of the first spread of a chapter
  mcomix-layout render ./chapter1

  # Every spread as JSON and text, right to left
  mcomix-layout render ./chapter1 --all --manga -f json,txt -o out/ch1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd, args, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output formats: json, dot, svg, txt (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "layout", "output file base name")
	cmd.Flags().IntVar(&flags.page, "page", 0, "render the spread starting at this page")
	cmd.Flags().BoolVar(&flags.all, "all", false, "render every spread")
	cmd.Flags().StringVar(&flags.to, "to", "", "scroll destination after layout")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the page size cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, args []string, flags *renderFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}

	opts := options(cfg)
	opts.Formats = parseFormats(flags.formats)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	if flags.to != "" {
		if opts.Scroll, err = parseScroll(flags.to); err != nil {
			return err
		}
	}

	sizes, err := flags.pageSizes(nil)
	if err != nil {
		return err
	}
	read := opts
	switch {
	case len(sizes) > 0 && len(args) > 0:
		return errs.New(errs.ErrCodeInvalidInput, "--size and image arguments are mutually exclusive")
	case len(sizes) > 0:
		read.PageSizes = sizes
	case len(args) == 1 && isDir(args[0]):
		read.Dir = args[0]
	case len(args) > 0:
		read.Paths = args
	default:
		return errs.New(errs.ErrCodeInvalidInput, "no pages to render")
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	w := cmd.OutOrStdout()
	hits, misses := c.stats.snapshot()
	pg, err := runner.ReadPages(ctx, read)
	if err != nil {
		return err
	}
	if len(pg) == 0 {
		return errs.New(errs.ErrCodeInvalidInput, "no pages to render")
	}
	h, m := c.stats.snapshot()
	printCacheStats(w, h-hits, m-misses)

	dnt, err := flags.doNotTransform(len(pg))
	if err != nil {
		return err
	}
	pageSizes := pages.Sizes(pg)
	names := make([]string, len(pg))
	for i, p := range pg {
		names[i] = p.Name
	}

	spreads := cfg.Spreads(pageSizes)
	var ranges [][2]int
	if flags.all {
		ranges = spreads.All()
	} else {
		start, end := spreads.At(flags.page)
		ranges = [][2]int{{start, end}}
	}

	prog := newProgress(c.Logger)
	for n, r := range ranges {
		start, end := r[0], r[1]
		o := opts
		o.PageSizes = pageSizes[start:end]
		o.Names = names[start:end]
		if dnt != nil {
			o.DoNotTransform = dnt[start:end]
		}

		spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Rendering pages %d-%d...", start, end-1))
		spinner.Start()
		result, err := runner.Execute(ctx, o)
		if err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		spinner.Stop()

		base := flags.output
		if flags.all {
			base = fmt.Sprintf("%s-%03d", flags.output, n)
		}
		written, err := writeArtifacts(base, o.Formats, result.Artifacts)
		if err != nil {
			return err
		}

		printSuccess(w, "Pages %d-%d %s", start, end-1, StyleDim.Render(spreadSummary(result)))
		for _, path := range written {
			printFile(w, path)
		}
	}

	prog.done(fmt.Sprintf("Rendered %d spread(s)", len(ranges)))

	if !flags.all && spreads.Next(ranges[0][0]) != ranges[0][0] {
		printNextStep(w, "Render every spread", fmt.Sprintf("%s render --all ...", appName))
	}
	return nil
}

// writeArtifacts writes one file per format as base.format.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func spreadSummary(result *pipeline.Result) string {
	return fmt.Sprintf("union %s · viewport %s", result.Stats.UnionSize, layout.Vec2{
		result.Arrangement.Viewport.Width, result.Arrangement.Viewport.Height,
	})
}

// printCacheStats prints how many page sizes came from the cache. Nothing is
// printed when no lookups were recorded.
func printCacheStats(w io.Writer, hits, misses int64) {
	if hits+misses == 0 {
		return
	}
	printDetail(w, "%d cached · %d decoded", hits, misses)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
