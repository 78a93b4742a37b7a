package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
	"github.com/thermitegod/mcomix-lite/pkg/render"
)

// layoutFlags are the flags of the layout and scroll commands.
type layoutFlags struct {
	geometryFlags
	dir     string
	to      string
	asJSON  bool
	noCache bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	f.geometryFlags.register(cmd)
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "read page sizes from the images in a directory")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the arrangement as JSON")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the page size cache")
}

// layoutCommand creates the layout command for arranging pages.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [WxH...]",
		Short: "Arrange pages inside the viewport",
		Long: `Fit pages to the viewport and arrange them along the reading direction.

Prints every page's box, the union box and the viewport. Pages come from
positional sizes, --size or the images in --dir.`,
		Example: `  # A manga double page spread
  mcomix-layout layout 1000x1500 1000x1500 --manga

  # A vertical strip of all images in a directory, as JSON
  mcomix-layout layout --dir ./chapter1 --vertical --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd, args, &flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.to, "to", "", "scroll destination after layout: start, end, center, +, - or a pair like end,center")

	return cmd
}

// scrollCommand creates the scroll command for moving the viewport.
func (c *CLI) scrollCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "scroll DEST [WxH...]",
		Short: "Scroll the viewport over arranged pages",
		Long: `Arrange pages like the layout command, then move the viewport.

DEST is start, end, center, + or -, or one destination per axis separated
by a comma. A single destination scrolls within the first, last or current
page when every page has its own scroll area (--wrap).`,
		Example: `  # Jump to the end of a chapter
  mcomix-layout scroll end --dir ./chapter1 --vertical --wrap

  # Keep the horizontal position and center vertically
  mcomix-layout scroll keep,center 1000x3000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.to = args[0]
			return c.runLayout(cmd.Context(), cmd, args[1:], &flags)
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, args []string, flags *layoutFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}

	opts := options(cfg)
	if flags.to != "" {
		if opts.Scroll, err = parseScroll(flags.to); err != nil {
			return err
		}
	}

	sizes, err := flags.pageSizes(args)
	if err != nil {
		return err
	}
	switch {
	case flags.dir != "" && len(sizes) > 0:
		return errs.New(errs.ErrCodeInvalidInput, "page sizes and --dir are mutually exclusive")
	case flags.dir != "":
		opts.Dir = flags.dir
	case len(sizes) > 0:
		opts.PageSizes = sizes
	default:
		return errs.New(errs.ErrCodeInvalidInput, "no pages given")
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	// The page count is only known after reading a directory.
	pg, err := runner.ReadPages(ctx, opts)
	if err != nil {
		return err
	}
	opts.Dir = ""
	opts.PageSizes = make([]layout.Vec2, len(pg))
	opts.Names = make([]string, len(pg))
	for i, p := range pg {
		opts.PageSizes[i] = p.Size
		opts.Names[i] = p.Name
	}
	if opts.DoNotTransform, err = flags.doNotTransform(len(pg)); err != nil {
		return err
	}
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flags.asJSON {
		_, err := w.Write(result.Artifacts[pipeline.FormatJSON])
		return err
	}
	printArrangement(w, result)
	return nil
}

// printArrangement prints the page boxes as a table followed by the union
// box and viewport.
func printArrangement(w io.Writer, result *pipeline.Result) {
	a := result.Arrangement
	rows := make([][]string, len(a.Pages))
	for i, p := range a.Pages {
		name := p.Name
		if name == "" {
			name = "-"
		}
		rows[i] = []string{
			strconv.Itoa(p.Index),
			name,
			result.Pages[i].Size.String(),
			fmtRect(p.Rect),
		}
	}
	printTable(w, []string{"Page", "Name", "Original", "Box"}, rows, a.Current)
	printKeyValue(w, "Union", fmtRect(a.Union))
	printKeyValue(w, "Viewport", fmtRect(a.Viewport))
	current := "-"
	if a.Current >= 0 {
		current = strconv.Itoa(a.Current)
	}
	printKeyValue(w, "Current", current)
}

// fmtRect formats r as "WxH+X+Y".
func fmtRect(r render.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
