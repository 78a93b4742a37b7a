package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/pipeline"
)

// viewCommand creates the view command for the interactive preview.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		flags   geometryFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "view [DIR | IMAGE...]",
		Short: "Preview spreads interactively in the terminal",
		Long: `Open a terminal preview of the pages. Each spread is drawn as a text
miniature with the viewport outlined; keys change the fit mode, zoom,
reading direction and page.`,
		Example: `  mcomix-layout view ./chapter1
  mcomix-layout view --size 1000x1500 --size 2000x1500 --size 1000x1500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			sizes, err := flags.pageSizes(nil)
			if err != nil {
				return err
			}
			opts := options(cfg)
			switch {
			case len(sizes) > 0 && len(args) > 0:
				return errs.New(errs.ErrCodeInvalidInput, "--size and image arguments are mutually exclusive")
			case len(sizes) > 0:
				opts.PageSizes = sizes
			case len(args) == 1 && isDir(args[0]):
				opts.Dir = args[0]
			case len(args) > 0:
				opts.Paths = args
			default:
				return errs.New(errs.ErrCodeInvalidInput, "no pages to view")
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			pg, err := runner.ReadPages(ctx, opts)
			if err != nil {
				return err
			}
			if len(pg) == 0 {
				return errs.New(errs.ErrCodeInvalidInput, "no supported images found")
			}
			prog.done(fmt.Sprintf("Read %d pages", len(pg)))

			dnt, err := flags.doNotTransform(len(pg))
			if err != nil {
				return err
			}

			// The layout logs on every key press; keep it off the screen.
			quiet := pipeline.NewRunner(runner.Cache, runner.Keyer, newLogger(io.Discard, LogInfo))
			model, err := NewViewerModel(quiet, *cfg, pg, dnt)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the page size cache")

	return cmd
}
