package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/thermitegod/mcomix-lite/pkg/errors"
	"github.com/thermitegod/mcomix-lite/pkg/layout"
	"github.com/thermitegod/mcomix-lite/pkg/zoom"
)

// zoomRow is one page of the zoom command's JSON output.
type zoomRow struct {
	Page     int         `json:"page"`
	Original layout.Vec2 `json:"original"`
	Zoomed   layout.Vec2 `json:"zoomed"`
}

// zoomCommand creates the zoom command for fitting page sizes to a screen.
func (c *CLI) zoomCommand() *cobra.Command {
	var (
		flags  geometryFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "zoom [WxH...]",
		Short: "Fit page sizes to the viewport",
		Long: `Compute the display size of pages shown together on one screen.

Sizes are given as positional arguments or with --size. The fit mode,
upscaling and user zoom come from the preferences file unless overridden.`,
		Example: `  # Two pages side by side on a 1920x1080 screen
  mcomix-layout zoom 1000x1500 1000x1500 --viewport 1920x1080

  # Fit a strip to the screen width and zoom in one step
  mcomix-layout zoom 800x4000 --fit width --zoom-log 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			sizes, err := flags.pageSizes(args)
			if err != nil {
				return err
			}
			if len(sizes) == 0 {
				return errs.New(errs.ErrCodeInvalidInput, "no page sizes given")
			}
			for i, s := range sizes {
				if err := errs.ValidateSize(fmt.Sprintf("page %d", i), s.Slice()); err != nil {
					return err
				}
			}
			dnt, err := flags.doNotTransform(len(sizes))
			if err != nil {
				return err
			}

			model, err := zoom.NewModelWith(cfg.ZoomSettings())
			if err != nil {
				return err
			}
			opts := options(cfg)
			screen := opts.ZoomScreen(len(sizes))
			zoomed := model.ZoomedSize(sizes, screen, opts.Distribution, dnt)
			c.Logger.Debug("zoomed pages", "fit", model.FitMode(), "screen", screen, "user_scale", model.UserScale())

			w := cmd.OutOrStdout()
			if asJSON {
				rows := make([]zoomRow, len(sizes))
				for i := range sizes {
					rows[i] = zoomRow{Page: i, Original: sizes[i], Zoomed: zoomed[i]}
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			rows := make([][]string, len(sizes))
			for i := range sizes {
				rows[i] = []string{strconv.Itoa(i), sizes[i].String(), zoomed[i].String(), fmtScale(sizes[i], zoomed[i])}
			}
			printTable(w, []string{"Page", "Original", "Zoomed", "Scale"}, rows, -1)
			printKeyValue(w, "Fit", model.FitMode().String())
			printKeyValue(w, "Screen", screen.String())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}
