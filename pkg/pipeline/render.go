package pipeline

import (
	"context"
	"fmt"

	"github.com/thermitegod/mcomix-lite/pkg/render"
)

// Render produces every format of opts.Formats for a.
func (r *Runner) Render(ctx context.Context, a render.Arrangement, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch format {
		case FormatJSON:
			data, err := render.RenderJSON(a)
			if err != nil {
				return nil, fmt.Errorf("json: %w", err)
			}
			artifacts[format] = data
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = render.ToDOT(a)
			}
			if format == FormatDOT {
				artifacts[format] = []byte(dot)
				continue
			}
			svg, err := render.RenderSVG(ctx, dot)
			if err != nil {
				return nil, fmt.Errorf("svg: %w", err)
			}
			artifacts[format] = svg
		case FormatText:
			artifacts[format] = []byte(render.ASCII(a, TextColumns, TextRows) + "\n")
		}
	}
	return artifacts, nil
}
