// Package render turns a computed page layout into output formats.
//
// [Export] captures a [layout.Layout] as an [Arrangement], a plain snapshot
// of the union box, the viewport and every placed page. Arrangements can
// then be written as JSON ([WriteJSON]), as a Graphviz graph with pinned
// node positions ([ToDOT], [RenderSVG]) or as a terminal miniature
// ([ASCII]).
//
//	a := render.Export(l, names)
//	svg, err := render.RenderSVG(ctx, render.ToDOT(a))
//
// SVG rendering runs Graphviz in-process through
// [github.com/goccy/go-graphviz] using the neato engine.
//
// [layout.Layout]: github.com/thermitegod/mcomix-lite/pkg/layout.Layout
package render
