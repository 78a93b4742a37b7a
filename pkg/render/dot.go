package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// pointsPerInch converts layout pixels to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT converts an arrangement to a neato graph with every box pinned at
// its layout position. Pages are filled boxes labelled with their index and
// name, the union box is dashed and the viewport is a red outline. Graphviz
// y grows upwards, so y coordinates are negated.
func ToDOT(a Arrangement) string {
	var buf bytes.Buffer
	buf.WriteString("graph arrangement {\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, fixedsize=true, fontsize=24];\n")
	buf.WriteString("\n")

	writeNode(&buf, "union", a.Union, `label="", style=dashed, color=gray`)
	for _, p := range a.Pages {
		label := strconv.Itoa(p.Index)
		if p.Name != "" {
			label += "\n" + p.Name
		}
		style := "style=filled, fillcolor=white"
		if p.Index == a.Current {
			style = "style=filled, fillcolor=lightblue"
		}
		writeNode(&buf, fmt.Sprintf("page%d", p.Index), p.Rect, fmt.Sprintf("label=%q, %s", label, style))
	}
	writeNode(&buf, "viewport", a.Viewport, `label="", color=red, penwidth=3`)

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, id string, r Rect, attrs string) {
	cx := float64(r.X) + float64(r.Width)/2
	cy := -(float64(r.Y) + float64(r.Height)/2)
	fmt.Fprintf(buf, "  %s [pos=\"%s,%s!\", width=%s, height=%s, %s];\n",
		id, fmtFloat(cx), fmtFloat(cy),
		fmtFloat(float64(r.Width)/pointsPerInch), fmtFloat(float64(r.Height)/pointsPerInch), attrs)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph produced by [ToDOT] to SVG with the neato
// engine, which honours pinned positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag with a scalable one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
