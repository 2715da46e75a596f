package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/sink"
	"github.com/arthur-debert/overlay/pkg/types"
)

// Renderer prints plans and pack orders in one format
type Renderer struct {
	w      io.Writer
	format Format
	styles Styles
}

// NewRenderer creates a renderer. FormatAuto must be resolved first.
func NewRenderer(w io.Writer, format Format) (*Renderer, error) {
	switch format {
	case FormatAuto:
		return nil, errors.New(errors.ErrInternal, "output format must be resolved before rendering")
	case FormatTerminal:
		return &Renderer{w: w, format: format, styles: DefaultStyles()}, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML, FormatXML:
		return &Renderer{w: w, format: format}, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
}

// style renders s with the named style on terminals, unchanged otherwise
func (r *Renderer) style(name, s string) string {
	if r.styles == nil {
		return s
	}
	return r.styles.Get(name).Render(s)
}

// RenderPlan prints mutations grouped by virtual path. Paths appear in the
// order they are first added; layers keep emission order.
func (r *Renderer) RenderPlan(mutations []types.Mutation) error {
	if export, ok := r.format.exportFormat(); ok {
		return sink.Export(r.w, mutations, export)
	}

	if len(mutations) == 0 {
		_, err := fmt.Fprintln(r.w, r.style("Muted", "Nothing to build"))
		return err
	}

	var order []string
	seen := make(map[string]bool)
	layers := make(map[string][]string)
	tags := make(map[string][]string)
	for _, m := range mutations {
		if !seen[m.Path] {
			seen[m.Path] = true
			order = append(order, m.Path)
		}
		switch m.Op {
		case types.OpAdd:
			layers[m.Path] = append(layers[m.Path], m.Directory)
		case types.OpTag:
			tags[m.Path] = append(tags[m.Path], m.Tag)
		}
	}

	var b strings.Builder
	for i, p := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		line := r.style("Path", p)
		if len(tags[p]) > 0 {
			line += " " + r.style("Tag", "["+strings.Join(tags[p], ", ")+"]")
		}
		b.WriteString(line + "\n")
		for n, dir := range layers[p] {
			layer := fmt.Sprintf("%s %s", r.style("Layer", fmt.Sprintf("%d.", n+1)), dir)
			if r.styles == nil {
				layer = "  " + layer
			}
			b.WriteString(r.style("Directory", layer) + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderOrder prints pack names in build order
func (r *Renderer) RenderOrder(names []string) error {
	if r.format.IsStructured() {
		return r.renderOrderStructured(names)
	}

	if len(names) == 0 {
		_, err := fmt.Fprintln(r.w, r.style("Muted", "No packs with resources"))
		return err
	}

	var b strings.Builder
	for i, name := range names {
		b.WriteString(fmt.Sprintf("%s %s\n", r.style("Index", fmt.Sprintf("%d.", i+1)), name))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) renderOrderStructured(names []string) error {
	if names == nil {
		names = []string{}
	}
	export, _ := r.format.exportFormat()
	return sink.ExportOrder(r.w, names, export)
}

// RenderError prints err for people. Structured formats get the plain message.
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if r.styles != nil {
		msg = r.style("Error", "Error:") + " " + msg
	} else {
		msg = "Error: " + msg
	}
	_, werr := fmt.Fprintln(r.w, msg)
	return werr
}
