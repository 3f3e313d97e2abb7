// Package scad serializes shape trees to OpenSCAD source text.
package scad

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/litescript/ls-skydome/internal/astro"
	"github.com/litescript/ls-skydome/internal/csg"
)

// Writer renders shape trees as OpenSCAD text. Output is deterministic
// byte for byte for a given tree.
type Writer struct {
	indent string
	header []string
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the indentation unit. Default is two spaces.
func WithIndent(s string) Option {
	return func(w *Writer) { w.indent = s }
}

// WithHeader adds comment lines emitted before the tree.
func WithHeader(lines ...string) Option {
	return func(w *Writer) { w.header = append(w.header, lines...) }
}

// NewWriter creates a Writer with the given options applied.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{indent: "  "}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write emits the OpenSCAD text for s to out.
func (w *Writer) Write(out io.Writer, s csg.Shape) error {
	p := &printer{out: out, unit: w.indent}
	for _, line := range w.header {
		p.printf("// %s\n", line)
	}
	if len(w.header) > 0 {
		p.printf("\n")
	}
	w.node(p, s, 0)
	return p.err
}

// Render returns the OpenSCAD text for s.
func Render(s csg.Shape) string {
	var b strings.Builder
	_ = NewWriter().Write(&b, s) // strings.Builder writes cannot fail
	return b.String()
}

func (w *Writer) node(p *printer, s csg.Shape, depth int) {
	switch n := s.(type) {
	case csg.Sphere:
		p.line(depth, "sphere(r = %s, $fn = %d);", num(n.R), n.Segments)

	case csg.Cylinder:
		if n.Centered {
			p.line(depth, "cylinder(r = %s, h = %s, center = true, $fn = %d);",
				num(n.R), num(n.H), n.Segments)
		} else {
			p.line(depth, "cylinder(r = %s, h = %s, $fn = %d);",
				num(n.R), num(n.H), n.Segments)
		}

	case csg.Cube:
		if n.Centered {
			p.line(depth, "cube(size = %s, center = true);", num(n.Size))
		} else {
			p.line(depth, "cube(size = %s);", num(n.Size))
		}

	case csg.Translate:
		p.line(depth, "translate(v = %s) {", vec(n.Offset))
		w.node(p, n.Child, depth+1)
		p.line(depth, "}")

	case csg.Rotate:
		p.line(depth, "rotate(a = %s, v = %s) {", num(n.Rot.AngleDeg), vec(n.Rot.Axis))
		w.node(p, n.Child, depth+1)
		p.line(depth, "}")

	case csg.Difference:
		p.line(depth, "difference() {")
		w.node(p, n.Base, depth+1)
		for _, c := range n.Cuts {
			w.node(p, c, depth+1)
		}
		p.line(depth, "}")
	}
}

// printer accumulates the first write error so the tree walk stays
// unconditional.
type printer struct {
	out  io.Writer
	unit string
	err  error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

func (p *printer) line(depth int, format string, args ...any) {
	p.printf(strings.Repeat(p.unit, depth)+format+"\n", args...)
}

// num formats a float with the shortest representation that round
// trips, so 150 stays "150" and 187.5 stays "187.5".
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func vec(v astro.Vec3) string {
	return fmt.Sprintf("[%s, %s, %s]", num(v.X), num(v.Y), num(v.Z))
}
