package testing

import (
	"fmt"
	"image/color"
	"strings"
)

// DisplayOp represents a recorded canvas drawing operation.
type DisplayOp struct {
	Op   string
	X, Y int
	W, H int
	Text string
	RGBA color.RGBA
}

func (op DisplayOp) String() string {
	switch op.Op {
	case "text":
		return fmt.Sprintf("text(%q @%d,%d)", op.Text, op.X, op.Y)
	default:
		return fmt.Sprintf("%s(%d,%d %dx%d)", op.Op, op.X, op.Y, op.W, op.H)
	}
}

// RecordingCanvas implements widget.Canvas and records ops in absolute
// coordinates.
type RecordingCanvas struct {
	Ops []DisplayOp

	dx, dy int
}

func (c *RecordingCanvas) Translate(dx, dy int) {
	c.dx += dx
	c.dy += dy
}

func (c *RecordingCanvas) FillRect(x, y, w, h int, rgba color.RGBA) {
	c.Ops = append(c.Ops, DisplayOp{Op: "fill", X: x + c.dx, Y: y + c.dy, W: w, H: h, RGBA: rgba})
}

func (c *RecordingCanvas) StrokeRect(x, y, w, h int, rgba color.RGBA) {
	c.Ops = append(c.Ops, DisplayOp{Op: "stroke", X: x + c.dx, Y: y + c.dy, W: w, H: h, RGBA: rgba})
}

func (c *RecordingCanvas) DrawText(text string, x, y int, rgba color.RGBA) {
	c.Ops = append(c.Ops, DisplayOp{Op: "text", X: x + c.dx, Y: y + c.dy, Text: text, RGBA: rgba})
}

// Texts returns the text of every recorded text op in order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Op == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// String renders the display list one op per line.
func (c *RecordingCanvas) String() string {
	var sb strings.Builder
	for _, op := range c.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
