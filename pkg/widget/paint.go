package widget

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Canvas is the drawing surface widgets paint onto.
type Canvas interface {
	Translate(dx, dy int)
	FillRect(x, y, w, h int, c color.RGBA)
	StrokeRect(x, y, w, h int, c color.RGBA)
	DrawText(text string, x, y int, c color.RGBA)
}

// Style holds the colors PaintHelper uses for one state.
type Style struct {
	Background color.RGBA
	Border     color.RGBA
	Text       color.RGBA
}

// DefaultStyles maps each state to its default style. States missing from
// the map use the StateNormal style.
var DefaultStyles = map[State]Style{
	StateNormal: {
		Background: color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
		Border:     color.RGBA{0xa0, 0xa0, 0xa0, 0xff},
		Text:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	},
	StatePressed: {
		Background: color.RGBA{0xc8, 0xc8, 0xc8, 0xff},
		Border:     color.RGBA{0x80, 0x80, 0x80, 0xff},
		Text:       color.RGBA{0x00, 0x00, 0x00, 0xff},
	},
	StateOver: {
		Background: color.RGBA{0xe0, 0xe8, 0xf8, 0xff},
		Border:     color.RGBA{0x60, 0x80, 0xc0, 0xff},
		Text:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	},
	StateDisabled: {
		Background: color.RGBA{0xf8, 0xf8, 0xf8, 0xff},
		Border:     color.RGBA{0xd0, 0xd0, 0xd0, 0xff},
		Text:       color.RGBA{0xa0, 0xa0, 0xa0, 0xff},
	},
}

// StyleFor returns the style for s.
func StyleFor(s State) Style {
	if st, ok := DefaultStyles[s]; ok {
		return st
	}
	return DefaultStyles[StateNormal]
}

// face is the fixed-width face used for text metrics.
var face font.Face = basicfont.Face7x13

// MeasureText returns the pixel width and line height of text.
func MeasureText(text string) (width, height int) {
	return font.MeasureString(face, text).Round(), face.Metrics().Height.Round()
}

// PaintHelper draws the background, border and centred caption of w using
// the style of its current state.
func PaintHelper(w *Widget, c Canvas) error {
	st := StyleFor(w.state)
	width, height := int(w.W), int(w.H)
	if width == 0 || height == 0 {
		return nil
	}
	c.FillRect(0, 0, width, height, st.Background)
	c.StrokeRect(0, 0, width, height, st.Border)
	if w.Text != "" {
		tw, th := MeasureText(w.Text)
		c.DrawText(w.Text, (width-tw)/2, (height-th)/2, st.Text)
	}
	return nil
}
