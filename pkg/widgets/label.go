package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// Label shows a caption without background or border.
type Label struct {
	*widget.Widget

	// Length limits how many runes are drawn; negative draws all.
	Length int
}

// ImageDrawType selects how an image fills its widget.
type ImageDrawType int

const (
	ImageDrawDefault ImageDrawType = iota
	ImageDrawCenter
	ImageDrawScale
	ImageDrawScaleAuto
)

// Image shows a named image resource.
type Image struct {
	*widget.Widget

	// ImageName is the resource name, resolved by the image manager.
	ImageName string
	DrawType  ImageDrawType
}

var (
	labelVT = widget.VTable{TypeName: TypeLabel, OnPaintSelf: paintLabel}
	imageVT = widget.VTable{TypeName: TypeImage, OnPaintSelf: paintImage}
)

func init() {
	labelVT.Create = LabelCreate
	imageVT.Create = ImageCreate
}

// LabelCreate creates a label.
func LabelCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	l := &Label{Length: -1}
	l.Widget = widget.New(&labelVT, l, parent, x, y, w, h)
	return l.Widget
}

// PreferredSize returns the size that fits the label's caption.
func (l *Label) PreferredSize() (w, h uint16) {
	tw, th := widget.MeasureText(l.visibleText())
	return uint16(tw), uint16(th)
}

func (l *Label) visibleText() string {
	if l.Length < 0 {
		return l.Text
	}
	r := []rune(l.Text)
	if l.Length < len(r) {
		r = r[:l.Length]
	}
	return string(r)
}

func paintLabel(w *widget.Widget, c widget.Canvas) error {
	l, ok := As[*Label](w)
	if !ok {
		return nil
	}
	text := l.visibleText()
	if text == "" {
		return nil
	}
	tw, th := widget.MeasureText(text)
	c.DrawText(text, (int(w.W)-tw)/2, (int(w.H)-th)/2, widget.StyleFor(w.State()).Text)
	return nil
}

// ImageCreate creates an image widget with no image set.
func ImageCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	img := &Image{}
	img.Widget = widget.New(&imageVT, img, parent, x, y, w, h)
	return img.Widget
}

// SetImage sets the image resource name.
func (img *Image) SetImage(name string) {
	img.ImageName = name
}

func paintImage(w *widget.Widget, c widget.Canvas) error {
	img, ok := As[*Image](w)
	if !ok || img.ImageName == "" {
		return nil
	}
	// Bitmap decoding belongs to the image manager; mark the image bounds.
	c.StrokeRect(0, 0, int(w.W), int(w.H), widget.StyleFor(w.State()).Border)
	return nil
}
