package overlay

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// lineHeight is the advance between lines of basicfont.Face7x13.
const lineHeight = 13

// Text is a block of text drawn at a fixed position, one line per '\n'.
type Text struct {
	X, Y       int
	Text       string
	Color      color.Color
	Background color.Color // nil for none
	Padding    int
}

// NewText returns white text with a 4 pixel padding and no background.
func NewText(x, y int, text string) *Text {
	return &Text{
		X:       x,
		Y:       y,
		Text:    text,
		Color:   color.White,
		Padding: 4,
	}
}

// Size returns the area the text covers, padding included.
func (t *Text) Size() (int, int) {
	lines := strings.Split(t.Text, "\n")
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return width + t.Padding*2, len(lines)*lineHeight + t.Padding*2
}

// Render draws the text into f.
func (t *Text) Render(f *Frame) {
	if t.Text == "" {
		return
	}

	w, h := t.Size()
	if t.Background != nil {
		f.Fill(image.Rect(t.X, t.Y, t.X+w, t.Y+h), Pack(t.Background))
	}

	d := &font.Drawer{
		Dst:  f,
		Src:  image.NewUniform(t.Color),
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for i, line := range strings.Split(t.Text, "\n") {
		d.Dot = fixed.P(t.X+t.Padding, t.Y+t.Padding+ascent+i*lineHeight)
		d.DrawString(line)
	}
}
