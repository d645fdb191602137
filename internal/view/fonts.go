package view

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used by every screen.
type Fonts struct {
	Title    font.Face // logo
	Subtitle font.Face
	Menu     font.Face
	MenuSel  font.Face // selected menu entry, slightly larger
	Banner   font.Face // GAME OVER
	Body     font.Face // HUD and prompts
	Small    font.Face // footer
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.0fpt: %w", size, err)
	}
	return face, nil
}

// LoadFonts builds the face set from the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	f := &Fonts{}
	specs := []struct {
		dst  *font.Face
		ttf  []byte
		size float64
	}{
		{&f.Title, gobold.TTF, 96},
		{&f.Subtitle, gobold.TTF, 40},
		{&f.Menu, gomonobold.TTF, 36},
		{&f.MenuSel, gomonobold.TTF, 42},
		{&f.Banner, goregular.TTF, 48},
		{&f.Body, goregular.TTF, 18},
		{&f.Small, gomonobold.TTF, 16},
	}
	for _, s := range specs {
		face, err := newFace(s.ttf, s.size)
		if err != nil {
			return nil, err
		}
		*s.dst = face
	}
	return f, nil
}
