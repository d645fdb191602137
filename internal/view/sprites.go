package view

import (
	"image"
	"image/color"
	"math"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSet holds the billboard art for each enemy type. The art is drawn
// procedurally at startup so the binary ships without asset files.
type SpriteSet struct {
	imgs [2]*ebiten.Image
	size [2]image.Point
}

// NewSpriteSet renders the enemy art.
func NewSpriteSet() *SpriteSet {
	ss := &SpriteSet{}
	for t, rgba := range []*image.RGBA{paintBasic(), paintShooter()} {
		ss.imgs[t] = ebiten.NewImageFromImage(rgba)
		ss.size[t] = rgba.Bounds().Size()
	}
	return ss
}

// SpriteAspectRatio implements game.SpriteAspects.
func (ss *SpriteSet) SpriteAspectRatio(t game.EnemyType) float64 {
	sz := ss.size[ss.index(t)]
	return float64(sz.X) / float64(sz.Y)
}

// Image returns the art for t.
func (ss *SpriteSet) Image(t game.EnemyType) *ebiten.Image {
	return ss.imgs[ss.index(t)]
}

func (ss *SpriteSet) index(t game.EnemyType) int {
	if t == game.EnemyShooter {
		return 1
	}
	return 0
}

// paintBasic draws a squat horned imp, 64x64.
func paintBasic() *image.RGBA {
	const w, h = 64, 64
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	body := color.RGBA{R: 170, G: 40, B: 30, A: 255}
	dark := color.RGBA{R: 90, G: 20, B: 15, A: 255}
	eye := color.RGBA{R: 255, G: 230, B: 60, A: 255}

	fillEllipse(img, 32, 40, 24, 22, body)
	fillEllipse(img, 32, 22, 15, 14, body)
	// horns
	for i := 0; i < 10; i++ {
		fillEllipse(img, 20-i/2, 12-i, 2, 2, dark)
		fillEllipse(img, 44+i/2, 12-i, 2, 2, dark)
	}
	fillEllipse(img, 26, 21, 3, 2, eye)
	fillEllipse(img, 38, 21, 3, 2, eye)
	fillRect(img, 25, 28, 14, 3, dark) // mouth
	fillRect(img, 14, 58, 10, 6, dark) // feet
	fillRect(img, 40, 58, 10, 6, dark)
	return img
}

// paintShooter draws a tall gunner holding a rifle, 48x80.
func paintShooter() *image.RGBA {
	const w, h = 48, 80
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	armor := color.RGBA{R: 80, G: 70, B: 140, A: 255}
	skin := color.RGBA{R: 150, G: 120, B: 100, A: 255}
	gun := color.RGBA{R: 40, G: 40, B: 45, A: 255}
	visor := color.RGBA{R: 60, G: 220, B: 255, A: 255}

	fillEllipse(img, 24, 12, 10, 11, skin)
	fillRect(img, 15, 9, 18, 5, visor)
	fillRect(img, 10, 24, 28, 30, armor)
	fillRect(img, 12, 54, 9, 26, armor)
	fillRect(img, 27, 54, 9, 26, armor)
	fillRect(img, 4, 36, 40, 6, gun)
	fillRect(img, 36, 32, 6, 14, gun)
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	b := img.Bounds()
	for py := cy - ry; py <= cy+ry; py++ {
		for px := cx - rx; px <= cx+rx; px++ {
			if !image.Pt(px, py).In(b) {
				continue
			}
			dx := float64(px-cx) / math.Max(1, float64(rx))
			dy := float64(py-cy) / math.Max(1, float64(ry))
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
