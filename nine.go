package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

const (
	frameSide   = 24
	frameBorder = 8
)

// Nine stretches a frame image over any rectangle without scaling its corners.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [3][2]float64
}

// NewFrameNine builds the HUD panel from a generated frame: a 2px light rim
// inside an 8px corner, the middle translucent.
func NewFrameNine(scale float64) (*Nine, error) {
	pix := make([]byte, 4*frameSide*frameSide)
	for y := 0; y < frameSide; y++ {
		for x := 0; x < frameSide; x++ {
			i := 4 * (y*frameSide + x)
			edge := x < 2 || y < 2 || x >= frameSide-2 || y >= frameSide-2
			if edge {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xdd, 0xdd, 0xdd, 0xff
			} else {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0x10, 0x10, 0x18, 0xc0
			}
		}
	}
	img, err := ebiten.NewImage(frameSide, frameSide, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := img.ReplacePixels(pix); err != nil {
		return nil, err
	}
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1, Scale: scale,
		positions: [4][2]int{{0, 0}, {frameBorder, frameBorder}, {frameSide - frameBorder, frameSide - frameBorder}, {frameSide, frameSide}},
	}, nil
}

// SetBounds places the panel; corners keep their size, edges and middle stretch.
func (n *Nine) SetBounds(x, y, width, height int) {
	n.x, n.y, n.width, n.height = x, y, width, height
	corner0 := [2]float64{n.Scale * float64(n.positions[1][0]), n.Scale * float64(n.positions[1][1])}
	corner1 := [2]float64{n.Scale * float64(n.positions[3][0]-n.positions[2][0]), n.Scale * float64(n.positions[3][1]-n.positions[2][1])}

	n.targetPositions[0] = [2]float64{float64(x), float64(y)}
	n.targetPositions[1] = [2]float64{float64(x) + corner0[0], float64(y) + corner0[1]}
	n.targetPositions[2] = [2]float64{float64(x+width) - corner1[0], float64(y+height) - corner1[1]}

	inner := [2]float64{n.targetPositions[2][0] - n.targetPositions[1][0], n.targetPositions[2][1] - n.targetPositions[1][1]}
	n.scaleCenterWidth = inner[0] / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = inner[1] / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) SetTint(r, g, b, alpha float64) {
	n.R, n.G, n.B, n.alpha = r, g, b, alpha
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sx, sy := n.Scale, n.Scale
			if i == 1 {
				sx = n.scaleCenterWidth
			}
			if j == 1 {
				sy = n.scaleCenterHeight
			}
			src := image.Rect(n.positions[i][0], n.positions[j][1], n.positions[i+1][0], n.positions[j+1][1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(n.targetPositions[i][0], n.targetPositions[j][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
