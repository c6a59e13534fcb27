package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"svw.info/sudokugen/internal/domain"
)

var (
	colorBackground   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorLine         = color.RGBA{A: 255}
	colorDigit        = color.RGBA{A: 255}
	colorHighlight    = color.RGBA{R: 255, G: 255, B: 200, A: 255}
	colorHighlightRim = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

const (
	thinLine  = 1
	thickLine = 3
	rimWidth  = 2
)

// Renderer draws grid states as raster images. The grid occupies nine
// cells of a tenth of the short image side each, centered with a margin.
type Renderer struct {
	width   int
	height  int
	cell    int
	originX int
	originY int
	face    font.Face
}

// New creates a renderer for the given image dimensions.
func New(width, height int) (*Renderer, error) {
	cell := min(width, height) / 10
	ft, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(cell) * 0.5,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{
		width:   width,
		height:  height,
		cell:    cell,
		originX: (width - cell*9) / 2,
		originY: (height - cell*9) / 2,
		face:    face,
	}, nil
}

// Render draws the grid, optionally highlighting one cell.
func (r *Renderer) Render(g domain.Grid, highlight *domain.CellCoord) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	r.drawLines(img)
	if highlight != nil {
		r.drawHighlight(img, *highlight)
	}
	r.drawDigits(img, g)
	return img
}

func (r *Renderer) drawLines(img *image.RGBA) {
	span := r.cell * 9
	for i := 0; i <= 9; i++ {
		w := thinLine
		if i%3 == 0 {
			w = thickLine
		}
		x := r.originX + i*r.cell - w/2
		fillRect(img, x, r.originY, x+w, r.originY+span, colorLine)
		y := r.originY + i*r.cell - w/2
		fillRect(img, r.originX, y, r.originX+span, y+w, colorLine)
	}
}

func (r *Renderer) drawHighlight(img *image.RGBA, cell domain.CellCoord) {
	x0 := r.originX + cell.Col*r.cell
	y0 := r.originY + cell.Row*r.cell
	x1 := x0 + r.cell
	y1 := y0 + r.cell
	fillRect(img, x0, y0, x1, y1, colorHighlight)
	fillRect(img, x0, y0, x1, y0+rimWidth, colorHighlightRim)
	fillRect(img, x0, y1-rimWidth, x1, y1, colorHighlightRim)
	fillRect(img, x0, y0, x0+rimWidth, y1, colorHighlightRim)
	fillRect(img, x1-rimWidth, y0, x1, y1, colorHighlightRim)
}

func (r *Renderer) drawDigits(img *image.RGBA, g domain.Grid) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorDigit),
		Face: r.face,
	}
	m := r.face.Metrics()
	textHeight := (m.Ascent + m.Descent).Ceil()
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := g[row][col]
			if v == 0 {
				continue
			}
			text := strconv.Itoa(int(v))
			w := d.MeasureString(text).Ceil()
			x := r.originX + col*r.cell + (r.cell-w)/2
			y := r.originY + row*r.cell + (r.cell-textHeight)/2 + m.Ascent.Ceil()
			d.Dot = fixed.P(x, y)
			d.DrawString(text)
		}
	}
}

// fillRect fills the rectangle [x0,x1)x[y0,y1) clipped to img.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}
