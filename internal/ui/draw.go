package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var fillImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// fillPolygon заливает выпуклый многоугольник.
func fillPolygon(dst *ebiten.Image, points [][2]float32, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawTextCentered рисует строку с центром по горизонтали в cx, верх в y.
func drawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-b.Dx()/2, y-b.Min.Y, c)
}

// drawTextAt рисует строку с левым верхним углом в (x, y).
func drawTextAt(dst *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, x, y-b.Min.Y, c)
}
