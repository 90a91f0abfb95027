// 18 Mar 2026

// qualplot draws per-position mean quality as a small PNG. It is not
// trying to be a plotting library. One curve, two axes, and labels if
// the caller can point us at a ttf file. Without a font we still draw
// the curve, which is usually all anybody looks at.
package qualplot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strconv"

	"github.com/golang/freetype"
)

const (
	imgW    = 640
	imgH    = 240
	marginL = 40 // room for the quality axis
	marginB = 24 // room for the position axis
	maxQ    = 42 // top of the phred scale we draw
)

var (
	bg    = color.RGBA{255, 255, 255, 255}
	axis  = color.RGBA{40, 40, 40, 255}
	curve = color.RGBA{0, 90, 180, 255}
)

// Plot draws means, one value per read position, and writes a PNG to
// w. fontFname may be empty, in which case there are no axis labels.
func Plot(w io.Writer, means []float32, fontFname string) error {
	if len(means) == 0 {
		return errors.New("qualplot: nothing to plot")
	}
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	// axes
	for x := marginL; x < imgW; x++ {
		img.Set(x, imgH-marginB, axis)
	}
	for y := 0; y < imgH-marginB; y++ {
		img.Set(marginL, y, axis)
	}

	plotW := imgW - marginL - 8
	plotH := imgH - marginB - 8
	toY := func(q float32) int {
		if q < 0 {
			q = 0
		}
		if q > maxQ {
			q = maxQ
		}
		return imgH - marginB - int(float32(plotH)*q/maxQ)
	}

	// One column of pixels per x step; vertical fill between
	// neighbouring points so steep drops stay visible.
	prevY := toY(means[0])
	for x := 0; x < plotW; x++ {
		i := x * len(means) / plotW
		y := toY(means[i])
		lo, hi := y, prevY
		if lo > hi {
			lo, hi = hi, lo
		}
		for yy := lo; yy <= hi; yy++ {
			img.Set(marginL+1+x, yy, curve)
		}
		prevY = y
	}

	if fontFname != "" {
		if err := label(img, fontFname, len(means)); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

// label draws the axis names and the extremes of the scales.
func label(img *image.RGBA, fontFname string, npos int) error {
	data, err := os.ReadFile(fontFname)
	if err != nil {
		return err
	}
	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(fnt)
	c.SetFontSize(10)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(axis))

	type lbl struct {
		s    string
		x, y int
	}
	labels := []lbl{
		{"0", marginL - 12, imgH - marginB},
		{"42", marginL - 20, 14},
		{"position", imgW/2 - 20, imgH - 6},
		{"1", marginL + 2, imgH - 8},
		{strconv.Itoa(npos), imgW - 30, imgH - 8},
	}
	for _, l := range labels {
		if _, err := c.DrawString(l.s, freetype.Pt(l.x, l.y)); err != nil {
			return err
		}
	}
	return nil
}

