package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// gutter is the gap between facing pages, in pixels.
const gutter = 8

// ComposeSpread lays two facing pages side by side. right is drawn on the
// right, as pages run right to left. Either page may be nil; the empty slot
// keeps its width so a lone page sits on its own side of the spread.
func ComposeSpread(right, left image.Image) image.Image {
	if right == nil && left == nil {
		return nil
	}

	ref := right
	if ref == nil {
		ref = left
	}
	h := ref.Bounds().Dy()
	if right != nil && left != nil {
		h = min(right.Bounds().Dy(), left.Bounds().Dy())
	}
	r := scaleToHeight(right, h)
	l := scaleToHeight(left, h)

	pageW := 0
	for _, img := range []image.Image{r, l} {
		if img != nil {
			pageW = max(pageW, img.Bounds().Dx())
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, pageW*2+gutter, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if l != nil {
		off := pageW - l.Bounds().Dx()
		draw.Draw(dst, image.Rect(off, 0, pageW, h), l, l.Bounds().Min, draw.Src)
	}
	if r != nil {
		x := pageW + gutter
		draw.Draw(dst, image.Rect(x, 0, x+r.Bounds().Dx(), h), r, r.Bounds().Min, draw.Src)
	}
	return dst
}

func scaleToHeight(img image.Image, h int) image.Image {
	if img == nil || img.Bounds().Dy() == h {
		return img
	}
	b := img.Bounds()
	w := max(1, b.Dx()*h/b.Dy())
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Fit scales img down to fit within maxW x maxH pixels, keeping its aspect
// ratio. Smaller images are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	if img == nil || maxW <= 0 || maxH <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	w, h := maxW, b.Dy()*maxW/b.Dx()
	if h > maxH {
		w, h = b.Dx()*maxH/b.Dy(), maxH
	}
	dst := image.NewRGBA(image.Rect(0, 0, max(1, w), max(1, h)))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// FitWidth scales img to exactly width w, for full-bleed pages that scroll.
func FitWidth(img image.Image, w int) image.Image {
	if img == nil || w <= 0 || img.Bounds().Dx() == w {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, max(1, b.Dy()*w/b.Dx())))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Rotate turns img clockwise by degrees, which must be a multiple of 90.
func Rotate(img image.Image, degrees int) image.Image {
	degrees = ((degrees % 360) + 360) % 360
	if img == nil || degrees == 0 || degrees%90 != 0 {
		return img
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	// Translate the source to the origin first.
	ox, oy := float64(b.Min.X), float64(b.Min.Y)

	var (
		m    f64.Aff3
		size image.Rectangle
	)
	switch degrees {
	case 90:
		m = f64.Aff3{0, -1, h + oy, 1, 0, -ox}
		size = image.Rect(0, 0, b.Dy(), b.Dx())
	case 180:
		m = f64.Aff3{-1, 0, w + ox, 0, -1, h + oy}
		size = image.Rect(0, 0, b.Dx(), b.Dy())
	case 270:
		m = f64.Aff3{0, 1, -oy, -1, 0, w + ox}
		size = image.Rect(0, 0, b.Dy(), b.Dx())
	}

	dst := image.NewRGBA(size)
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}

// Crop returns the part of img visible at zoom (>= 1) with the viewport
// centre at (panX, panY), both fractions in [0, 1].
func Crop(img image.Image, zoom, panX, panY float64) image.Image {
	if img == nil || zoom <= 1 {
		return img
	}
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	si, ok := img.(subImager)
	if !ok {
		return img
	}

	b := img.Bounds()
	vw, vh := int(float64(b.Dx())/zoom), int(float64(b.Dy())/zoom)
	offX := clamp(int(panX*float64(b.Dx()-vw)), 0, b.Dx()-vw)
	offY := clamp(int(panY*float64(b.Dy()-vh)), 0, b.Dy()-vh)
	return si.SubImage(image.Rect(b.Min.X+offX, b.Min.Y+offY, b.Min.X+offX+vw, b.Min.Y+offY+vh))
}

// Slice returns the rows [top, top+height) of img for a page taller than the
// screen. top is clamped so the slice stays inside the image; the clamped
// value is returned with it.
func Slice(img image.Image, top, height int) (image.Image, int) {
	if img == nil || height <= 0 {
		return img, 0
	}
	b := img.Bounds()
	if b.Dy() <= height {
		return img, 0
	}
	top = clamp(top, 0, b.Dy()-height)
	si, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return img, 0
	}
	return si.SubImage(image.Rect(b.Min.X, b.Min.Y+top, b.Max.X, b.Min.Y+top+height)), top
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
