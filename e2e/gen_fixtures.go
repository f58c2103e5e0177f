//go:build ignore

// gen_fixtures creates test images for an imgsig smoke run: a source
// image, a lightly noised near-duplicate, a bordered copy, and two
// unrelated images. Expect index + dupes to pair the first three.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	src := pattern(320, 240)

	writePNG(filepath.Join(dir, "source.png"), src)
	writeJPEG(filepath.Join(dir, "near_dupe.jpg"), noised(src))
	writePNG(filepath.Join(dir, "bordered.png"), bordered(src, 16))
	writePNG(filepath.Join(dir, "unrelated_flat.png"), solid(320, 240, color.NRGBA{0, 0, 255, 255}))
	writePNG(filepath.Join(dir, "unrelated_inverse.png"), inverted(src))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

func pattern(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8(((x/20 + y/20) % 2) * 180),
				A: 255,
			})
		}
	}
	return img
}

func noised(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			d := int8((x*7+y*13)%9 - 4)
			out.SetNRGBA(x, y, color.NRGBA{
				R: shift(c.R, d), G: shift(c.G, d), B: shift(c.B, d), A: 255,
			})
		}
	}
	return out
}

func bordered(src *image.NRGBA, border int) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*border, b.Dy()+2*border))
	gray := color.NRGBA{128, 128, 128, 255}
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			out.SetNRGBA(x, y, gray)
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetNRGBA(x+border, y+border, src.NRGBAAt(x, y))
		}
	}
	return out
}

func inverted(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			out.SetNRGBA(x, y, color.NRGBA{255 - c.R, 255 - c.G, 255 - c.B, 255})
		}
	}
	return out
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func shift(v uint8, d int8) uint8 {
	n := int(v) + int(d)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 92}); err != nil {
		panic(err)
	}
}
