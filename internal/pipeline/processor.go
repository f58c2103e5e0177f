package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/AnyUserName/imgsig-cli/internal/hasher"
	"github.com/AnyUserName/imgsig-cli/internal/manifest"
	"github.com/AnyUserName/imgsig-cli/internal/profile"
	"github.com/AnyUserName/imgsig-cli/internal/signature"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of signing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles one source: decode, cap size, sign, content-hash.
func processImage(src Source, prof profile.Profile) processResult {
	result := processResult{key: src.Key}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		result.err = fmt.Errorf("open %s: %w", src.RelPath, err)
		return result
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()

	sig, err := Sign(img, prof)
	if err != nil {
		result.err = fmt.Errorf("sign %s: %w", src.RelPath, err)
		return result
	}

	// Content hash identifies byte-identical files without signature math.
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		result.err = fmt.Errorf("rewind %s: %w", src.RelPath, err)
		return result
	}
	contentHash, err := hasher.ContentHashReader(f, 16)
	if err != nil {
		result.err = fmt.Errorf("hash %s: %w", src.RelPath, err)
		return result
	}

	var ratio float64
	if origH > 0 {
		ratio = float64(origW) / float64(origH)
	}

	result.asset = manifest.Asset{
		Path:        src.RelPath,
		Width:       origW,
		Height:      origH,
		Format:      src.Format,
		Size:        src.Size,
		ContentHash: contentHash,
		Signature:   manifest.EncodeSignature(sig),
		AspectRatio: ratio,
	}
	return result
}

// Sign computes a decoded image's signature under the given profile.
// Oversized images are downscaled first: signatures are resolution-robust
// and crop/sample cost is linear in pixel count.
func Sign(img image.Image, prof profile.Profile) ([]int8, error) {
	b := img.Bounds()
	if prof.MaxDim > 0 && (b.Dx() > prof.MaxDim || b.Dy() > prof.MaxDim) {
		img = imaging.Fit(img, prof.MaxDim, prof.MaxDim, imaging.Lanczos)
	}

	rgba, width := rgbaBuffer(img)
	return signature.ComputeTuned(rgba, width, prof.Crop, prof.GridSize)
}

// SignFile decodes one file and computes its signature.
func SignFile(path string, prof profile.Profile) ([]int8, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return Sign(img, prof)
}

// rgbaBuffer flattens an image into the packed non-premultiplied RGBA byte
// layout the signature core consumes: 4 bytes per pixel, width pixels per
// row, no padding.
func rgbaBuffer(img image.Image) ([]byte, int) {
	n := imaging.Clone(img) // *image.NRGBA
	w, h := n.Rect.Dx(), n.Rect.Dy()
	if n.Stride == w*4 {
		return n.Pix, w
	}
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(buf[y*w*4:(y+1)*w*4], n.Pix[y*n.Stride:y*n.Stride+w*4])
	}
	return buf, w
}
