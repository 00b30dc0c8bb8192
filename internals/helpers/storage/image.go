package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   WebP recompression (ENV-driven)
======================================================================= */

type WebPOptions struct {
	Quality  float32 // 0..100, lossy
	MaxWidth int     // 0 = no resize
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		Quality:  envFloat("IMAGE_WEBP_QUALITY", 80),
		MaxWidth: envInt("IMAGE_MAX_WIDTH", 1600),
	}
}

// decode sniffs jpeg/png/webp from raw bytes.
func decode(data []byte, contentType, filename string) (image.Image, error) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "webp"), strings.HasSuffix(strings.ToLower(filename), ".webp"):
		return webp.Decode(bytes.NewReader(data))
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		return img, err
	}
}

func resizeToWidth(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// ConvertToWebP: read → decode → resize (optional) → encode webp.
func ConvertToWebP(data []byte, contentType, filename string, opts WebPOptions) ([]byte, error) {
	img, err := decode(data, contentType, filename)
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}
	img = resizeToWidth(img, opts.MaxWidth)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("webp encode failed: %w", err)
	}
	return buf.Bytes(), nil
}
