package helper

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// Covers wider/taller than this get downscaled before storage.
	maxCoverDim = 1280
	// Payloads above this are re-encoded as webp.
	maxCoverBytes = 1 << 20
)

// CoverImage is an uploaded book cover, normalized and ready to persist.
type CoverImage struct {
	Data        []byte
	ContentType string
}

// ReadCoverImage reads a multipart cover upload and normalizes it:
// oversized dimensions are downscaled, oversized payloads re-encoded as
// webp. Files that do not decode as an image are stored untouched, the
// way the old backend stored whatever the client sent.
func ReadCoverImage(fileHeader *multipart.FileHeader) (*CoverImage, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open cover upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("read cover upload: %w", err)
	}
	raw := buf.Bytes()
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty cover upload")
	}

	contentType := strings.TrimSpace(fileHeader.Header.Get("Content-Type"))
	if contentType == "" {
		contentType = http.DetectContentType(raw)
	}

	img, decErr := imaging.Decode(bytes.NewReader(raw))
	if decErr != nil {
		// Not a decodable image; keep the bytes as-is.
		return &CoverImage{Data: raw, ContentType: contentType}, nil
	}

	bounds := img.Bounds()
	resized := false
	if bounds.Dx() > maxCoverDim || bounds.Dy() > maxCoverDim {
		img = imaging.Fit(img, maxCoverDim, maxCoverDim, imaging.Lanczos)
		resized = true
	}

	if !resized && len(raw) <= maxCoverBytes {
		return &CoverImage{Data: raw, ContentType: contentType}, nil
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		// Re-encode failed; fall back to the original payload.
		return &CoverImage{Data: raw, ContentType: contentType}, nil
	}
	return &CoverImage{Data: out.Bytes(), ContentType: "image/webp"}, nil
}
