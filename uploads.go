package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 82
	maxUploadSize = 10 << 20 // 10MB
)

// saveUpload stores the image uploaded in the named multipart field and
// returns the generated filename. It returns "" with no error when the field
// is absent, so callers can keep a previously stored reference. The file is
// written before the caller persists the owning record: an upload failure
// must abort the document write, never the other way around.
func (a *App) saveUpload(c echo.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// Absent field or empty file input: nothing uploaded.
		return "", nil
	}
	if file.Size == 0 {
		return "", nil
	}
	if file.Size > maxUploadSize {
		return "", echo.NewHTTPError(http.StatusBadRequest, "file too large (max 10MB)")
	}

	data, err := processUpload(file)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid image: "+err.Error())
	}

	filename := uploadFilename(file.Filename)
	if err := os.MkdirAll(a.Config.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.Config.UploadsDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filename, nil
}

// processUpload decodes the uploaded image, downscales anything wider than
// maxImageWidth, and re-encodes as JPEG.
func processUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return reencodeImage(src)
}

func reencodeImage(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// uploadFilename builds a timestamp-prefixed name from the original filename,
// sanitized to a URL-safe slug. The re-encoded file is always JPEG.
func uploadFilename(original string) string {
	base := strings.TrimSuffix(original, filepath.Ext(original))
	slug := slugify(base)
	if slug == "" {
		slug = "upload"
	}
	return fmt.Sprintf("%d-%s.jpg", time.Now().UnixMilli(), slug)
}

// slugify converts a string to a URL-safe slug.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
