package viz

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportFilename is the fixed name of the downloaded image artifact.
const ExportFilename = "social-graph.png"

// ErrExportUnavailable is returned when the scene's canvas has no pixel
// representation to serialize (e.g. the recording double).
var ErrExportUnavailable = errors.New("viz: canvas has no exportable pixels")

// pngEncoder is satisfied by canvases whose current pixels can be
// serialized verbatim, without a re-render.
type pngEncoder interface {
	EncodePNG(w io.Writer) error
}

// ExportPNG writes the canvas's currently rendered pixels to w as PNG.
func ExportPNG(canvas any, w io.Writer) error {
	enc, ok := canvas.(pngEncoder)
	if !ok {
		return ErrExportUnavailable
	}
	return enc.EncodePNG(w)
}

// SavePNG writes the export artifact into dir under the fixed filename and
// returns the full path.
func SavePNG(canvas any, dir string) (string, error) {
	path := filepath.Join(dir, ExportFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := ExportPNG(canvas, f); err != nil {
		return "", err
	}
	return path, nil
}
