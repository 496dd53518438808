package logotype

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// ExportError reports a failed PNG export with the target path and the
// underlying I/O cause.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("logotype: export to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ExportPNG writes the pixmap to a PNG file at the given path. The encode
// goes to a temporary file in the target directory which is renamed into
// place only on success, so a failed export never leaves a partial file.
//
// The render pipeline flattens its output, so the written image is fully
// opaque.
func ExportPNG(path string, p *Pixmap) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".logotype-*.png")
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}

	if err := png.Encode(tmp, p.ToImage()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
