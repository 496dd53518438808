// Package logotype renders styled text onto a raster canvas.
//
// # Overview
//
// logotype is the compositing and font-resolution engine behind a logo
// designer: solid or two-stop linear-gradient fills for background and
// glyph color, an optional pseudo-3D extrusion behind the glyphs, and a
// final flatten to an opaque exportable image. Window layout, widget
// callbacks and dialogs are a caller concern; the caller supplies a
// RenderRequest and receives a flattened RGBA Pixmap.
//
// # Quick Start
//
//	import (
//	    "github.com/rasterkit/logotype"
//	    "github.com/rasterkit/logotype/font"
//	)
//
//	r := logotype.NewRenderer(font.NewResolver())
//
//	req := logotype.DefaultRequest()
//	req.Text = "Acme"
//	req.Background = logotype.TwoStop(
//	    logotype.MustParseHex("#FF0000"),
//	    logotype.MustParseHex("#0000FF"),
//	)
//
//	img := r.Render(req)
//	if err := logotype.ExportPNG("logo.png", img); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Every render runs the same synchronous pipeline, so a live preview and
// a file export of the same request are pixel-identical:
//
//	background fill -> font resolution -> glyph mask + bounds ->
//	extrusion layer (3D only) -> masked text fill -> compose -> flatten
//
// Font resolution never fails: see the font subpackage for the fallback
// chain that guarantees a renderable handle for any requested name.
//
// # Logging
//
// logotype produces no log output by default. Degradations (unloadable
// fonts, clamped geometry, skipped glyphs) are reported through a
// log/slog logger configured with SetLogger, never through errors.
package logotype
