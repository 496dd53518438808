package font

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
)

// DefaultLocator is the guaranteed discovery entry's locator. Resolving it
// skips straight to the well-known system fonts and, failing those, the
// scaled built-in face.
const DefaultLocator = "default"

// minPointSize is the floor applied to every requested size before any
// resolution attempt.
const minPointSize = 10

// wellKnownFonts is the fixed, ordered probe list of general-purpose
// sans-serif fonts bundled with common operating systems. Entries are either
// concrete file paths or family names for the system lookup.
var wellKnownFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/liberation-sans/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"/usr/share/fonts/gnu-free/FreeSans.ttf",
	`C:\Windows\Fonts\arial.ttf`,
	`C:\Windows\Fonts\segoeui.ttf`,
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"DejaVu Sans",
	"Liberation Sans",
	"Arial",
	"Helvetica",
}

// Resolver locates a loadable font for a requested name or path, applying a
// deterministic fallback chain. Resolve never fails: the last chain step
// cannot miss, so a renderable Handle always comes back.
//
// Resolved handles and the system font index are cached for the life of the
// Resolver and never invalidated.
type Resolver struct {
	handles *Cache
	log     *slog.Logger

	// extraDirs are additional directories for discovery, ahead of the
	// platform defaults.
	extraDirs []string

	scanOnce   sync.Once
	footprints []fontscan.Footprint

	discoverOnce sync.Once
	entries      []Entry
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCache injects the handle cache. Callers sharing fonts across several
// resolvers pass the same cache to each.
func WithCache(c *Cache) ResolverOption {
	return func(r *Resolver) {
		if c != nil {
			r.handles = c
		}
	}
}

// WithLogger sets the logger for fallback and discovery diagnostics.
// The default discards everything.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithSearchDirs prepends directories to the font discovery walk.
func WithSearchDirs(dirs ...string) ResolverOption {
	return func(r *Resolver) {
		r.extraDirs = append(r.extraDirs, dirs...)
	}
}

// NewResolver creates a resolver with a private cache unless one is
// injected.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		handles: NewCache(64),
		log:     slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a renderable Handle for the locator at the given point
// size. The locator is a discovery locator passed back verbatim, a direct
// font-file path, or a system family name; anything else ends at the scaled
// built-in face. Sizes below 10 are floored to 10 first.
//
// Resolve never returns nil.
func (r *Resolver) Resolve(locator string, pointSize int) Handle {
	if pointSize < minPointSize {
		pointSize = minPointSize
	}
	h := r.handles.GetOrCreate(locator, pointSize, func() Handle {
		return r.resolve(locator, pointSize)
	})
	if h == nil {
		// The chain's last step is infallible; a nil here is a bug.
		panic("font: resolver produced a nil handle")
	}
	return h
}

// resolve applies the fallback chain. Each step runs only after the
// previous one failed to produce a loadable handle; the first success wins.
func (r *Resolver) resolve(locator string, size int) Handle {
	if locator != "" && !strings.EqualFold(locator, DefaultLocator) {
		// Step 1: locator as a direct path to a font file.
		if looksLikeFontPath(locator) {
			h, err := loadFaceFile(locator, size)
			if err == nil {
				return h
			}
			r.log.Debug("font: direct path failed",
				slog.String("locator", locator), slog.Any("error", err))
		}

		// Step 2: locator as a system family name.
		if loc, ok := r.findSystemFont(locator); ok {
			h, err := loadFaceFile(loc.File, size)
			if err == nil {
				return h
			}
			r.log.Debug("font: system font unloadable",
				slog.String("family", locator),
				slog.String("file", loc.File), slog.Any("error", err))
		}
	}

	// Step 3: well-known system fonts, in fixed order.
	for _, cand := range wellKnownFonts {
		path := cand
		if !looksLikeFontPath(cand) {
			loc, ok := r.findSystemFont(cand)
			if !ok {
				continue
			}
			path = loc.File
		}
		if h, err := loadFaceFile(path, size); err == nil {
			return h
		}
	}

	// Step 4: the scaled built-in face. Cannot fail.
	r.log.Warn("font: no scalable font found, using scaled built-in face",
		slog.String("locator", locator), slog.Int("size", size))
	return newScaledHandle(size)
}

// findSystemFont resolves a family name through the system font index,
// matching case-insensitively.
func (r *Resolver) findSystemFont(family string) (fontscan.Location, bool) {
	for _, fp := range r.systemFootprints() {
		if strings.EqualFold(fp.Family, family) {
			return fp.Location, true
		}
	}
	// Second pass ignoring spaces: the index normalizes some family names.
	want := normalizeFamily(family)
	for _, fp := range r.systemFootprints() {
		if normalizeFamily(fp.Family) == want {
			return fp.Location, true
		}
	}
	return fontscan.Location{}, false
}

// systemFootprints scans the host fonts once and serves the result for the
// life of the resolver.
func (r *Resolver) systemFootprints() []fontscan.Footprint {
	r.scanOnce.Do(func() {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		// fontscan writes its diagnostics through a *log.Logger; route them
		// into the structured logger at Debug so the scan stays silent
		// unless the caller opted into logging.
		scanLog := slog.NewLogLogger(r.log.Handler(), slog.LevelDebug)
		fps, err := fontscan.SystemFonts(scanLog, filepath.Join(cacheDir, "logotype-fontindex"))
		if err != nil {
			r.log.Warn("font: system font scan failed", slog.Any("error", err))
			return
		}
		r.footprints = fps
	})
	return r.footprints
}

func normalizeFamily(family string) string {
	return strings.ReplaceAll(strings.ToLower(family), " ", "")
}

// looksLikeFontPath reports whether a locator should be treated as a file
// path rather than a family name.
func looksLikeFontPath(locator string) bool {
	if strings.ContainsAny(locator, `/\`) {
		return true
	}
	switch strings.ToLower(filepath.Ext(locator)) {
	case ".ttf", ".otf", ".ttc":
		return true
	}
	return false
}
