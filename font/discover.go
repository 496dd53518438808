package font

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is one selectable font: a display name for the UI and an opaque
// locator to pass back verbatim to Resolve.
type Entry struct {
	Name    string
	Locator string
}

// commonFontNames are display names probed through the system index in
// addition to the directory walk. They supply canonical capitalization for
// fonts the walk may see only as file names.
var commonFontNames = []string{
	"Arial", "Times New Roman", "Courier New", "Verdana", "Georgia",
	"Tahoma", "Trebuchet MS", "Impact", "Comic Sans MS",
}

// fontDirs returns the known font directories for the current host.
func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts/truetype",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
		`C:\Windows\Fonts`,
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return dirs
}

// Discover enumerates the selectable fonts: every loadable .ttf/.otf under
// the known font directories, the common display names present in the
// system index, and always a final ("Default", DefaultLocator) entry.
// Duplicated display names keep their first occurrence (case-sensitive);
// the result is sorted case-insensitively by display name.
//
// The walk runs once; later calls return the cached list unchanged.
func (r *Resolver) Discover() []Entry {
	r.discoverOnce.Do(func() {
		r.entries = r.discover()
	})
	return r.entries
}

func (r *Resolver) discover() []Entry {
	var found []Entry

	dirs := append(append([]string{}, r.extraDirs...), fontDirs()...)
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, not fatal.
				return fs.SkipDir
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf":
			default:
				return nil
			}
			if !loadableFontFile(path) {
				r.log.Debug("font: skipping unloadable file", slog.String("path", path))
				return nil
			}
			found = append(found, Entry{Name: displayName(path), Locator: path})
			return nil
		})
	}

	for _, name := range commonFontNames {
		if _, ok := r.findSystemFont(name); ok {
			found = append(found, Entry{Name: name, Locator: name})
		}
	}

	found = append(found, Entry{Name: "Default", Locator: DefaultLocator})

	// Dedupe by display name, first occurrence wins.
	seen := make(map[string]bool, len(found))
	unique := found[:0]
	for _, e := range found {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		unique = append(unique, e)
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(unique, func(i, j int) bool {
		return c.CompareString(unique[i].Name, unique[j].Name) < 0
	})
	return unique
}

// PreferredDefault returns the entry a selection UI should preselect:
// the first of DejaVu Sans, Liberation Sans or Arial present in entries
// (under display or file-stem spelling), else the first entry.
func PreferredDefault(entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	preferred := []string{
		"DejaVu Sans", "DejaVuSans",
		"Liberation Sans", "LiberationSans-Regular",
		"Arial",
	}
	for _, want := range preferred {
		for _, e := range entries {
			if e.Name == want {
				return e, true
			}
		}
	}
	return entries[0], true
}

// displayName derives a display name from a font file path: the base name
// up to the first dot.
func displayName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// loadableFontFile reports whether the file parses as an OpenType font.
func loadableFontFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return false
	}
	_, err = opentype.Parse(data)
	return err == nil
}
