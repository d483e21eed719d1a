package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the working directory, in search order.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// with forward slashes, in lexical order. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// FindFont searches dirs for a font file whose path matches search ("Inter", "Inter-Regular", "inter regular").
// An empty search matches any font. When several match, one whose path contains "Regular" wins,
// otherwise the first in directory order. It returns the full path or os.ErrNotExist.
func FindFont(search string, dirs ...string) (string, error) {
	norm := normalizeForMatch(strings.TrimSpace(search))
	var first string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(normalizeForMatch(rel), norm) {
				continue
			}
			full := filepath.Join(base, filepath.FromSlash(rel))
			if strings.Contains(strings.ToLower(rel), "regular") {
				return full, nil
			}
			if first == "" {
				first = full
			}
		}
	}
	if first == "" {
		return "", os.ErrNotExist
	}
	return first, nil
}

// Resolve picks the overlay font: pref as a file path if it exists, otherwise a search for pref under BaseDirs.
func Resolve(pref string) (string, error) {
	pref = strings.TrimSpace(pref)
	if pref == "" {
		return FindFont("", BaseDirs()...)
	}
	if isFont(pref) {
		if info, err := os.Stat(pref); err == nil && !info.IsDir() {
			return pref, nil
		}
	}
	return FindFont(strings.TrimSuffix(filepath.Base(pref), filepath.Ext(pref)), BaseDirs()...)
}
