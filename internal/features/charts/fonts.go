package charts

import (
	"os"
	"path/filepath"

	logging "supply-chain-insights/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// DefaultFontPaths are tried after any configured paths. When none loads,
// gg's built-in 7x13 bitmap face is used and sizes are ignored.
var DefaultFontPaths = []string{
	"etc/fonts/InterVariable.ttf",
	"etc/fonts/Inter-Regular.ttf",
	"~/Library/Fonts/InterVariable.ttf",
	"~/Library/Fonts/Inter-Regular.ttf",
	"/Library/Fonts/Inter-Regular.ttf",
	"/usr/share/fonts/truetype/inter/Inter-Regular.ttf",
	"/usr/local/share/fonts/Inter-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

type fontSet struct {
	path   string
	loaded bool
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// loadFonts picks the first usable TrueType font and leaves it active on dc.
func loadFonts(dc *gg.Context, configured []string, size float64) fontSet {
	paths := append(append([]string{}, configured...), DefaultFontPaths...)
	for _, p := range paths {
		expanded := expandPath(p)
		if _, err := os.Stat(expanded); err != nil {
			continue
		}
		if err := dc.LoadFontFace(expanded, size); err != nil {
			logging.LogWarn("Font file exists but failed to load", zap.String("path", expanded), zap.Error(err))
			continue
		}
		logging.LogDebug("Loaded chart font", zap.String("path", expanded))
		return fontSet{path: expanded, loaded: true}
	}
	logging.LogWarn("No TrueType font found, using built-in face", zap.Int("paths_checked", len(paths)))
	return fontSet{}
}

// use switches dc to the given size. It is a no-op for the built-in face.
func (f fontSet) use(dc *gg.Context, size float64) {
	if !f.loaded {
		return
	}
	if err := dc.LoadFontFace(f.path, size); err != nil {
		logging.LogWarn("Failed to resize chart font", zap.String("path", f.path), zap.Error(err))
	}
}
