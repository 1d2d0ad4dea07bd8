package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/edwinsyarief/scenery"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadFont reads font metrics from a YAML (.yaml, .yml) or TOML (.toml)
// file. Glyphs are sorted by code after loading.
func LoadFont(path string) (scenery.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scenery.Font{}, eris.Wrapf(err, "cannot read font %s", path)
	}
	return ParseFont(data, filepath.Ext(path))
}

// ParseFont decodes font metrics in the format named by ext.
func ParseFont(data []byte, ext string) (scenery.Font, error) {
	var font scenery.Font
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &font)
	case ".toml":
		err = toml.Unmarshal(data, &font)
	default:
		return font, eris.Errorf("unsupported font format %q", ext)
	}
	if err != nil {
		return font, eris.Wrap(err, "cannot parse font")
	}
	if font.AtlasWidth <= 0 || font.AtlasHeight <= 0 {
		return font, eris.Errorf("font %q: atlas size %dx%d is invalid", font.Name, font.AtlasWidth, font.AtlasHeight)
	}
	font.SortGlyphs()
	return font, nil
}
