package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the HUD faces from the bundled Go Regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 10); err != nil {
		return err
	}
	return LoadFontWithSize(HUDSmall, goregular.TTF, 8)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Width returns the advance of s in the named face, in pixels.
func Width(name FontName, s string) int {
	return font.MeasureString(getFont(name), s).Ceil()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
