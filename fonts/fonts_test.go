package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	if HUD.Get() == nil || HUDSmall.Get() == nil {
		t.Fatal("expected both HUD faces to be registered")
	}
	if w := Width(HUD, "HP"); w <= 0 {
		t.Errorf("Width(HP) = %d, want > 0", w)
	}
	if Width(HUD, "HP HP") <= Width(HUD, "HP") {
		t.Error("longer strings should measure wider")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected an error for invalid font data")
	}
	if err := LoadFontWithSize("ok", goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
