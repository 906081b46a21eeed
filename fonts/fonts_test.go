package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	face := HUD.Get()
	if face == nil {
		t.Fatal("nil face")
	}
	if m := face.Metrics(); m.Height <= 0 {
		t.Fatalf("unexpected metrics %+v", m)
	}
}

func TestBadFont(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	FontName("missing").Get()
}
