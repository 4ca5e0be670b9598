package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("pixels: 16\nring:\n  small_arc: 0.8\n")
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Pixels != 16 {
		t.Fatalf("expected pixels override, got %d", c.Pixels)
	}
	if c.Ring.SmallArc != 0.8 {
		t.Fatalf("expected small_arc override, got %v", c.Ring.SmallArc)
	}
	if c.Ring.DurationMs != 1333 {
		t.Fatalf("expected default duration, got %d", c.Ring.DurationMs)
	}
	if c.FPS != 60 || c.Dial.Max != 100 {
		t.Fatal("untouched fields should keep defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Driver = "fake"
	c.Layout.Mirror = true
	c.Dial.Max = 255
	if err := Save(path, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Driver != "fake" || !got.Layout.Mirror || got.Dial.Max != 255 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
