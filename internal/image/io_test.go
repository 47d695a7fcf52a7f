package image

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPNG_RoundTrip(t *testing.T) {
	src := solid(3, 2, red)
	src.SetNRGBA(2, 1, blue)

	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	got, err := LoadPNG(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if c := got.NRGBAAt(2, 1); c != blue {
		t.Errorf("(2,1) = %v, want blue", c)
	}

	auto, err := LoadFromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadFromBytes: %v", err)
	}
	if auto.Bounds() != got.Bounds() {
		t.Errorf("LoadFromBytes bounds = %v, want %v", auto.Bounds(), got.Bounds())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := LoadPNG(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadPNG(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) = %v, want ErrEmptyData", err)
	}
	garbage := []byte("definitely not an image")
	if _, err := LoadPNG(garbage); !errors.Is(err, ErrDecode) {
		t.Errorf("LoadPNG(garbage) = %v, want ErrDecode", err)
	}
	if _, err := LoadFromBytes(garbage); !errors.Is(err, ErrDecode) {
		t.Errorf("LoadFromBytes(garbage) = %v, want ErrDecode", err)
	}
}

func TestSavePNG_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, solid(4, 4, blue)); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	got, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c := got.NRGBAAt(3, 3); c != blue {
		t.Errorf("(3,3) = %v, want blue", c)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) = %v, want os.ErrNotExist", err)
	}
}
