package badge

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRender(t *testing.T) {
	png, err := Render("task-42", 0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("Render() output is not a PNG")
	}
}

func TestRenderEmptyID(t *testing.T) {
	if _, err := Render("   ", 256); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Render() error = %v, want ErrEmptyID", err)
	}
	if err := WriteFile("", 256, "unused.png"); !errors.Is(err, ErrEmptyID) {
		t.Errorf("WriteFile() error = %v, want ErrEmptyID", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.png")
	if err := WriteFile("task-42", 128, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Errorf("written badge is not a PNG")
	}
}
