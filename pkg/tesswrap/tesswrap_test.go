package tesswrap

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestPageSegModeValid(t *testing.T) {
	cases := []struct {
		mode PageSegMode
		want bool
	}{
		{PSMOsdOnly, true},
		{PSMAuto, true},
		{PSMRawLine, true},
		{PageSegMode(-1), false},
		{PageSegMode(14), false},
	}
	for _, tt := range cases {
		if got := tt.mode.Valid(); got != tt.want {
			t.Errorf("PageSegMode(%d).Valid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestEngineModeValid(t *testing.T) {
	cases := []struct {
		mode EngineMode
		want bool
	}{
		{OEMTesseractOnly, true},
		{OEMLstmOnly, true},
		{OEMDefault, true},
		{EngineMode(-1), false},
		{EngineMode(4), false},
	}
	for _, tt := range cases {
		if got := tt.mode.Valid(); got != tt.want {
			t.Errorf("EngineMode(%d).Valid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

// writeTextImage renders a line of text into a PNG for the live engine tests.
func writeTextImage(t *testing.T, text string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 360, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 360; x++ {
			img.Set(x, y, color.White)
		}
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(20), Y: fixed.I(30)},
	}
	d.DrawString(text)

	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func skipWithoutEngine(t *testing.T, c *Client) {
	t.Helper()
	missing, err := c.Check([]string{"eng"})
	if err != nil {
		t.Skipf("tesseract not usable on this host: %v", err)
	}
	if slices.Contains(missing, "eng") {
		t.Skip("eng training data not installed")
	}
}

func TestRecognizeLive(t *testing.T) {
	c := &Client{PageSegMode: PSMSingleLine, EngineMode: OEMDefault}
	skipWithoutEngine(t, c)

	path := writeTextImage(t, "HELLO WORLD")
	text, err := c.Recognize(context.Background(), path, "eng")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.ToUpper(text), "HELLO") {
		t.Errorf("expected HELLO in recognized text, got %q", text)
	}
}

func TestRecognizeMissingFile(t *testing.T) {
	c := &Client{PageSegMode: PSMAuto, EngineMode: OEMDefault}
	skipWithoutEngine(t, c)

	_, err := c.Recognize(context.Background(), filepath.Join(t.TempDir(), "nope.png"), "eng")
	if err == nil {
		t.Fatal("expected an error")
	}
	var ee *EngineError
	if !errors.As(err, &ee) {
		t.Errorf("err = %T, want *EngineError", err)
	}
}

func TestRecognizeHonorsDeadline(t *testing.T) {
	c := &Client{PageSegMode: PSMAuto, EngineMode: OEMDefault}
	skipWithoutEngine(t, c)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	path := writeTextImage(t, "HELLO WORLD")
	if _, err := c.Recognize(ctx, path, "eng"); err == nil {
		t.Fatal("expected a deadline error")
	}
}
