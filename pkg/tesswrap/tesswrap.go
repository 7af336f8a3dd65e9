// Package tesswrap is the single point of integration with the Tesseract OCR
// engine. Its contract is configure-and-call: a Client carries the engine
// configuration and Recognize runs one image file through it.
package tesswrap

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// EngineError marks failures originating in the OCR engine itself
// (unreadable image, missing language data, native crash). Handlers map it to
// a generic internal error while logging the wrapped detail.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return "ocr engine: " + e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Client configures Tesseract invocations. The zero value uses the engine's
// default data path and modes PSMOsdOnly/OEMTesseractOnly, so construct it
// explicitly.
type Client struct {
	// DataPath points at the tessdata installation. Empty means the
	// engine's compiled-in default.
	DataPath    string
	PageSegMode PageSegMode
	EngineMode  EngineMode
}

// Recognize runs the engine on the image at path with the given language key
// and returns the raw recognized text. The native call cannot be interrupted;
// when ctx expires the call returns early with an EngineError wrapping the
// context error and the engine goroutine is left to finish on its own.
func (c *Client) Recognize(ctx context.Context, path, language string) (string, error) {
	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := c.recognize(path, language)
		ch <- outcome{text, err}
	}()
	select {
	case <-ctx.Done():
		return "", &EngineError{Err: ctx.Err()}
	case out := <-ch:
		if out.err != nil {
			return "", &EngineError{Err: out.err}
		}
		return out.text, nil
	}
}

func (c *Client) recognize(path, language string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if c.DataPath != "" {
		if err := client.SetTessdataPrefix(c.DataPath); err != nil {
			return "", fmt.Errorf("setting tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(language); err != nil {
		return "", fmt.Errorf("setting language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(c.PageSegMode)); err != nil {
		return "", fmt.Errorf("setting page segmentation mode: %w", err)
	}
	if err := client.SetVariable("tessedit_ocr_engine_mode", strconv.Itoa(int(c.EngineMode))); err != nil {
		return "", fmt.Errorf("setting engine mode: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}
	return client.Text()
}

// Check probes the engine installation and returns the subset of langs whose
// training data is missing on this host.
func (c *Client) Check(langs []string) (missing []string, err error) {
	client := gosseract.NewClient()
	defer client.Close()

	if c.DataPath != "" {
		if err := client.SetTessdataPrefix(c.DataPath); err != nil {
			return nil, err
		}
	}
	available, err := client.GetAvailableLanguages()
	if err != nil {
		return nil, err
	}
	for _, lang := range langs {
		if !slices.Contains(available, lang) {
			missing = append(missing, lang)
		}
	}
	return missing, nil
}

// Version reports the linked Tesseract version.
func Version() string {
	return gosseract.Version()
}
