package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ocrworks/tesseract-scan-service/pkg/imgpayload"
	"github.com/ocrworks/tesseract-scan-service/pkg/langcatalog"
	"github.com/ocrworks/tesseract-scan-service/pkg/textshape"
	"github.com/ocrworks/tesseract-scan-service/pkg/tmpfile"
)

// Recognizer is the external OCR capability the pipeline hands files to.
// *tesswrap.Client is the production implementation.
type Recognizer interface {
	Recognize(ctx context.Context, path, language string) (string, error)
}

// ValidationError marks request defects the client can fix. Handlers map it
// to a 400 response carrying the message verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Scanner runs the image-processing pipeline: validate, decode, write to a
// scratch file, invoke the engine, clean up, shape the result. All validation
// happens before any file I/O.
type Scanner struct {
	conf      ScanConfig
	installed *langcatalog.Catalog
	files     *tmpfile.Manager
	engine    Recognizer
}

func NewScanner(conf ScanConfig, installed *langcatalog.Catalog, files *tmpfile.Manager, engine Recognizer) *Scanner {
	return &Scanner{conf: conf, installed: installed, files: files, engine: engine}
}

// Installed exposes the languages this scanner accepts, in catalog order.
func (s *Scanner) Installed() *langcatalog.Catalog {
	return s.installed
}

// ScanBase64 decodes body (bare base64 or data-URI) and returns the shaped
// recognition result for languageKey.
func (s *Scanner) ScanBase64(ctx context.Context, body, languageKey string) (textshape.Result, error) {
	var zero textshape.Result

	lang, ok := s.installed.Lookup(languageKey)
	if !ok {
		return zero, validationf("unknown or uninstalled languageKey: %s", languageKey)
	}

	payload, err := imgpayload.Parse(body)
	if err != nil {
		return zero, &ValidationError{msg: err.Error()}
	}
	// cheap guard from the encoded length, before spending memory on the decode
	if payload.EstimatedSize() >= s.conf.MaxFileSizeBytes {
		return zero, s.tooLarge()
	}
	data, err := payload.Decode()
	if err != nil {
		return zero, &ValidationError{msg: err.Error()}
	}
	// the estimate can undercount padding-stripped payloads
	if int64(len(data)) >= s.conf.MaxFileSizeBytes {
		return zero, s.tooLarge()
	}

	ext := payload.Ext
	if ext == "" {
		ext = imgpayload.SniffExt(data)
	}
	path := s.files.NewPath(ext)
	if err := s.files.Write(path, data); err != nil {
		return zero, fmt.Errorf("writing scratch file: %w", err)
	}
	defer func() {
		if err := s.files.Remove(path); err != nil {
			logger.Error("Could not remove scratch file", "path", path, "err", err)
		}
	}()
	logger.Debug("Image saved for recognition", "path", path, "size", humanize.Bytes(uint64(len(data))), "lang", lang.Key)

	ctx, cancel := context.WithTimeout(ctx, s.conf.OcrTimeout)
	defer cancel()
	raw, err := s.engine.Recognize(ctx, path, lang.Key)
	if err != nil {
		return zero, err
	}
	return textshape.Shape(raw, lang.Key), nil
}

func (s *Scanner) tooLarge() *ValidationError {
	return validationf("image exceeds the maximum size of %d KB", s.conf.MaxFileSizeKb())
}

// IsValidation reports whether err is a request defect rather than an
// internal failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
