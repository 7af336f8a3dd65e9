// Package imgpayload parses base64-encoded image payloads, with or without a
// data-URI prefix, and provides a cheap size estimate so oversized requests
// can be rejected before the full decode.
package imgpayload

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrEmptyPayload = errors.New("image payload is empty")
	ErrBadEncoding  = errors.New("image payload is not valid base64")
)

// Payload is a base64 image payload split into its encoded text and the file
// extension declared by its data-URI prefix, if any.
type Payload struct {
	// Ext is the extension derived from the data-URI MIME type,
	// including the leading dot. Empty when the payload was bare base64;
	// use SniffExt on the decoded bytes in that case.
	Ext string
	// Encoded is the base64 text with all ASCII whitespace removed.
	Encoded string
}

// Parse splits body into a Payload. It accepts bare base64 and
// data-URIs of the form "data:<mime>;base64,<payload>".
func Parse(body string) (Payload, error) {
	s := strings.TrimSpace(body)
	if s == "" {
		return Payload{}, ErrEmptyPayload
	}
	var ext string
	if strings.HasPrefix(s, "data:") {
		meta, enc, found := strings.Cut(s[len("data:"):], ",")
		if !found || !strings.Contains(meta, "base64") {
			return Payload{}, ErrBadEncoding
		}
		mime, _, _ := strings.Cut(meta, ";")
		ext = extFromMime(mime)
		s = enc
	}
	s = stripSpace(s)
	if s == "" {
		return Payload{}, ErrEmptyPayload
	}
	return Payload{Ext: ext, Encoded: s}, nil
}

// EstimatedSize returns an upper bound for the decoded byte count, computed
// from the encoded length alone. Padding makes it overshoot by up to two
// bytes, so callers must re-check the exact size after decoding.
func (p Payload) EstimatedSize() int64 {
	return int64(base64.StdEncoding.DecodedLen(len(p.Encoded) + 3))
}

// Decode materializes the payload bytes. Inputs with stripped padding
// are tolerated.
func (p Payload) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(p.Encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(p.Encoded)
		if err != nil {
			return nil, ErrBadEncoding
		}
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	return data, nil
}

// SniffExt infers a file extension (with leading dot) from magic bytes.
func SniffExt(data []byte) string {
	return mimetype.Detect(data).Extension()
}

func extFromMime(mime string) string {
	_, sub, found := strings.Cut(mime, "/")
	if !found || sub == "" {
		return ""
	}
	// "svg+xml" and friends carry a structured syntax suffix
	sub, _, _ = strings.Cut(sub, "+")
	sub = strings.ToLower(sub)
	if sub == "jpeg" {
		sub = "jpg"
	}
	return "." + sub
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
