// Package textenc resolves the text encoding a target file is read and written with.
package textenc

import (
	"bytes"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Default is used when no encoding is configured.
const Default = "utf-8"

// Codec decodes file bytes into text and encodes it back.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup resolves a WHATWG encoding label such as "utf-8", "windows-1252" or "utf-16le".
func Lookup(label string) (*Codec, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = Default
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Errorf("unknown encoding %q: %w", label, err)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, errors.Errorf("naming encoding %q: %w", label, err)
	}

	return &Codec{name: name, enc: enc}, nil
}

// Name returns the canonical encoding name.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw file bytes to text. Input that does not survive a
// decode/encode round trip (invalid UTF-8, a dangling UTF-16 byte, an unpaired
// surrogate) is an error rather than being replaced with U+FFFD.
func (c *Codec) Decode(data []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Errorf("decoding %s: %w", c.name, err)
	}

	back, err := c.enc.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, data) {
		return "", errors.Errorf("decoding %s: content contains invalid byte sequences", c.name)
	}

	return string(out), nil
}

// Encode converts text back to file bytes. Characters the encoding cannot
// represent are an error.
func (c *Codec) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Errorf("encoding %s: %w", c.name, err)
	}
	return out, nil
}
