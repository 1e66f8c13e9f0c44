// Package images decodes base64 image payloads submitted in JSON bodies and
// stores them under generated filenames.
package images

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidImage reports a payload that is not a decodable data URI.
var ErrInvalidImage = errors.New("invalid image payload")

// Decode splits a "data:image/png;base64,..." data URI and returns a fresh
// uuid-based filename together with the raw bytes.
func Decode(data string) (string, []byte, error) {
	parts := strings.SplitN(data, ",", 2)
	if len(parts) != 2 {
		return "", nil, ErrInvalidImage
	}
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, ErrInvalidImage
	}
	return uuid.NewString() + ".png", raw, nil
}

// Store decodes the payload and writes it into dir, creating dir if needed.
// It returns the stored filename.
func Store(dir, data string) (string, error) {
	name, raw, err := Decode(data)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", err
	}
	return name, nil
}
