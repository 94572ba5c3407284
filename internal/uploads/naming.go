package uploads

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const storageAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewStorageName returns a random on-disk name of the form xxxxxxxx.yyy.
// It carries nothing from the client-supplied filename.
func NewStorageName() (string, error) {
	base, err := gonanoid.Generate(storageAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("generate storage name: %w", err)
	}

	ext, err := gonanoid.Generate(storageAlphabet, 3)
	if err != nil {
		return "", fmt.Errorf("generate storage name: %w", err)
	}

	return base + "." + ext, nil
}
