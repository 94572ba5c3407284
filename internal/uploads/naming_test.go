package uploads_test

import (
	"regexp"
	"testing"

	"github.com/JaimeStill/image-processing/internal/uploads"
)

var storageNamePattern = regexp.MustCompile(`^[a-z0-9]{8}\.[a-z0-9]{3}$`)

func TestNewStorageName(t *testing.T) {
	seen := make(map[string]bool)

	for range 100 {
		name, err := uploads.NewStorageName()
		if err != nil {
			t.Fatalf("NewStorageName() error = %v", err)
		}
		if !storageNamePattern.MatchString(name) {
			t.Errorf("NewStorageName() = %q, want match %s", name, storageNamePattern)
		}
		if seen[name] {
			t.Errorf("NewStorageName() repeated %q", name)
		}
		seen[name] = true
	}
}
