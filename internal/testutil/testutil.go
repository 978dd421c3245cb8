// Package testutil provides shared test helpers for building catalog roots.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/zoodesk/internal/storage"
)

// Animals is a small animals catalog in the production file layout.
const Animals = `Details on lions
Details on tigers
Details on bears

Animal - Lion
Name: Leo
Age: 5
*****Health concerns: Cut on left front paw*****
Feeding schedule: Twice daily

Animal - Tiger
Name: Maj
Age: 15
Health concerns: None

Animal - Bear
Name: Baloo
*Health: Needs checkup*
*Missing separator*
Feeding schedule: None on record
`

// Habitats is a small habitats catalog in the production file layout.
const Habitats = `Details on penguin habitat
Details on bird house

Habitat - Penguin
Temperature: Freezing
*****Food source: Fish in water running low*****
Cleanliness: Passed

Habitat - Bird
Temperature: Moderate
Cleanliness: Passed`

// TestCatalog creates a temporary catalog root holding animals.txt and
// habitats.txt and returns it with a storage.Provider.
func TestCatalog(t *testing.T) (string, *storage.FS) {
	t.Helper()
	root := t.TempDir()
	WriteFile(t, root, "animals.txt", Animals)
	WriteFile(t, root, "habitats.txt", Habitats)
	store, err := storage.NewFS(root)
	if err != nil {
		t.Fatal(err)
	}
	return root, store
}

// WriteFile writes content to rel under root, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
