// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/noamKasper/HebrewOCR/pkg/types"
)

// ManifestName is the default manifest file name inside the output directory.
const ManifestName = "manifest.yaml"

// Manifest records the pages written by an extraction run. The catalog
// stage ingests it to index the corpus.
type Manifest struct {
	// Dump is the path of the dump the pages came from.
	Dump string `json:"dump" yaml:"dump"`

	// GeneratedAt is when the manifest was written.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Pages lists every written page in output order.
	Pages []types.PageRecord `json:"pages" yaml:"pages"`
}

// WriteManifest marshals a manifest for the given dump and pages to path.
func WriteManifest(path, dumpPath string, pages []types.PageRecord) error {
	m := Manifest{
		Dump:        dumpPath,
		GeneratedAt: time.Now().UTC(),
		Pages:       pages,
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
