package modeldocs

import "context"

// Artifact describes one previously persisted output file.
type Artifact struct {
	Name string
	Size int64
}

// ArtifactStore persists rendered documents and structured records
// under caller-supplied names, and enumerates what has been persisted.
// Names are flat filenames; path resolution happens at construction
// time, never per write.
type ArtifactStore interface {
	// Save writes data under the given name, overwriting any previous
	// artifact with that name.
	Save(ctx context.Context, name string, data []byte) error

	// List returns persisted artifacts, excluding internal cache and
	// temp areas, sorted by name.
	List(ctx context.Context) ([]Artifact, error)
}
