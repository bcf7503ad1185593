package mock

import (
	"context"

	"github.com/yjones-coder/modeldocs"
)

var _ modeldocs.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of modeldocs.ArtifactStore.
type ArtifactStore struct {
	SaveFn func(ctx context.Context, name string, data []byte) error
	ListFn func(ctx context.Context) ([]modeldocs.Artifact, error)
}

func (s *ArtifactStore) Save(ctx context.Context, name string, data []byte) error {
	return s.SaveFn(ctx, name, data)
}

func (s *ArtifactStore) List(ctx context.Context) ([]modeldocs.Artifact, error) {
	return s.ListFn(ctx)
}
