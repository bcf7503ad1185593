// Package fs provides file-based persistence for scrape artifacts and
// a transparent on-disk fetch cache.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yjones-coder/modeldocs"
)

// Ensure Store implements modeldocs.ArtifactStore at compile time.
var _ modeldocs.ArtifactStore = (*Store)(nil)

// Store persists artifacts as flat files under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store writing under baseDir, creating it if
// necessary.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, modeldocs.Errorf(modeldocs.EINTERNAL, "cannot create output directory %q: %v", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the resolved output directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Save writes data under the given name.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if strings.ContainsAny(name, "/\\") {
		return modeldocs.Errorf(modeldocs.EINVALID, "artifact name %q must not contain path separators", name)
	}
	if err := os.WriteFile(filepath.Join(s.baseDir, name), data, 0644); err != nil {
		return modeldocs.Errorf(modeldocs.EINTERNAL, "cannot save artifact %q: %v", name, err)
	}
	return nil
}

// List returns the persisted artifacts sorted by name, excluding
// dot-prefixed entries (internal cache and temp areas) and
// directories.
func (s *Store) List(ctx context.Context) ([]modeldocs.Artifact, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, modeldocs.Errorf(modeldocs.EINTERNAL, "cannot list output directory: %v", err)
	}

	var artifacts []modeldocs.Artifact
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, modeldocs.Artifact{
			Name: entry.Name(),
			Size: info.Size(),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})
	return artifacts, nil
}

// sdcardDir is the preferred external-storage output location, used
// when it is writable (Android/Termux installs).
const sdcardDir = "/sdcard/ModelDocs"

// DefaultOutputDir resolves the output directory once at startup:
// $MODELDOCS_DIR if set, else the external-storage mount if writable,
// else a user-scoped directory.
func DefaultOutputDir() string {
	if dir := os.Getenv("MODELDOCS_DIR"); dir != "" {
		return dir
	}
	if writable(filepath.Dir(sdcardDir)) {
		return sdcardDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "modeldocs_out"
	}
	return filepath.Join(home, ".modeldocs", "docs")
}

// DefaultCacheDir returns the user-scoped fetch cache directory.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("modeldocs_out", ".cache")
	}
	return filepath.Join(home, ".modeldocs", "cache")
}

func writable(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	f, err := os.CreateTemp(dir, ".modeldocs-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
