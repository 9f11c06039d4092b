package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cipher-desk/internal/logger"
)

// DefaultArtifactName is used when a download arrives without a usable
// filename.
const DefaultArtifactName = "download.dat"

// maxCollisionSuffix bounds the "name (n).ext" search.
const maxCollisionSuffix = 10000

type artifactFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewArtifactFileStore returns an [ArtifactStore] rooted at dir. The
// directory is created on first Save.
func NewArtifactFileStore(dir string, logger *logger.Logger) ArtifactStore {
	return &artifactFileStore{dir: dir, logger: logger}
}

func (a *artifactFileStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create download dir: %w", ErrWritingArtifact, err)
	}

	name := safeBaseName(filename)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; n < maxCollisionSuffix; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(a.dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
		}

		if _, err = f.Write(data); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
		}
		if err = f.Close(); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWritingArtifact, err)
		}

		a.logger.Debug().Str("func", "*artifactFileStore.Save").
			Str("path", path).
			Int("bytes", len(data)).
			Msg("artifact written")
		return path, nil
	}

	return "", fmt.Errorf("%w: no free name for %q", ErrWritingArtifact, name)
}

// safeBaseName strips directories from a service-provided filename.
func safeBaseName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	switch name {
	case "", ".", "..", "/":
		return DefaultArtifactName
	}
	return name
}
