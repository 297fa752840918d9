// Package media is the filesystem-backed file store for uploaded
// project assets. Files live under a single root split into images/ and
// videos/; rows reference them by server-relative path and the public
// origin is prepended only when shaping responses.
package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Kind partitions stored files by directory.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
)

// MountPath is where the store's root is exposed read-only over HTTP.
const MountPath = "/uploads"

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
}

// KindForFilename picks the partition from the uploaded filename's
// extension. Anything that is not a known video extension is an image.
func KindForFilename(filename string) Kind {
	if videoExtensions[strings.ToLower(filepath.Ext(filename))] {
		return KindVideo
	}
	return KindImage
}

type Store struct {
	root   string
	origin string
	logger zerolog.Logger
}

// NewStore creates the partition directories under root. origin is the
// public server origin prepended to relative paths on read, e.g.
// "http://localhost:8080".
func NewStore(root, origin string) (*Store, error) {
	for _, kind := range []Kind{KindImage, KindVideo} {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("creating media directory %s: %w", kind, err)
		}
	}
	return &Store{
		root:   root,
		origin: strings.TrimSuffix(origin, "/"),
		logger: log.With().Str("component", "mediaStore").Logger(),
	}, nil
}

// Save writes the upload under the given partition with a
// collision-resistant generated name and returns the server-relative
// path to store on the owning row.
func (s *Store) Save(kind Kind, originalFilename string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		uuid.NewString(),
		strings.ToLower(filepath.Ext(originalFilename)),
	)

	dst, err := os.Create(filepath.Join(s.root, string(kind), name))
	if err != nil {
		return "", fmt.Errorf("creating media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing media file: %w", err)
	}

	return path.Join(MountPath, string(kind), name), nil
}

// Remove deletes the file backing a stored relative path. Best-effort:
// a missing or undeletable file is logged and swallowed so row deletes
// never fail on it.
func (s *Store) Remove(relativePath string) {
	if relativePath == "" || !strings.HasPrefix(relativePath, MountPath+"/") {
		return
	}
	full := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(relativePath, MountPath+"/")))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", relativePath).Msg("failed to remove media file")
	}
}

// URL prepends the public origin to a stored relative path. Absolute
// URLs and empty values pass through unchanged, so it is safe to apply
// on every read path.
func (s *Store) URL(relativePath string) string {
	if relativePath == "" || strings.HasPrefix(relativePath, "http://") || strings.HasPrefix(relativePath, "https://") {
		return relativePath
	}
	return s.origin + relativePath
}

// Root returns the store's directory for static file serving.
func (s *Store) Root() string {
	return s.root
}
