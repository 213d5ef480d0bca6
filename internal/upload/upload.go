// Package upload stores product images on the local filesystem. Thumbnails
// are byte-for-byte copies of the original; no resizing is done.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// PublicPrefix is the URL prefix the upload root is served under.
	PublicPrefix = "/static/uploads/"

	OriginalURLPrefix  = PublicPrefix + "products/original/"
	ThumbnailURLPrefix = PublicPrefix + "products/thumbnails/"

	thumbnailPrefix = "thumb_"
)

// DefaultAllowedExtensions lists the image extensions accepted when Config
// leaves AllowedExtensions empty.
var DefaultAllowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

// ErrUnsupportedMedia is returned by Save for filenames outside the allow-list.
var ErrUnsupportedMedia = errors.New("unsupported image type")

type Config struct {
	// Root is the directory served at PublicPrefix.
	Root              string
	AllowedExtensions []string
}

// Image describes a stored upload.
type Image struct {
	// Filename is the sanitized client filename, kept for display.
	Filename      string
	Path          string
	ThumbnailPath string
}

type Store struct {
	root         string
	originalDir  string
	thumbnailDir string
	allowed      map[string]bool
	log          logrus.FieldLogger
}

func NewStore(cfg Config, log logrus.FieldLogger) *Store {
	exts := cfg.AllowedExtensions
	if len(exts) == 0 {
		exts = DefaultAllowedExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &Store{
		root:         cfg.Root,
		originalDir:  filepath.Join(cfg.Root, "products", "original"),
		thumbnailDir: filepath.Join(cfg.Root, "products", "thumbnails"),
		allowed:      allowed,
		log:          log,
	}
}

// EnsureDirs creates the original and thumbnail directories.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.originalDir, s.thumbnailDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return nil
}

// Allowed reports whether filename ends in an allowed image extension.
func (s *Store) Allowed(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	return s.allowed[strings.ToLower(filename[i+1:])]
}

// Accepts reports whether Save would store filename: both the raw name and
// its sanitized form must carry an allowed extension.
func (s *Store) Accepts(filename string) bool {
	return s.Allowed(filename) && s.Allowed(SanitizeFilename(filename))
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client supplied filename to a safe basename.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = name[strings.LastIndex(name, "/")+1:]
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// UniqueFilename inserts a random hex suffix before the extension.
func UniqueFilename(sanitized string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	i := strings.LastIndex(sanitized, ".")
	if i < 0 {
		return sanitized + "_" + suffix
	}
	return sanitized[:i] + "_" + suffix + sanitized[i:]
}

// Save writes src under a unique name and derives its thumbnail. Partial
// files are removed when any step fails.
func (s *Store) Save(filename string, src io.Reader) (*Image, error) {
	if !s.Accepts(filename) {
		return nil, ErrUnsupportedMedia
	}
	sanitized := SanitizeFilename(filename)

	unique := UniqueFilename(sanitized)
	originalPath := filepath.Join(s.originalDir, unique)
	thumbnailPath := filepath.Join(s.thumbnailDir, thumbnailPrefix+unique)

	if err := writeFile(originalPath, src); err != nil {
		return nil, fmt.Errorf("save original image: %w", err)
	}

	if err := copyFile(originalPath, thumbnailPath); err != nil {
		s.log.WithError(err).WithField("path", thumbnailPath).Warn("failed to create thumbnail")
		s.removeFile(originalPath)
		return nil, fmt.Errorf("create thumbnail: %w", err)
	}

	return &Image{
		Filename:      sanitized,
		Path:          OriginalURLPrefix + unique,
		ThumbnailPath: ThumbnailURLPrefix + thumbnailPrefix + unique,
	}, nil
}

// Remove deletes the files behind the given public paths. Failures are
// logged and otherwise ignored.
func (s *Store) Remove(publicPaths ...string) {
	for _, p := range publicPaths {
		local, ok := s.LocalPath(p)
		if !ok {
			if p != "" {
				s.log.WithField("path", p).Warn("refusing to remove file outside upload root")
			}
			continue
		}
		s.removeFile(local)
	}
}

// LocalPath maps a public upload path to its location on disk. Only the
// basename of the public path is used.
func (s *Store) LocalPath(publicPath string) (string, bool) {
	switch {
	case strings.HasPrefix(publicPath, OriginalURLPrefix):
		name := filepath.Base(strings.TrimPrefix(publicPath, OriginalURLPrefix))
		return filepath.Join(s.originalDir, name), validName(name)
	case strings.HasPrefix(publicPath, ThumbnailURLPrefix):
		name := filepath.Base(strings.TrimPrefix(publicPath, ThumbnailURLPrefix))
		return filepath.Join(s.thumbnailDir, name), validName(name)
	}
	return "", false
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && name != "/"
}

func (s *Store) removeFile(path string) {
	err := os.Remove(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return
	}
	s.log.WithError(err).WithField("path", path).Warn("failed to remove upload")
}

// writeFile creates path, which must not exist yet, and removes it again if
// the copy does not complete.
func writeFile(path string, src io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}

func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(to, src)
}
