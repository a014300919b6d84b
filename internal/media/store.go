// Package media ingests uploaded files: extension allow-listing,
// filename sanitization and writing into the configured uploads
// directory.
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFilename    = errors.New("empty filename")
	ErrUnsupportedMedia = errors.New("file type not allowed")
)

// URLPrefix is the public path under which saved files are served.
const URLPrefix = "/uploads"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Store struct {
	dir       string
	imageExts map[string]struct{}
	videoExts map[string]struct{}
}

// NewStore creates the uploads directory if needed. Extensions are
// compared lowercased and without the leading dot.
func NewStore(dir string, imageExts, videoExts []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir failed: %w", err)
	}
	return &Store{
		dir:       dir,
		imageExts: toSet(imageExts),
		videoExts: toSet(videoExts),
	}, nil
}

// SaveMedia accepts any allowed image or video file and returns its
// public URL path.
func (s *Store) SaveMedia(filename string, src io.Reader) (string, error) {
	return s.save(filename, src, s.imageExts, s.videoExts)
}

// SaveImage accepts image files only (avatars).
func (s *Store) SaveImage(filename string, src io.Reader) (string, error) {
	return s.save(filename, src, s.imageExts)
}

func (s *Store) save(filename string, src io.Reader, allowed ...map[string]struct{}) (string, error) {
	ext, ok := extension(filename)
	if !ok || !extAllowed(ext, allowed) {
		return "", ErrUnsupportedMedia
	}

	name := sanitize(filename)
	if name == "" || name == ext || name == "."+ext {
		return "", ErrEmptyFilename
	}

	// A name that is already taken gets a random suffix instead of
	// silently replacing the earlier upload.
	target := filepath.Join(s.dir, name)
	if _, err := os.Stat(target); err == nil {
		suffix := filepath.Ext(name)
		base := strings.TrimSuffix(name, suffix)
		name = fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], suffix)
		target = filepath.Join(s.dir, name)
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload file failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("write upload file failed: %w", err)
	}
	return URLPrefix + "/" + name, nil
}

// extension returns the lowercased text after the last dot. A name
// without a dot has no extension and is never allowed.
func extension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	return strings.ToLower(filename[idx+1:]), true
}

func extAllowed(ext string, sets []map[string]struct{}) bool {
	for _, set := range sets {
		if _, ok := set[ext]; ok {
			return true
		}
	}
	return false
}

// sanitize strips any directory components and replaces characters
// outside [A-Za-z0-9._-], so the result is always a plain filename
// inside the uploads directory.
func sanitize(filename string) string {
	name := filepath.Base(filepath.Clean(strings.ReplaceAll(filename, "\\", "/")))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

func toSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return set
}
