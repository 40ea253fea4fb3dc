package framework

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
)

const artifactTimestampFormat = "2006-01-02_15-04-05"

var unsafeArtifactChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ArtifactStore writes screenshots to an output directory.
type ArtifactStore struct {
	dir        string
	timestamps bool
	now        func() time.Time
	written    []string
	lock       sync.Mutex
}

// ArtifactOption configures an ArtifactStore.
type ArtifactOption func(*ArtifactStore)

// WithTimestamps causes every artifact name to get a "_YYYY-MM-DD_HH-mm-ss" suffix, so that
// repeated runs do not overwrite each other's screenshots.
func WithTimestamps() ArtifactOption {
	return func(s *ArtifactStore) { s.timestamps = true }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) ArtifactOption {
	return func(s *ArtifactStore) { s.now = now }
}

// NewArtifactStore creates the output directory if necessary.
func NewArtifactStore(dir string, options ...ArtifactOption) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create screenshot directory: %w", err)
	}
	s := &ArtifactStore{dir: dir, now: time.Now}
	for _, o := range options {
		o(s)
	}
	return s, nil
}

func (s *ArtifactStore) Dir() string {
	return s.dir
}

// SaveScreenshot writes PNG data under the given name and returns the path of the file.
// The test ID, if not empty, becomes a subdirectory so that different suites can use the
// same screenshot names.
func (s *ArtifactStore) SaveScreenshot(id TestID, name string, png []byte) (string, error) {
	if len(png) == 0 {
		return "", fmt.Errorf("screenshot %q is empty", name)
	}
	fileName := SanitizeArtifactName(name)
	if fileName == "" {
		return "", fmt.Errorf("invalid screenshot name %q", name)
	}
	if s.timestamps {
		fileName += "_" + s.now().Format(artifactTimestampFormat)
	}
	dir := s.dir
	if len(id.Path) > 0 {
		dir = filepath.Join(dir, SanitizeArtifactName(id.Path[0]))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fileName+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("could not write screenshot %q: %w", name, err)
	}
	s.lock.Lock()
	s.written = append(s.written, path)
	s.lock.Unlock()
	return path, nil
}

// Written returns the paths of every artifact saved so far, in order.
func (s *ArtifactStore) Written() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]string(nil), s.written...)
}

// SanitizeArtifactName turns an arbitrary label into something safe to use as a file name.
func SanitizeArtifactName(name string) string {
	return strings.Trim(unsafeArtifactChars.ReplaceAllString(strings.TrimSpace(name), "-"), "-.")
}
