package merge

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/classmerge/inspector/graph"
	"go.uber.org/zap"
)

// Extension is the generated aspect file extension
const Extension = ".aj"

// Artifact represents generated aspect source
type Artifact struct {
	Name      string
	Extension string
	Content   string
	Hash      string // highwayhash fingerprint of Content
}

// FileName returns artifact file name
func (a *Artifact) FileName() string {
	return a.Name + a.Extension
}

// NewArtifact creates a fingerprinted artifact
func NewArtifact(name, content string) (*Artifact, error) {
	hash, err := graph.Fingerprint([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint %s: %w", name, err)
	}
	return &Artifact{Name: name, Extension: Extension, Content: content, Hash: hash}, nil
}

// Writer persists artifacts
type Writer struct {
	fs     afs.Service
	logger *zap.Logger
}

// Write stores artifact under baseURL, an existing file with the same fingerprint is left untouched
func (w *Writer) Write(ctx context.Context, baseURL string, artifact *Artifact) (bool, error) {
	URL := url.Join(baseURL, artifact.FileName())
	exists, err := w.fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", URL, err)
	}
	if exists {
		existing, err := w.fs.DownloadWithURL(ctx, URL)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", URL, err)
		}
		hash, err := graph.Fingerprint(existing)
		if err != nil {
			return false, fmt.Errorf("failed to fingerprint %s: %w", URL, err)
		}
		if hash == artifact.Hash {
			w.logger.Debug("artifact unchanged", zap.String("url", URL), zap.String("hash", hash))
			return false, nil
		}
	}
	if err := w.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(artifact.Content)); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", URL, err)
	}
	w.logger.Info("artifact written", zap.String("url", URL), zap.String("hash", artifact.Hash))
	return true, nil
}

// NewWriter creates a writer, nil logger disables logging
func NewWriter(fs afs.Service, logger *zap.Logger) *Writer {
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{fs: fs, logger: logger}
}
