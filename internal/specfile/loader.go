package specfile

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/packspec/internal/config"
	"github.com/vk/packspec/internal/ctxlog"
)

// Loader is the spec-format implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new spec-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the spec file at path. The file handle is released
// before Load returns; the document holds no reference to the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading spec file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	doc, err := Parse(path, src)
	if err != nil {
		return nil, err
	}

	logger.Debug("Spec file parsed.", "sections", len(doc.Sections), "profiles", doc.Profiles())
	return doc, nil
}
