package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink accepts final page text under a destination identifier. Write
// failures are reported to the caller, never retried.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// FileSink writes pages to the local filesystem, optionally rooted in a
// directory.
type FileSink struct {
	// Dir prefixes destination names when non-empty.
	Dir string
}

var _ Sink = (*FileSink)(nil)

func (s *FileSink) Write(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("output: destination name is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := name
	if s != nil && s.Dir != "" {
		path = filepath.Join(s.Dir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("output: write %q: %w", path, err)
	}
	return nil
}
