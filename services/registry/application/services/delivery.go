package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DeliveryStrategy is one mechanism for handing an export to the user's
// environment. Strategies are independent and side-effect isolated: a
// failure means "try the next one", never a partial delivery.
type DeliveryStrategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// Deliver hands doc to the environment and returns a human-readable
	// destination (a file path, "stdout", …).
	Deliver(ctx context.Context, doc *ExportDocument) (string, error)
}

// DefaultStrategies is the standard delivery chain for CLI exports:
// configured export directory, then the user's home directory, then the OS
// temp directory, then stdout as the last resort. An empty exportDir skips
// the first link.
func DefaultStrategies(exportDir string) []DeliveryStrategy {
	var out []DeliveryStrategy
	if exportDir != "" {
		out = append(out, DirStrategy{Dir: exportDir})
	}
	return append(out,
		HomeDirStrategy{},
		DirStrategy{Dir: os.TempDir()},
		StdoutStrategy{Out: os.Stdout},
	)
}

// DirStrategy writes the document into a fixed directory.
type DirStrategy struct {
	Dir string
}

func (s DirStrategy) Name() string { return "dir:" + s.Dir }

func (s DirStrategy) Deliver(_ context.Context, doc *ExportDocument) (string, error) {
	return writeFile(s.Dir, doc)
}

// HomeDirStrategy writes the document into the user's home directory.
type HomeDirStrategy struct{}

func (HomeDirStrategy) Name() string { return "home" }

func (HomeDirStrategy) Deliver(_ context.Context, doc *ExportDocument) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return writeFile(home, doc)
}

// StdoutStrategy streams the CSV to the given writer. Always last in the
// chain — it cannot fail short of a broken pipe, so the user can at least
// copy the data by hand.
type StdoutStrategy struct {
	Out io.Writer
}

func (StdoutStrategy) Name() string { return "stdout" }

func (s StdoutStrategy) Deliver(_ context.Context, doc *ExportDocument) (string, error) {
	if _, err := s.Out.Write(doc.Content); err != nil {
		return "", fmt.Errorf("write stdout: %w", err)
	}
	if _, err := io.WriteString(s.Out, "\n"); err != nil {
		return "", fmt.Errorf("write stdout: %w", err)
	}
	return "stdout", nil
}

func writeFile(dir string, doc *ExportDocument) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
