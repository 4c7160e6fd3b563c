// Package assets embeds the fallback web frontend.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed frontend
var embedded embed.FS

// Frontend returns the filesystem the companion web UI is served from.
// A configured directory wins when it exists; otherwise the embedded
// assets are used.
func Frontend(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return os.DirFS(dir), nil
		}
		slog.Default().Warn("frontend directory is not usable, serving embedded assets",
			slog.String("directory", dir),
			slog.Any("error", err),
		)
	}

	sub, err := fs.Sub(embedded, "frontend")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(frontend) > %w", err)
	}
	return sub, nil
}
