// Package localfs implements the storage gateway on the local filesystem,
// for development and tests.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type Gateway struct {
	basePath string
}

func New(basePath string) (*Gateway, error) {
	if basePath == "" {
		basePath = "./data/storage"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Gateway{basePath: basePath}, nil
}

func (g *Gateway) Put(_ context.Context, localPath, key string) error {
	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(g.basePath, key))
	if err != nil {
		return fmt.Errorf("create object file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write object file: %w", err)
	}
	return nil
}
