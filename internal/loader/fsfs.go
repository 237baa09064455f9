package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("amis loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("amis loader: fs is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("amis loader: read %s: %w", name, err)
	}
	return data, nil
}
