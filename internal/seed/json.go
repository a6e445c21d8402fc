package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

type fileLoader struct {
	path string
}

// NewFileLoader reads a JSON document shaped like Snapshot.
func NewFileLoader(path string) Loader {
	return &fileLoader{path: path}
}

func (l *fileLoader) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read seed file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decode seed file %s: %w", l.path, err)
	}
	return snapshot, nil
}
