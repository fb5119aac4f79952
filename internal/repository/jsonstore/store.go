package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
	"github.com/pemochamdev/gestion-hospitaliere/internal/repository"
	apperrors "github.com/pemochamdev/gestion-hospitaliere/pkg/errors"
)

type store struct {
	path string
}

// NewStore creates a persistence gateway backed by a single JSON document at
// path.
func NewStore(path string) repository.Store {
	return &store{path: path}
}

func (s *store) Path() string {
	return s.path
}

func (s *store) Load(ctx context.Context) (*model.Application, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewApplication(), nil
		}
		return model.NewApplication(), apperrors.CorruptStore(s.path, err)
	}

	// Decode into a pre-allocated aggregate so collections absent from the
	// document stay non-nil empty slices.
	app := model.NewApplication()
	if err := json.Unmarshal(data, app); err != nil {
		return model.NewApplication(), apperrors.CorruptStore(s.path, err)
	}
	return app, nil
}

func (s *store) Save(ctx context.Context, app *model.Application) error {
	data, err := json.MarshalIndent(app, "", "  ")
	if err != nil {
		return apperrors.WriteFailed(fmt.Errorf("encode dataset: %w", err))
	}

	// Write to a temp file in the same directory and rename over the target,
	// so a failed write never leaves a half-written document behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return apperrors.WriteFailed(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.WriteFailed(err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.WriteFailed(err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return apperrors.WriteFailed(err)
	}
	return nil
}
