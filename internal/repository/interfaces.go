package repository

import (
	"context"

	"github.com/pemochamdev/gestion-hospitaliere/internal/model"
)

// Store is the persistence gateway for the whole dataset. The document it
// keeps is the single source of truth between runs; every mutating operation
// saves the full aggregate as its last step.
type Store interface {
	// Load parses the persisted document. A missing document yields a fresh
	// empty Application and no error. A document that exists but cannot be
	// parsed yields a fresh empty Application together with a corrupt-store
	// error: the caller decides whether to continue on the empty dataset.
	Load(ctx context.Context) (*model.Application, error)

	// Save serializes the full aggregate, replacing any prior content
	// atomically.
	Save(ctx context.Context, app *model.Application) error

	// Path reports where the document lives.
	Path() string
}
