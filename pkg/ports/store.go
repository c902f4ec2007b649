package ports

import (
	"context"
	"errors"

	"github.com/aretw0/finite/pkg/schema"
)

// ErrAutomatonNotFound is returned by Store.Load and Store.Delete when no
// automaton is saved under the requested name.
var ErrAutomatonNotFound = errors.New("automaton not found")

// Store persists automaton documents under a caller-chosen name.
// Documents are stored in their serialized form so that any backend able
// to hold bytes can implement the interface.
type Store interface {
	// Save persists the document under the given name, replacing any
	// previous version.
	Save(ctx context.Context, name string, doc *schema.Document) error

	// Load retrieves the document saved under the given name.
	// Returns ErrAutomatonNotFound if no such document exists.
	Load(ctx context.Context, name string) (*schema.Document, error)

	// Delete removes the document saved under the given name.
	// Deleting a name that does not exist is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all saved documents.
	List(ctx context.Context) ([]string, error)
}
