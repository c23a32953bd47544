package workflow

import "context"

// SaveResult reports where a document was persisted.
type SaveResult struct {
	Filename string `json:"filename"`
	Path     string `json:"file_path"`
}

// Store persists workflow documents. Implementations must resolve Load
// against the mutable document index first and the template registry
// second, and must key Save and Delete by the sanitized document name.
//
// Load returns either a *Document or a Template, serialized verbatim to
// the caller.
type Store interface {
	Save(ctx context.Context, doc *Document) (*SaveResult, error)
	Load(ctx context.Context, id string) (any, error)
	Templates(ctx context.Context) []Template
	Delete(ctx context.Context, name string) (string, error)
}
