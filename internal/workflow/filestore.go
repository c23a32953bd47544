package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"flowcanvas/pkg/errors"
	"flowcanvas/pkg/logger"
)

// FileStore persists workflow documents as one indented JSON file per
// document under a workflows directory, keyed by the sanitized name.
//
// The in-memory document index exists for id-based lookups but is never
// populated by Save, which writes straight to disk. Ordinary saved
// documents are therefore not reachable through Load; only templates are.
// This mirrors the long-standing behavior of the save/load endpoints and
// is covered by tests so it cannot change silently.
type FileStore struct {
	dir       string
	templates *TemplateRegistry
	log       logger.Logger

	mu        sync.RWMutex
	documents map[string]*Document

	// now is swappable for deterministic filename fallbacks in tests.
	now func() time.Time
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string, templates *TemplateRegistry, log logger.Logger) *FileStore {
	return &FileStore{
		dir:       dir,
		templates: templates,
		log:       log,
		documents: make(map[string]*Document),
		now:       time.Now,
	}
}

// Save writes the document to <dir>/<sanitized-name>.json, overwriting any
// existing file with the same derived name. An empty name gets a generated
// sequence name before sanitization.
func (s *FileStore) Save(ctx context.Context, doc *Document) (*SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Name == "" {
		doc.Name = fmt.Sprintf("Workflow %d", len(s.documents)+1)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, errors.IOError("create workflows directory", err)
	}

	safe := SafeFilename(doc.Name, s.now())
	filename := safe + ".json"
	path := filepath.Join(s.dir, filename)

	doc.Normalize()
	doc.SavedAt = s.now()
	doc.FilePath = path

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.SerializationError("workflow document", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, errors.IOError("write workflow file", err)
	}

	s.log.InfoContext(ctx, "workflow saved", "name", doc.Name, "file", filename)

	return &SaveResult{Filename: filename, Path: path}, nil
}

// Load resolves id against the mutable document index first, then the
// template registry.
func (s *FileStore) Load(ctx context.Context, id string) (any, error) {
	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()
	if ok {
		return doc, nil
	}

	if tpl, ok := s.templates.Get(id); ok {
		return tpl, nil
	}

	return nil, errors.NewNotFoundError("Workflow not found").WithContext("id", id)
}

// Templates returns the seeded templates.
func (s *FileStore) Templates(ctx context.Context) []Template {
	return s.templates.List()
}

// Delete removes the file derived from name. Names that sanitize to
// nothing are rejected; missing files are reported as not found.
func (s *FileStore) Delete(ctx context.Context, name string) (string, error) {
	safe := Sanitize(name)
	if safe == "" {
		return "", errors.New(errors.ErrorTypeValidation, errors.CodeInvalidFilename, "Invalid workflow name")
	}

	filename := safe + ".json"
	path := filepath.Join(s.dir, filename)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrorTypeNotFound, errors.CodeFileNotFound, "Workflow file not found")
		}
		return "", errors.IOError("stat workflow file", err)
	}

	if err := os.Remove(path); err != nil {
		return "", errors.IOError("delete workflow file", err)
	}

	s.log.InfoContext(ctx, "workflow deleted", "name", name, "file", filename)

	return filename, nil
}
