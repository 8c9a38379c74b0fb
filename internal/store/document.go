package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcollings/studyhub/internal/domain"
)

// DocumentKey is the key the study document is stored under.
const DocumentKey = "studyhub_data"

// DocumentRepo reads and writes the study document as a single JSON blob.
type DocumentRepo struct {
	store *Store
}

// Documents returns a DocumentRepo backed by this store.
func (s *Store) Documents() *DocumentRepo {
	return &DocumentRepo{store: s}
}

// Load reads the document stored under key. A missing key, invalid JSON, or
// a blob that fails schema validation all yield the fallback with found
// false, never an error; only genuine storage failures error. Loaded
// documents are migrated to the current version before being returned.
func (r *DocumentRepo) Load(ctx context.Context, key string, fallback *domain.Document) (*domain.Document, bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("load document: %w", err)
	}
	if !ok {
		return fallback, false, nil
	}

	if err := validateDocument(raw); err != nil {
		return fallback, false, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fallback, false, nil
	}

	doc.Migrate()
	return &doc, true, nil
}

// Save marshals doc and writes it under key synchronously. A write failure
// is not locally recoverable: the in-memory and persisted states diverge,
// so callers should treat the returned error as fatal.
func (r *DocumentRepo) Save(ctx context.Context, key string, doc *domain.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := r.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
