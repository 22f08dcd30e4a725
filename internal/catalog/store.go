package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shopfront/internal/domain"
)

// Store is the product catalog. Load returns the full ordered catalog; Append
// and Remove rewrite it wholesale.
type Store interface {
	Load() ([]domain.Product, error)
	Get(id int) (domain.Product, error)
	Append(p domain.Product) (domain.Product, error)
	Remove(id int) error
}

// FileStore keeps the catalog as a flat JSON array on disk. The file is read on
// every call and rewritten whole on mutation; the mutex plus temp-file rename
// keeps concurrent admin writes from losing updates.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Load() ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() ([]domain.Product, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("catalog read %s: %w", s.path, err)
	}
	var out []domain.Product
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("catalog parse %s: %w", s.path, err)
	}
	return out, nil
}

func (s *FileStore) Get(id int) (domain.Product, error) {
	products, err := s.Load()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Append assigns max(existing ids)+1 (1 on an empty catalog) and persists the
// grown catalog. Ids of deleted products may be reassigned when the deleted id
// was the maximum; accepted behavior.
func (s *FileStore) Append(p domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return domain.Product{}, err
	}
	next := 1
	for _, existing := range products {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	p.ID = next
	products = append(products, p)
	if err := s.write(products); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Remove drops the product with the given id. Removing an unknown id is a
// no-op, matching the permissive admin delete.
func (s *FileStore) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.write(kept)
}

// write replaces the catalog file atomically: marshal to a temp file in the
// same directory, then rename over the original.
func (s *FileStore) write(products []domain.Product) error {
	b, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("catalog write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// EnsureSeed writes a starter catalog when no file exists yet. Safe to run on
// every startup.
func (s *FileStore) EnsureSeed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return s.write(seedProducts)
}

var seedProducts = []domain.Product{
	{ID: 1, Name: "Enamel Camp Mug", Price: 14.50, Image: "/static/img/placeholder.jpg", Description: "Speckled enamel mug, holds 350ml."},
	{ID: 2, Name: "Canvas Tote Bag", Price: 22.00, Image: "/static/img/placeholder.jpg", Description: "Heavy-duty cotton canvas, flat bottom."},
	{ID: 3, Name: "Beeswax Candle Set", Price: 18.75, Image: "/static/img/placeholder.jpg", Description: "Three hand-dipped candles, unscented."},
}
