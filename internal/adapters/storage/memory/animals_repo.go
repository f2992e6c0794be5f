package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-registry/internal/domain/animals"
)

var (
	ErrNotFound = errors.New("not found")
)

// animalRepo guarda los registros en un slice para preservar el orden de
// inserción; byID apunta al índice de cada uno.
type animalRepo struct {
	mu      sync.RWMutex
	records []animals.Animal
	byID    map[string]int
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]int),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = len(r.records)
	r.records = append(r.records, a.Clone())
	return nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	i, exists := r.byID[a.ID]
	if !exists {
		return ErrNotFound
	}
	r.records[i] = a.Clone()
	return nil
}

func (r *animalRepo) FindFirstByName(ctx context.Context, name string) (animals.Animal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.records {
		if a.Name == name {
			return a.Clone(), true, nil
		}
	}
	return animals.Animal{}, false, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a.Clone())
	}
	return out, nil
}

func (r *animalRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}
