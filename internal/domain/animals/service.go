package animals

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownVariant = errors.New("unknown animal type")
	ErrNotFound       = errors.New("animal not found")
	ErrInvalidAge     = errors.New("invalid age")
)

// Service es el registro: alta, entrenamiento, búsqueda y listado.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// AddAnimal crea el animal solo si la categoría es válida y la edad no es
// negativa. Si falla, no se agrega nada al registro.
func (s *Service) AddAnimal(ctx context.Context, variantName, name string, age int) (Animal, error) {
	v, err := ParseVariant(variantName)
	if err != nil {
		return Animal{}, err
	}
	if age < 0 {
		return Animal{}, ErrInvalidAge
	}

	a := New(uuid.NewString(), name, age, v, s.now())
	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}
	return a, nil
}

// TrainAnimal agrega el comando al primer animal con ese nombre.
func (s *Service) TrainAnimal(ctx context.Context, name, command string) (Animal, error) {
	a, ok, err := s.repo.FindFirstByName(ctx, name)
	if err != nil {
		return Animal{}, fmt.Errorf("find animal: %w", err)
	}
	if !ok {
		return Animal{}, ErrNotFound
	}

	a.AddCommand(command)
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("update animal %s: %w", a.ID, err)
	}
	return a, nil
}

func (s *Service) FindByName(ctx context.Context, name string) (Animal, bool, error) {
	return s.repo.FindFirstByName(ctx, name)
}

// ListAll es perezoso: cada iteración vuelve a leer el repo, así que se
// puede recorrer de nuevo llamando otra vez. Si el repo falla se entrega
// un único par con el error.
func (s *Service) ListAll(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		items, err := s.repo.List(ctx)
		if err != nil {
			yield(Entry{}, fmt.Errorf("list animals: %w", err))
			return
		}
		for _, a := range items {
			if !yield(a.Entry(), nil) {
				return
			}
		}
	}
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
