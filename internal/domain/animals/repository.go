package animals

import "context"

// Repository guarda los animales en orden de creación.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	// FindFirstByName hace match exacto (case-sensitive) y devuelve el
	// primero en orden de inserción.
	FindFirstByName(ctx context.Context, name string) (Animal, bool, error)
	List(ctx context.Context) ([]Animal, error)
	Count(ctx context.Context) (int, error)
}
