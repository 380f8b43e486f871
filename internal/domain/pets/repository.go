package pets

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el registro completo.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	// Update reemplaza todos los campos mutables. ErrNotFound si el ID no existe.
	Update(ctx context.Context, p Pet) error
	// Delete es idempotente: borrar un ID inexistente no es error.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f Filter) ([]Pet, error)
}
