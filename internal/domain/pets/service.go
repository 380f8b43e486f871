package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrNotAvailable = errors.New("pet not available")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	Category string
	// nil = default (disponible al entrar al catálogo).
	Available *bool
}

type UpdateInput struct {
	Name      string
	Category  string
	Available *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return Pet{}, ErrInvalidInput
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return s.repo.Create(ctx, Pet{
		Name:      name,
		Category:  category,
		Available: available,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Update es un reemplazo completo de los campos mutables (PUT).
// El ID viene del path; cualquier id del body se ignora.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return Pet{}, ErrInvalidInput
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p := Pet{
		ID:        id,
		Name:      name,
		Category:  category,
		Available: available,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

// Purchase marca la mascota como no disponible.
// Comprar una ya vendida es conflicto (ErrNotAvailable).
func (s *Service) Purchase(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if !p.Available {
		return Pet{}, ErrNotAvailable
	}

	p.Available = false
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
