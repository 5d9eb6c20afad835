package usecase

import (
	"context"
	"errors"

	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Hinter    ports.Hinter
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, h ports.Hinter, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

func (u *Service) ValidateFormat(ctx context.Context, doc *domain.PuzzleDocument) (bool, []domain.FormatIssue, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.ValidateFormat(ctx, doc)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
