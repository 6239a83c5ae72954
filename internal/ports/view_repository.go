package ports

import (
	"context"

	"github.com/bnema/petition-tracker/internal/domain"
)

type ViewRepository interface {
	GetByPetitionID(ctx context.Context, id domain.PetitionID) (domain.SavedView, error)
	List(ctx context.Context) ([]domain.SavedView, error)
	Save(ctx context.Context, view domain.SavedView) error
	Delete(ctx context.Context, id domain.PetitionID) error
}
