package ports

import (
	"context"

	"github.com/bnema/petition-tracker/internal/domain"
)

// ParliamentAPI reads petitions from the upstream parliament service.
type ParliamentAPI interface {
	FetchPetition(ctx context.Context, id domain.PetitionID) (domain.PetitionSnapshot, error)
	// ListPage returns the petition ids on a page and whether a next page exists.
	ListPage(ctx context.Context, state domain.PetitionState, page int) ([]domain.PetitionID, bool, error)
}
