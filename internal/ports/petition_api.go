package ports

import (
	"context"

	"github.com/bnema/petition-tracker/internal/domain"
)

type FetchOptions struct {
	// EmptyOnNotFound turns a 404 for a locale into an empty placeholder dataset.
	EmptyOnNotFound bool
}

// PetitionAPI is the data fetcher used by the detail view and list commands.
type PetitionAPI interface {
	GetPetition(ctx context.Context, id domain.PetitionID) (domain.Petition, error)
	ListPetitions(ctx context.Context, query domain.PetitionListQuery) (domain.PetitionPage, error)
	FetchTotal(ctx context.Context, id domain.PetitionID, window domain.TimeWindow) (domain.Dataset, error)
	FetchLocale(ctx context.Context, id domain.PetitionID, geo domain.Geography, locale domain.Locale, window domain.TimeWindow, opts FetchOptions) (domain.Dataset, error)
}
