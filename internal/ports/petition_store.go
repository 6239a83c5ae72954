package ports

import (
	"context"
	"time"

	"github.com/bnema/petition-tracker/internal/domain"
)

// PetitionStore persists polled petitions and their signature records. A zero
// from or to bound in a range query is unbounded.
type PetitionStore interface {
	SavePetition(ctx context.Context, petition domain.Petition) error
	GetPetition(ctx context.Context, id domain.PetitionID) (domain.Petition, error)
	HasPetition(ctx context.Context, id domain.PetitionID) (bool, error)
	ListPetitions(ctx context.Context, query domain.PetitionListQuery) (domain.PetitionPage, error)
	AddRecord(ctx context.Context, record domain.Record) error
	Records(ctx context.Context, id domain.PetitionID, from, to time.Time) ([]domain.Record, error)
	LocaleRecords(ctx context.Context, id domain.PetitionID, geo domain.Geography, code string, from, to time.Time) ([]domain.LocaleRecord, error)
	LatestRecord(ctx context.Context, id domain.PetitionID) (domain.Record, error)
	PollTargets(ctx context.Context) ([]domain.PetitionID, error)
}
