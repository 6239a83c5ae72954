package application

import (
	"time"

	"github.com/bnema/petition-tracker/internal/domain"
)

type PollFailure struct {
	PetitionID domain.PetitionID
	Err        error
}

// PollResult summarises one poll run. RunID correlates the run's log lines.
type PollResult struct {
	RunID     string
	StartedAt time.Time
	Elapsed   time.Duration
	Recorded  []domain.PetitionID
	Failed    []PollFailure
}

type PopulateResult struct {
	RunID   string
	Pages   int
	Seen    int
	Added   []domain.PetitionID
	Skipped int
	Failed  []PollFailure
}
