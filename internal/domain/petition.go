package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type PetitionID int64

func (id PetitionID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

type PetitionState string

const (
	PetitionStateOpen     PetitionState = "open"
	PetitionStateClosed   PetitionState = "closed"
	PetitionStateRejected PetitionState = "rejected"
)

// ParsePetitionState accepts a state name or its single-letter code. An empty
// string or "all" yields the zero state, which matches every petition.
func ParsePetitionState(raw string) (PetitionState, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return "", nil
	case "open", "o":
		return PetitionStateOpen, nil
	case "closed", "c":
		return PetitionStateClosed, nil
	case "rejected", "r":
		return PetitionStateRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPetitionState, raw)
	}
}

const (
	ResponseThreshold int64 = 10_000
	DebateThreshold   int64 = 100_000
)

type Petition struct {
	ID                         PetitionID
	Action                     string
	Background                 string
	AdditionalDetails          string
	URL                        string
	State                      PetitionState
	Archived                   bool
	Signatures                 int64
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	ClosedAt                   time.Time
	RejectedAt                 time.Time
	ResponseThresholdReachedAt time.Time
	DebateThresholdReachedAt   time.Time
	PolledAt                   time.Time
}

func (p Petition) IsOpen() bool {
	return p.State == PetitionStateOpen && !p.Archived
}

type ThresholdProgress struct {
	Name      string
	Target    int64
	Percent   int
	Reached   bool
	ReachedAt time.Time
}

func (p Petition) Thresholds() []ThresholdProgress {
	return []ThresholdProgress{
		thresholdProgress("response", ResponseThreshold, p.Signatures, p.ResponseThresholdReachedAt),
		thresholdProgress("debate", DebateThreshold, p.Signatures, p.DebateThresholdReachedAt),
	}
}

func thresholdProgress(name string, target, signatures int64, reachedAt time.Time) ThresholdProgress {
	reached := signatures >= target || !reachedAt.IsZero()
	return ThresholdProgress{
		Name:      name,
		Target:    target,
		Percent:   Progress(signatures, target),
		Reached:   reached,
		ReachedAt: reachedAt,
	}
}

// Progress returns the completion percentage towards target, capped at 100.
func Progress(signatures, target int64) int {
	if target <= 0 || signatures >= target {
		return 100
	}
	if signatures <= 0 {
		return 0
	}

	return int(math.Round(float64(signatures) / float64(target) * 100))
}
