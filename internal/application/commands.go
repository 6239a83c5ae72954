package application

import (
	"github.com/bnema/petition-tracker/internal/domain"
)

type WatchCommand struct {
	PetitionID domain.PetitionID
	Name       string
	Window     domain.TimeWindow
	Selections []domain.Selection
	ShowTotal  bool
}

type SetTokenCommand struct {
	Token string
}

type PopulateCommand struct {
	State    domain.PetitionState
	MaxPages int
}
