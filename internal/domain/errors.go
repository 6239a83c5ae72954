package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrPetitionNotFound      = fmt.Errorf("petition %w", ErrNotFound)
	ErrViewNotFound          = fmt.Errorf("saved view %w", ErrNotFound)
	ErrSecretNotFound        = fmt.Errorf("secret %w", ErrNotFound)
	ErrUnknownGeography      = errors.New("unknown geography")
	ErrLocaleAlreadySelected = errors.New("locale already selected")
	ErrLocaleNotSelected     = errors.New("locale not selected")
	ErrMaxDatasets           = errors.New("max datasets reached")
	ErrLastDataset           = errors.New("cannot hide the only displayed dataset")
	ErrInvalidWindow         = errors.New("invalid time window")
	ErrInvalidPetitionState  = errors.New("invalid petition state")
	ErrNoPetitionLoaded      = errors.New("no petition loaded")
)
