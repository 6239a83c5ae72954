package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

// TokenSecretKey names the tracker API bearer token in the secret store.
const TokenSecretKey = "petition-tracker/api/token"

var ErrEmptyToken = errors.New("token is empty")

type Service struct {
	api         ports.PetitionAPI
	views       ports.ViewRepository
	secrets     ports.SecretStore
	clock       ports.Clock
	maxDatasets int
}

func NewService(api ports.PetitionAPI, views ports.ViewRepository, secrets ports.SecretStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		api:         api,
		views:       views,
		secrets:     secrets,
		clock:       clock,
		maxDatasets: domain.DefaultMaxDatasets,
	}
}

func (s *Service) WithMaxDatasets(max int) *Service {
	if max > 0 {
		s.maxDatasets = max
	}
	return s
}

func (s *Service) ListPetitions(ctx context.Context, query domain.PetitionListQuery) (domain.PetitionPage, error) {
	page, err := s.api.ListPetitions(ctx, query.Normalize())
	if err != nil {
		return domain.PetitionPage{}, fmt.Errorf("list petitions: %w", err)
	}

	return page, nil
}

// Watch saves a view for a petition. The petition must exist; its action
// becomes the view name unless one is given.
func (s *Service) Watch(ctx context.Context, cmd WatchCommand) (domain.SavedView, error) {
	view := domain.SavedView{
		PetitionID: cmd.PetitionID,
		Name:       strings.TrimSpace(cmd.Name),
		Window:     cmd.Window,
		Selections: cmd.Selections,
		ShowTotal:  cmd.ShowTotal,
	}
	if err := view.Validate(); err != nil {
		return domain.SavedView{}, err
	}
	if _, err := view.GeoConfig(s.maxDatasets); err != nil {
		return domain.SavedView{}, err
	}

	petition, err := s.api.GetPetition(ctx, cmd.PetitionID)
	if err != nil {
		return domain.SavedView{}, fmt.Errorf("get petition %s: %w", cmd.PetitionID, err)
	}
	if view.Name == "" {
		view.Name = petition.Action
	}

	return s.SaveView(ctx, view)
}

func (s *Service) Unwatch(ctx context.Context, id domain.PetitionID) error {
	if err := s.views.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete saved view: %w", err)
	}

	return nil
}

func (s *Service) Watched(ctx context.Context) ([]domain.SavedView, error) {
	views, err := s.views.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved views: %w", err)
	}

	return views, nil
}

// SavedView reports false when the petition has no saved view.
func (s *Service) SavedView(ctx context.Context, id domain.PetitionID) (domain.SavedView, bool, error) {
	view, err := s.views.GetByPetitionID(ctx, id)
	if errors.Is(err, domain.ErrViewNotFound) {
		return domain.SavedView{}, false, nil
	}
	if err != nil {
		return domain.SavedView{}, false, fmt.Errorf("get saved view: %w", err)
	}

	return view, true, nil
}

// SaveView stamps and stores a view, returning what was stored.
func (s *Service) SaveView(ctx context.Context, view domain.SavedView) (domain.SavedView, error) {
	view.UpdatedAt = s.clock.Now()
	if err := s.views.Save(ctx, view); err != nil {
		return domain.SavedView{}, fmt.Errorf("save view: %w", err)
	}

	return view, nil
}

func (s *Service) SetToken(ctx context.Context, cmd SetTokenCommand) error {
	token := strings.TrimSpace(cmd.Token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.secrets.Put(ctx, TokenSecretKey, token); err != nil {
		return fmt.Errorf("store api token: %w", err)
	}

	return nil
}

func (s *Service) RemoveToken(ctx context.Context) error {
	if err := s.secrets.Delete(ctx, TokenSecretKey); err != nil {
		return fmt.Errorf("delete api token: %w", err)
	}

	return nil
}

// Token returns the stored API token, or "" when none is stored.
func (s *Service) Token(ctx context.Context) (string, error) {
	token, err := s.secrets.Get(ctx, TokenSecretKey)
	if errors.Is(err, domain.ErrSecretNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read api token: %w", err)
	}

	return strings.TrimSpace(token), nil
}
