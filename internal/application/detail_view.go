package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

const refreshConcurrency = 4

type DetailViewOptions struct {
	MaxDatasets int
	Logger      *zap.Logger
}

// LoadOptions seeds a detail view. With no selections Total is always shown.
type LoadOptions struct {
	Window     domain.TimeWindow
	Selections []domain.Selection
	ShowTotal  bool
}

func LoadOptionsFromView(view domain.SavedView) LoadOptions {
	return LoadOptions{
		Window:     view.Window,
		Selections: append([]domain.Selection(nil), view.Selections...),
		ShowTotal:  view.ShowTotal,
	}
}

type DetailSnapshot struct {
	Petition     domain.Petition
	Window       domain.TimeWindow
	Selections   []domain.Selection
	Datasets     []domain.Dataset
	TotalVisible bool
	MaxDatasets  int
	TakenAt      time.Time
}

// DetailView drives the chart of one petition. Every operation holds the
// view lock across its fetches, so operations apply in the order they were
// issued and a failed operation leaves the view as it was.
type DetailView struct {
	mu       sync.Mutex
	api      ports.PetitionAPI
	cache    ports.DatasetCache
	clock    ports.Clock
	logger   *zap.Logger
	registry *Registry

	maxDatasets int
	loaded      bool
	petition    domain.Petition
	window      domain.TimeWindow
	config      *domain.GeoConfig
}

func NewDetailView(api ports.PetitionAPI, cache ports.DatasetCache, clock ports.Clock, opts DetailViewOptions) *DetailView {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxDatasets := opts.MaxDatasets
	if maxDatasets <= 0 {
		maxDatasets = domain.DefaultMaxDatasets
	}

	return &DetailView{
		api:         api,
		cache:       cache,
		clock:       clock,
		logger:      logger,
		registry:    NewRegistry(),
		maxDatasets: maxDatasets,
		config:      domain.NewGeoConfig(maxDatasets),
	}
}

func (v *DetailView) Load(ctx context.Context, id domain.PetitionID, opts LoadOptions) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	window := opts.Window
	if window.IsZero() {
		window = domain.DefaultWindow()
	}
	if err := window.Validate(); err != nil {
		return err
	}

	config := domain.NewGeoConfig(v.maxDatasets)
	for _, selection := range opts.Selections {
		if err := config.Add(selection.Geography, selection.Locale); err != nil {
			return fmt.Errorf("apply selection: %w", err)
		}
	}

	petition, err := v.api.GetPetition(ctx, id)
	if err != nil {
		return fmt.Errorf("get petition %s: %w", id, err)
	}

	showTotal := opts.ShowTotal || config.Len() == 0
	datasets, err := v.fetchSeries(ctx, id, window, config.Selections(), showTotal)
	if err != nil {
		return err
	}

	v.cache.Reset()
	v.registry.Clear()
	for _, dataset := range datasets {
		v.cache.Put(dataset.Key, dataset)
		v.registry.Add(dataset)
		if !dataset.Key.IsTotal() {
			config.SetName(dataset.Geography, dataset.Locale.Code, dataset.Locale.Name)
		}
	}

	v.loaded = true
	v.petition = petition
	v.window = window
	v.config = config
	v.logger.Debug("detail view loaded",
		zap.Int64("petition_id", int64(id)),
		zap.Stringer("window", window),
		zap.Int("datasets", v.registry.Len()),
	)

	return nil
}

// AddLocale charts a locale. The first locale replaces Total unless Total
// was explicitly toggled on alongside other locales.
func (v *DetailView) AddLocale(ctx context.Context, geo domain.Geography, locale domain.Locale) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.ErrNoPetitionLoaded
	}

	next := v.config.Clone()
	if err := next.Add(geo, locale); err != nil {
		return err
	}

	locale.Code = domain.NormalizeLocaleCode(locale.Code)
	dataset, err := v.cachedOrFetchLocale(ctx, geo, locale)
	if err != nil {
		return err
	}
	if !dataset.Placeholder {
		next.SetName(geo, locale.Code, dataset.Locale.Name)
	}

	if v.config.Len() == 0 {
		v.registry.Remove(domain.TotalKey)
	}
	v.config = next
	v.registry.Add(dataset)

	return nil
}

// RemoveLocale drops a locale from the chart. Its series stays cached, and
// removing the last locale brings Total back.
func (v *DetailView) RemoveLocale(ctx context.Context, geo domain.Geography, code string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.ErrNoPetitionLoaded
	}

	next := v.config.Clone()
	removed, err := next.Remove(geo, code)
	if err != nil {
		return err
	}

	var total domain.Dataset
	restoreTotal := next.Len() == 0 && !v.registry.Has(domain.TotalKey)
	if restoreTotal {
		total, err = v.cachedOrFetchTotal(ctx)
		if err != nil {
			return err
		}
	}

	v.config = next
	v.registry.Remove(domain.LocaleKey(geo, removed.Code))
	if restoreTotal {
		v.registry.Add(total)
	}

	return nil
}

func (v *DetailView) ToggleTotal(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.ErrNoPetitionLoaded
	}

	if v.registry.Has(domain.TotalKey) {
		if v.registry.Len() == 1 {
			return domain.ErrLastDataset
		}
		v.registry.Remove(domain.TotalKey)
		return nil
	}

	total, err := v.cachedOrFetchTotal(ctx)
	if err != nil {
		return err
	}
	v.registry.Add(total)

	return nil
}

// SetWindow refetches every displayed series for the new window and drops
// everything cached for the previous one.
func (v *DetailView) SetWindow(ctx context.Context, window domain.TimeWindow) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.ErrNoPetitionLoaded
	}
	if err := window.Validate(); err != nil {
		return err
	}

	datasets, err := v.fetchSeries(ctx, v.petition.ID, window, v.config.Selections(), v.registry.Has(domain.TotalKey))
	if err != nil {
		return err
	}

	v.cache.Reset()
	for _, dataset := range datasets {
		v.cache.Put(dataset.Key, dataset)
		v.registry.Replace(dataset)
	}
	v.window = window

	return nil
}

// Refresh refetches the petition and the displayed series for the current window.
func (v *DetailView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.ErrNoPetitionLoaded
	}

	petition, err := v.api.GetPetition(ctx, v.petition.ID)
	if err != nil {
		return fmt.Errorf("get petition %s: %w", v.petition.ID, err)
	}

	datasets, err := v.fetchSeries(ctx, v.petition.ID, v.window, v.config.Selections(), v.registry.Has(domain.TotalKey))
	if err != nil {
		return err
	}

	v.petition = petition
	for _, dataset := range datasets {
		v.cache.Put(dataset.Key, dataset)
		v.registry.Replace(dataset)
	}

	return nil
}

func (v *DetailView) Snapshot() DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return DetailSnapshot{
		Petition:     v.petition,
		Window:       v.window,
		Selections:   v.config.Selections(),
		Datasets:     v.registry.Datasets(),
		TotalVisible: v.registry.Has(domain.TotalKey),
		MaxDatasets:  v.maxDatasets,
		TakenAt:      v.clock.Now(),
	}
}

// SavedView captures the current chart so it can be reopened later.
func (v *DetailView) SavedView() (domain.SavedView, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.loaded {
		return domain.SavedView{}, domain.ErrNoPetitionLoaded
	}

	return domain.SavedView{
		PetitionID: v.petition.ID,
		Name:       v.petition.Action,
		Window:     v.window,
		Selections: v.config.Selections(),
		ShowTotal:  v.config.Len() > 0 && v.registry.Has(domain.TotalKey),
		UpdatedAt:  v.clock.Now(),
	}, nil
}

func (v *DetailView) cachedOrFetchTotal(ctx context.Context) (domain.Dataset, error) {
	if dataset, ok := v.cache.Get(domain.TotalKey); ok {
		return dataset, nil
	}

	dataset, err := v.fetchTotal(ctx, v.petition.ID, v.window)
	if err != nil {
		return domain.Dataset{}, err
	}
	v.cache.Put(domain.TotalKey, dataset)

	return dataset, nil
}

func (v *DetailView) cachedOrFetchLocale(ctx context.Context, geo domain.Geography, locale domain.Locale) (domain.Dataset, error) {
	key := domain.LocaleKey(geo, locale.Code)
	if dataset, ok := v.cache.Get(key); ok {
		v.logger.Debug("dataset cache hit", zap.String("key", string(key)))
		return dataset, nil
	}

	dataset, err := v.api.FetchLocale(ctx, v.petition.ID, geo, locale, v.window, ports.FetchOptions{EmptyOnNotFound: true})
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch %s %s signatures: %w", geo, locale.Code, err)
	}
	v.cache.Put(key, dataset)

	return dataset, nil
}

// fetchTotal returns an empty Total series when the window holds no records,
// which the tracker reports as a plain 404.
func (v *DetailView) fetchTotal(ctx context.Context, id domain.PetitionID, window domain.TimeWindow) (domain.Dataset, error) {
	dataset, err := v.api.FetchTotal(ctx, id, window)
	if err == nil {
		return dataset, nil
	}
	if errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrPetitionNotFound) {
		v.logger.Debug("no total signatures in window",
			zap.Int64("petition_id", int64(id)),
			zap.Stringer("window", window),
		)
		empty := domain.NewTotalDataset(nil, v.clock.Now())
		empty.Placeholder = true
		return empty, nil
	}

	return domain.Dataset{}, fmt.Errorf("fetch total signatures: %w", err)
}

// fetchSeries fetches Total (when requested) and every selection
// concurrently. Results keep the order Total, then selections.
func (v *DetailView) fetchSeries(ctx context.Context, id domain.PetitionID, window domain.TimeWindow, selections []domain.Selection, total bool) ([]domain.Dataset, error) {
	offset := 0
	if total {
		offset = 1
	}
	datasets := make([]domain.Dataset, len(selections)+offset)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(refreshConcurrency)

	if total {
		group.Go(func() error {
			dataset, err := v.fetchTotal(groupCtx, id, window)
			if err != nil {
				return err
			}
			datasets[0] = dataset
			return nil
		})
	}

	for i, selection := range selections {
		group.Go(func() error {
			dataset, err := v.api.FetchLocale(groupCtx, id, selection.Geography, selection.Locale, window, ports.FetchOptions{EmptyOnNotFound: true})
			if err != nil {
				return fmt.Errorf("fetch %s %s signatures: %w", selection.Geography, selection.Locale.Code, err)
			}
			datasets[i+offset] = dataset
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return datasets, nil
}

// IsNotFound reports whether err means the petition itself does not exist.
// Missing series never count.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPetitionNotFound)
}
