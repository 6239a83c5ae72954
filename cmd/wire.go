package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/petition-tracker/internal/adapters/cache/memory"
	"github.com/bnema/petition-tracker/internal/adapters/remote/parliament"
	"github.com/bnema/petition-tracker/internal/adapters/remote/tracker"
	"github.com/bnema/petition-tracker/internal/adapters/render/chart"
	tomlrepo "github.com/bnema/petition-tracker/internal/adapters/repo/toml"
	chainstore "github.com/bnema/petition-tracker/internal/adapters/secrets/chain"
	sqlitestore "github.com/bnema/petition-tracker/internal/adapters/store/sqlite"
	"github.com/bnema/petition-tracker/internal/adapters/tui/detail"
	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/config"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/logging"
	"github.com/bnema/petition-tracker/internal/ports"
)

type app struct {
	settings    config.Settings
	service     *application.Service
	secretStore *chainstore.Store
	tracker     *tracker.Client
	logger      *zap.Logger
	verbose     bool
	tokenLoaded bool

	renderDetail   func(application.DetailSnapshot, chart.RenderOptions) (string, error)
	renderList     func(domain.PetitionPage, chart.RenderOptions) (string, error)
	renderViews    func([]domain.SavedView, chart.RenderOptions) (string, error)
	runInteractive func(context.Context, detail.View, detail.Options, io.Reader, io.Writer) error
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	settings, err := config.FromViper(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire view repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(settings.SecretsPath, zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	client := &tracker.Client{
		BaseURL:        settings.API.BaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: settings.API.Timeout,
	}

	return &app{
		settings:       settings,
		service:        application.NewService(client, repo, secretStore, ports.SystemClock{}).WithMaxDatasets(settings.MaxDatasets),
		secretStore:    secretStore,
		tracker:        client,
		logger:         zap.NewNop(),
		renderDetail:   chart.RenderDetail,
		renderList:     chart.RenderList,
		renderViews:    chart.RenderViews,
		runInteractive: detail.Run,
		now:            time.Now,
	}, nil
}

// prepare runs before every command once flags are parsed.
func (a *app) prepare(verbose bool) error {
	logger, err := logging.ForCommand(verbose)
	if err != nil {
		return err
	}

	a.verbose = verbose
	a.logger = logger
	a.tracker.Logger = logger
	a.secretStore.WithLogger(logger)

	return nil
}

// connect hands the stored bearer token, if any, to the tracker client.
func (a *app) connect(ctx context.Context) error {
	if a.tokenLoaded {
		return nil
	}

	token, err := a.service.Token(ctx)
	if err != nil {
		return err
	}
	a.tracker.Token = token
	a.tokenLoaded = true

	return nil
}

func (a *app) newDetailView() *application.DetailView {
	return application.NewDetailView(a.tracker, memory.NewDatasetCache(), nil, application.DetailViewOptions{
		MaxDatasets: a.settings.MaxDatasets,
		Logger:      a.logger,
	})
}

// daemonLogger always logs, at debug level when --verbose was given.
func (a *app) daemonLogger() (*zap.Logger, error) {
	return logging.New(logging.Options{Verbose: a.verbose})
}

func (a *app) openStore(ctx context.Context) (*sqlitestore.Store, error) {
	store, err := sqlitestore.Open(ctx, a.settings.StorePath, nil)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	return store, nil
}

func (a *app) newParliamentClient(logger *zap.Logger) *parliament.Client {
	return parliament.NewClient(parliament.Options{
		BaseURL:           a.settings.Poll.BaseURL,
		RequestTimeout:    a.settings.API.Timeout,
		RequestsPerSecond: a.settings.Poll.Rate,
		Retries:           a.settings.Poll.Retries,
		Logger:            logger,
	})
}
