package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "PT"

	// Dir is the per-user directory below $HOME holding config, views and secrets.
	Dir = ".petition-tracker"
)

const (
	KeyAPIBaseURL        = "api.base_url"
	KeyAPITimeout        = "api.timeout"
	KeyViewsPath         = "views.path"
	KeyStorePath         = "store.path"
	KeySecretsPath       = "secrets.path"
	KeyViewMaxDatasets   = "view.max_datasets"
	KeyPollBaseURL       = "poll.base_url"
	KeyPollSchedule      = "poll.schedule"
	KeyPollConcurrency   = "poll.concurrency"
	KeyPollRate          = "poll.rate"
	KeyPollRetries       = "poll.retries"
	KeyServeAddr         = "serve.addr"
	KeyServeRequireToken = "serve.require_token"
)

type Settings struct {
	API         APISettings
	ViewsPath   string
	StorePath   string
	SecretsPath string
	MaxDatasets int
	Poll        PollSettings
	Serve       ServeSettings
}

type APISettings struct {
	BaseURL string
	Timeout time.Duration
}

type PollSettings struct {
	BaseURL     string
	Schedule    string
	Concurrency int
	Rate        float64
	Retries     int
}

type ServeSettings struct {
	Addr         string
	RequireToken bool
}

// Load reads $HOME/.petition-tracker/config.toml into cfg. A missing file is
// not an error; PT_* environment variables override file values.
func Load(cfg *viper.Viper) (*viper.Viper, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(homeDir, Dir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(root)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg, root)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults(cfg *viper.Viper, root string) {
	cfg.SetDefault(KeyAPIBaseURL, "http://127.0.0.1:8085")
	cfg.SetDefault(KeyAPITimeout, 15*time.Second)
	cfg.SetDefault(KeyViewsPath, filepath.Join(root, "views.toml"))
	cfg.SetDefault(KeyStorePath, filepath.Join(root, "petitions.db"))
	cfg.SetDefault(KeySecretsPath, filepath.Join(root, "secrets"))
	cfg.SetDefault(KeyViewMaxDatasets, 11)
	cfg.SetDefault(KeyPollBaseURL, "https://petition.parliament.uk")
	cfg.SetDefault(KeyPollSchedule, "@every 10m")
	cfg.SetDefault(KeyPollConcurrency, 8)
	cfg.SetDefault(KeyPollRate, 5.0)
	cfg.SetDefault(KeyPollRetries, 3)
	cfg.SetDefault(KeyServeAddr, "127.0.0.1:8085")
	cfg.SetDefault(KeyServeRequireToken, false)
}

func FromViper(cfg *viper.Viper) (Settings, error) {
	settings := Settings{
		API: APISettings{
			BaseURL: strings.TrimRight(cfg.GetString(KeyAPIBaseURL), "/"),
			Timeout: cfg.GetDuration(KeyAPITimeout),
		},
		ViewsPath:   cfg.GetString(KeyViewsPath),
		StorePath:   cfg.GetString(KeyStorePath),
		SecretsPath: cfg.GetString(KeySecretsPath),
		MaxDatasets: cfg.GetInt(KeyViewMaxDatasets),
		Poll: PollSettings{
			BaseURL:     strings.TrimRight(cfg.GetString(KeyPollBaseURL), "/"),
			Schedule:    cfg.GetString(KeyPollSchedule),
			Concurrency: cfg.GetInt(KeyPollConcurrency),
			Rate:        cfg.GetFloat64(KeyPollRate),
			Retries:     cfg.GetInt(KeyPollRetries),
		},
		Serve: ServeSettings{
			Addr:         cfg.GetString(KeyServeAddr),
			RequireToken: cfg.GetBool(KeyServeRequireToken),
		},
	}

	if err := settings.validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) validate() error {
	var errs []error
	if s.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyAPIBaseURL))
	}
	if s.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyAPITimeout))
	}
	if s.ViewsPath == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyViewsPath))
	}
	if s.StorePath == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyStorePath))
	}
	if s.MaxDatasets <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyViewMaxDatasets))
	}
	if s.Poll.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollConcurrency))
	}
	if s.Poll.Rate <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollRate))
	}
	if s.Poll.Retries < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyPollRetries))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
