package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/petition-tracker/internal/config"
	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	viewsFileMode   = 0o600
	viewsDirMode    = 0o700
	tempFilePattern = ".views-*.toml.tmp"
)

// Repository stores saved views in a single TOML file.
type Repository struct {
	viewsPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ViewRepository = (*Repository)(nil)

// NewRepository resolves views.path from cfg, which is expected to have been
// loaded by config.Load.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		loaded, err := config.Load(viper.New())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	viewsPath := cfg.GetString(config.KeyViewsPath)
	if viewsPath == "" {
		return nil, errors.New("views path is empty")
	}

	return NewRepositoryAt(viewsPath)
}

func NewRepositoryAt(path string) (*Repository, error) {
	viewsPath, err := normalizeViewsPath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{viewsPath: viewsPath, mu: lockForPath(viewsPath)}, nil
}

func (r *Repository) Save(ctx context.Context, view domain.SavedView) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := view.Validate(); err != nil {
		return fmt.Errorf("validate saved view: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(view)
	updated := false
	for i := range file.Views {
		if file.Views[i].PetitionID == encoded.PetitionID {
			file.Views[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Views = append(file.Views, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByPetitionID(ctx context.Context, id domain.PetitionID) (domain.SavedView, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedView{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.SavedView{}, err
	}

	for _, entry := range file.Views {
		if entry.PetitionID == int64(id) {
			return fromSchema(entry)
		}
	}

	return domain.SavedView{}, fmt.Errorf("petition %s: %w", id, domain.ErrViewNotFound)
}

func (r *Repository) List(ctx context.Context) ([]domain.SavedView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	views := make([]domain.SavedView, 0, len(file.Views))
	for _, entry := range file.Views {
		view, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].PetitionID < views[j].PetitionID
	})

	return views, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.PetitionID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Views[:0]
	for _, entry := range file.Views {
		if entry.PetitionID != int64(id) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Views) {
		return fmt.Errorf("petition %s: %w", id, domain.ErrViewNotFound)
	}
	file.Views = kept

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.viewsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read views file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode views file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeViewsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve views path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.viewsPath), viewsDirMode); err != nil {
		return fmt.Errorf("create views directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode views file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.viewsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp views file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp views file: %w", err)
	}

	if err := tempFile.Chmod(viewsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp views file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp views file: %w", err)
	}

	if err := os.Rename(tempName, r.viewsPath); err != nil {
		return fmt.Errorf("replace views file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(view domain.SavedView) viewSchema {
	selections := make([]selectionSchema, 0, len(view.Selections))
	for _, selection := range view.Selections {
		selections = append(selections, selectionSchema{
			Geography: string(selection.Geography),
			Code:      domain.NormalizeLocaleCode(selection.Locale.Code),
			Name:      selection.Locale.Name,
		})
	}

	return viewSchema{
		PetitionID: int64(view.PetitionID),
		Name:       view.Name,
		ShowTotal:  view.ShowTotal,
		UpdatedAt:  formatTime(view.UpdatedAt),
		Window:     toWindowSchema(view.Window),
		Selections: selections,
	}
}

func fromSchema(entry viewSchema) (domain.SavedView, error) {
	window, err := fromWindowSchema(entry.Window)
	if err != nil {
		return domain.SavedView{}, fmt.Errorf("decode view for petition %d: %w", entry.PetitionID, err)
	}

	selections := make([]domain.Selection, 0, len(entry.Selections))
	for _, selection := range entry.Selections {
		geo, err := domain.ParseGeography(selection.Geography)
		if err != nil {
			return domain.SavedView{}, fmt.Errorf("decode view for petition %d: %w", entry.PetitionID, err)
		}
		selections = append(selections, domain.Selection{
			Geography: geo,
			Locale:    domain.Locale{Code: domain.NormalizeLocaleCode(selection.Code), Name: selection.Name},
		})
	}

	return domain.SavedView{
		PetitionID: domain.PetitionID(entry.PetitionID),
		Name:       entry.Name,
		Window:     window,
		Selections: selections,
		ShowTotal:  entry.ShowTotal,
		UpdatedAt:  parseTime(entry.UpdatedAt),
	}, nil
}

func toWindowSchema(window domain.TimeWindow) windowSchema {
	switch {
	case window.All:
		return windowSchema{All: true}
	case window.Since > 0:
		return windowSchema{Since: domain.FormatSpan(window.Since)}
	default:
		return windowSchema{From: formatTime(window.From), To: formatTime(window.To)}
	}
}

func fromWindowSchema(schema windowSchema) (domain.TimeWindow, error) {
	switch {
	case schema.All:
		return domain.AllTime(), nil
	case schema.Since != "":
		span, err := domain.ParseSpan(schema.Since)
		if err != nil {
			return domain.TimeWindow{}, err
		}
		return domain.SinceWindow(span), nil
	case schema.From != "" || schema.To != "":
		return domain.BetweenWindow(parseTime(schema.From), parseTime(schema.To)), nil
	default:
		return domain.TimeWindow{}, nil
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed.UTC()
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
