package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Views   []viewSchema `toml:"views"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported views schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type viewSchema struct {
	PetitionID int64             `toml:"petition_id"`
	Name       string            `toml:"name,omitempty"`
	ShowTotal  bool              `toml:"show_total"`
	UpdatedAt  string            `toml:"updated_at,omitempty"`
	Window     windowSchema      `toml:"window"`
	Selections []selectionSchema `toml:"selections,omitempty"`
}

type windowSchema struct {
	All   bool   `toml:"all,omitempty"`
	Since string `toml:"since,omitempty"`
	From  string `toml:"from,omitempty"`
	To    string `toml:"to,omitempty"`
}

type selectionSchema struct {
	Geography string `toml:"geography"`
	Code      string `toml:"code"`
	Name      string `toml:"name,omitempty"`
}
