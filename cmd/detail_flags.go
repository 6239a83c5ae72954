package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/petition-tracker/internal/application"
	"github.com/bnema/petition-tracker/internal/domain"
)

// detailFlags are shared by the commands that open a petition chart.
type detailFlags struct {
	since   string
	between string
	geos    []string
	total   bool
}

func addDetailFlags(cmd *cobra.Command, flags *detailFlags) {
	cmd.Flags().StringVar(&flags.since, "since", "", "Window ending now: 12h, 7d, 2w or all (default 1w)")
	cmd.Flags().StringVar(&flags.between, "between", "", "Window FROM,TO of YYYY-MM-DD days or RFC 3339 instants")
	cmd.Flags().StringArrayVar(&flags.geos, "geo", nil, "Chart a locale as KIND:CODE, e.g. country:GB (repeatable)")
	cmd.Flags().BoolVar(&flags.total, "total", false, "Chart the total next to the selected locales")
	cmd.MarkFlagsMutuallyExclusive("since", "between")
}

// window reports whether a window was given on the command line.
func (f detailFlags) window() (domain.TimeWindow, bool, error) {
	switch {
	case f.since != "":
		window, err := domain.ParseWindow(f.since)
		if err != nil {
			return domain.TimeWindow{}, false, fmt.Errorf("parse --since: %w", err)
		}
		if window.IsBetween() {
			return domain.TimeWindow{}, false, fmt.Errorf("parse --since: %w: use --between for a range", domain.ErrInvalidWindow)
		}
		return window, true, nil
	case f.between != "":
		from, to, ok := strings.Cut(f.between, ",")
		if !ok {
			return domain.TimeWindow{}, false, fmt.Errorf("parse --between: %w: expected FROM,TO", domain.ErrInvalidWindow)
		}
		window, err := domain.ParseBetween(from, to)
		if err != nil {
			return domain.TimeWindow{}, false, fmt.Errorf("parse --between: %w", err)
		}
		return window, true, nil
	default:
		return domain.TimeWindow{}, false, nil
	}
}

func (f detailFlags) selections() ([]domain.Selection, error) {
	selections := make([]domain.Selection, 0, len(f.geos))
	for _, raw := range f.geos {
		kind, code, ok := strings.Cut(raw, ":")
		if !ok || strings.TrimSpace(code) == "" {
			return nil, fmt.Errorf("parse --geo %q: expected KIND:CODE", raw)
		}
		geo, err := domain.ParseGeography(kind)
		if err != nil {
			return nil, fmt.Errorf("parse --geo %q: %w", raw, err)
		}
		selections = append(selections, domain.Selection{Geography: geo, Locale: domain.ResolveLocale(geo, code)})
	}

	return selections, nil
}

// loadOptions builds the initial chart. Without --geo the petition's saved
// view is reused, with any window given on the command line taking precedence.
func (f detailFlags) loadOptions(ctx context.Context, app *app, id domain.PetitionID) (application.LoadOptions, error) {
	window, hasWindow, err := f.window()
	if err != nil {
		return application.LoadOptions{}, err
	}

	if len(f.geos) == 0 {
		view, ok, err := app.service.SavedView(ctx, id)
		if err != nil {
			return application.LoadOptions{}, err
		}
		if ok {
			opts := application.LoadOptionsFromView(view)
			if hasWindow {
				opts.Window = window
			}
			opts.ShowTotal = opts.ShowTotal || f.total
			return opts, nil
		}
	}

	selections, err := f.selections()
	if err != nil {
		return application.LoadOptions{}, err
	}

	return application.LoadOptions{Window: window, Selections: selections, ShowTotal: f.total}, nil
}

func parsePetitionID(raw string) (domain.PetitionID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid petition id %q", raw)
	}

	return domain.PetitionID(id), nil
}

// petitionNotFound turns a missing petition into the message shown to users.
func petitionNotFound(id domain.PetitionID, err error) error {
	if application.IsNotFound(err) {
		return fmt.Errorf("petition %s %w", id, domain.ErrNotFound)
	}

	return err
}
