package detail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/petition-tracker/internal/domain"
)

type commandKind int

const (
	commandAdd commandKind = iota + 1
	commandRemove
	commandTotal
	commandWindow
	commandRefresh
	commandSave
	commandHelp
	commandQuit
)

var errEmptyCommand = errors.New("empty command")

type command struct {
	kind      commandKind
	geography domain.Geography
	locale    domain.Locale
	window    domain.TimeWindow
}

const helpText = `add KIND CODE      chart a country, region or constituency
rm KIND CODE       stop charting a locale
total              show or hide the total
since DUR          window ending now: 12h, 7d, 2w or all
between FROM TO    window between two dates or RFC 3339 instants
refresh            refetch the petition and every series
save               remember this chart for the petition
help               show this help
quit               leave`

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errEmptyCommand
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]
	switch name {
	case "add", "rm", "remove":
		if len(args) < 2 {
			return command{}, fmt.Errorf("usage: %s KIND CODE", name)
		}
		geo, err := domain.ParseGeography(args[0])
		if err != nil {
			return command{}, err
		}
		kind := commandAdd
		if name != "add" {
			kind = commandRemove
		}
		return command{
			kind:      kind,
			geography: geo,
			locale:    domain.ResolveLocale(geo, strings.Join(args[1:], " ")),
		}, nil
	case "total":
		return command{kind: commandTotal}, nil
	case "since":
		if len(args) != 1 {
			return command{}, errors.New("usage: since DUR")
		}
		window, err := domain.ParseWindow(args[0])
		if err != nil {
			return command{}, err
		}
		if window.IsBetween() {
			return command{}, fmt.Errorf("%w: use between for a range", domain.ErrInvalidWindow)
		}
		return command{kind: commandWindow, window: window}, nil
	case "between":
		if len(args) != 2 {
			return command{}, errors.New("usage: between FROM TO")
		}
		window, err := domain.ParseBetween(args[0], args[1])
		if err != nil {
			return command{}, err
		}
		return command{kind: commandWindow, window: window}, nil
	case "refresh":
		return command{kind: commandRefresh}, nil
	case "save":
		return command{kind: commandSave}, nil
	case "help", "?":
		return command{kind: commandHelp}, nil
	case "quit", "exit", "q":
		return command{kind: commandQuit}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q, try help", fields[0])
	}
}
