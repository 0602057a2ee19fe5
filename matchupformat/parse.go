// Package matchupformat parses, stringifies and validates matchUp format codes
// such as SET3-S:6/TB7-F:TB10.
package matchupformat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-draws/models"
)

const (
	setPrefix      = "SET"
	setSpecPrefix  = "S:"
	finalPrefix    = "F:"
	timedPrefix    = "T"
	tiebreakPrefix = "TB"
	noAD           = "NOAD"
)

var (
	gamesSetPattern = regexp.MustCompile(`^(\d+)(NOAD)?(?:/TB(\d+)(NOAD)?(?:@(\d+))?)?$`)
	tiebreakPattern = regexp.MustCompile(`^TB(\d+)(NOAD)?$`)
	timedPattern    = regexp.MustCompile(`^T(\d+)([PG])?$`)
)

// Parse returns the descriptor for code. An unparseable code yields an empty
// descriptor together with ErrUnrecognizedFormat.
func Parse(code string) (*models.MatchUpFormat, error) {
	f, ok := parse(code)
	if !ok {
		return &models.MatchUpFormat{}, fmt.Errorf("%w: %q", models.ErrUnrecognizedFormat, code)
	}
	return f, nil
}

func parse(code string) (*models.MatchUpFormat, bool) {
	if code == "" {
		return nil, false
	}
	if strings.HasPrefix(code, timedPrefix) && !strings.HasPrefix(code, tiebreakPrefix) {
		set, ok := parseTimed(code)
		if !ok {
			return nil, false
		}
		return &models.MatchUpFormat{BestOf: 1, SetFormat: set, Simplified: true}, true
	}
	if !strings.HasPrefix(code, setPrefix) {
		return nil, false
	}

	parts := strings.Split(code, "-")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, false
	}
	bestOf, err := strconv.Atoi(strings.TrimPrefix(parts[0], setPrefix))
	if err != nil || bestOf < 1 || bestOf > 5 || bestOf%2 == 0 {
		return nil, false
	}
	if !strings.HasPrefix(parts[1], setSpecPrefix) {
		return nil, false
	}
	set, ok := parseSet(strings.TrimPrefix(parts[1], setSpecPrefix))
	if !ok {
		return nil, false
	}
	f := &models.MatchUpFormat{BestOf: bestOf, SetFormat: set}
	if len(parts) == 3 {
		if !strings.HasPrefix(parts[2], finalPrefix) {
			return nil, false
		}
		final, ok := parseSet(strings.TrimPrefix(parts[2], finalPrefix))
		if !ok {
			return nil, false
		}
		f.FinalSetFormat = final
	}
	return f, true
}

func parseSet(spec string) (*models.SetFormat, bool) {
	switch {
	case strings.HasPrefix(spec, tiebreakPrefix):
		tb, ok := parseTiebreak(spec)
		if !ok {
			return nil, false
		}
		return &models.SetFormat{TiebreakSet: tb}, true
	case strings.HasPrefix(spec, timedPrefix):
		return parseTimed(spec)
	}

	m := gamesSetPattern.FindStringSubmatch(spec)
	if m == nil {
		return nil, false
	}
	setTo, ok := positive(m[1])
	if !ok {
		return nil, false
	}
	set := &models.SetFormat{SetTo: setTo, NoAD: m[2] == noAD}
	if m[3] == "" {
		set.NoTiebreak = true
		return set, true
	}
	tiebreakTo, ok := positive(m[3])
	if !ok {
		return nil, false
	}
	set.TiebreakFormat = &models.TiebreakFormat{TiebreakTo: tiebreakTo, NoAD: m[4] == noAD}
	set.TiebreakAt = setTo
	if m[5] != "" {
		at, ok := positive(m[5])
		if !ok || at > setTo {
			return nil, false
		}
		set.TiebreakAt = at
	}
	return set, true
}

func parseTiebreak(spec string) (*models.TiebreakFormat, bool) {
	m := tiebreakPattern.FindStringSubmatch(spec)
	if m == nil {
		return nil, false
	}
	to, ok := positive(m[1])
	if !ok {
		return nil, false
	}
	return &models.TiebreakFormat{TiebreakTo: to, NoAD: m[2] == noAD}, true
}

func parseTimed(spec string) (*models.SetFormat, bool) {
	m := timedPattern.FindStringSubmatch(spec)
	if m == nil {
		return nil, false
	}
	minutes, ok := positive(m[1])
	if !ok {
		return nil, false
	}
	return &models.SetFormat{Timed: true, Minutes: minutes, Based: models.TimedBasis(m[2])}, true
}

func positive(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
