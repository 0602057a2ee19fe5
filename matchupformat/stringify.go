package matchupformat

import (
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-draws/models"
)

// Stringify renders a descriptor as a code. The "@<tiebreakAt>" suffix is
// dropped when it equals the set's games-to unless preserveRedundant is set.
// An incomplete descriptor renders as "".
func Stringify(f *models.MatchUpFormat, preserveRedundant bool) string {
	if f == nil || f.BestOf < 1 || f.SetFormat == nil {
		return ""
	}
	if f.Simplified && f.BestOf == 1 && f.SetFormat.Timed {
		return stringifyTimed(f.SetFormat)
	}

	set := stringifySet(f.SetFormat, preserveRedundant)
	if set == "" {
		return ""
	}
	parts := []string{setPrefix + strconv.Itoa(f.BestOf), setSpecPrefix + set}
	if f.BestOf > 1 && f.FinalSetFormat != nil {
		final := stringifySet(f.FinalSetFormat, preserveRedundant)
		if final != "" && final != set {
			parts = append(parts, finalPrefix+final)
		}
	}
	return strings.Join(parts, "-")
}

func stringifySet(s *models.SetFormat, preserveRedundant bool) string {
	switch {
	case s == nil:
		return ""
	case s.Timed:
		return stringifyTimed(s)
	case s.TiebreakSet != nil:
		return stringifyTiebreak(s.TiebreakSet)
	case s.SetTo < 1:
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(s.SetTo))
	if s.NoAD {
		b.WriteString(noAD)
	}
	if s.TiebreakFormat != nil && !s.NoTiebreak {
		b.WriteString("/")
		b.WriteString(stringifyTiebreak(s.TiebreakFormat))
		if s.TiebreakAt > 0 && (preserveRedundant || s.TiebreakAt != s.SetTo) {
			b.WriteString("@")
			b.WriteString(strconv.Itoa(s.TiebreakAt))
		}
	}
	return b.String()
}

func stringifyTiebreak(tb *models.TiebreakFormat) string {
	if tb == nil || tb.TiebreakTo < 1 {
		return ""
	}
	code := tiebreakPrefix + strconv.Itoa(tb.TiebreakTo)
	if tb.NoAD {
		code += noAD
	}
	return code
}

func stringifyTimed(s *models.SetFormat) string {
	if s.Minutes < 1 {
		return ""
	}
	return timedPrefix + strconv.Itoa(s.Minutes) + string(s.Based)
}
