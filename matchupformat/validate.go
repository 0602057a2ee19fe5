package matchupformat

import (
	"regexp"

	"github.com/Dosada05/tournament-draws/models"
)

var redundantTiebreakAt = regexp.MustCompile(`[SF]:(\d+)(?:NOAD)?/TB\d+(?:NOAD)?@(\d+)`)

// IsValid reports whether code survives a parse/stringify round trip
// byte-for-byte. Codes that spell out a tiebreakAt equal to games-to are
// compared with redundant notation preserved.
func IsValid(code string) bool {
	f, ok := parse(code)
	if !ok {
		return false
	}
	return Stringify(f, hasRedundantTiebreakAt(code)) == code
}

func hasRedundantTiebreakAt(code string) bool {
	for _, m := range redundantTiebreakAt.FindAllStringSubmatch(code, -1) {
		if m[1] == m[2] {
			return true
		}
	}
	return false
}

// Normalize parses code and returns its canonical form.
func Normalize(code string) (string, error) {
	f, err := Parse(code)
	if err != nil {
		return "", err
	}
	return Stringify(f, false), nil
}

// ParseValid parses code and rejects codes that do not round-trip.
func ParseValid(code string) (*models.MatchUpFormat, error) {
	f, err := Parse(code)
	if err != nil {
		return nil, err
	}
	if !IsValid(code) {
		return nil, models.ErrInvalidMatchUpFormat
	}
	return f, nil
}
