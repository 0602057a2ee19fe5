package models

type TimedBasis string

const (
	TimedBasisPoints TimedBasis = "P"
	TimedBasisGames  TimedBasis = "G"
)

type TiebreakFormat struct {
	TiebreakTo int  `json:"tiebreakTo"`
	NoAD       bool `json:"NoAD,omitempty"`
}

// SetFormat describes one of three set kinds: a games set (SetTo), a
// tiebreak-only set (TiebreakSet) or a timed set (Timed).
type SetFormat struct {
	SetTo          int             `json:"setTo,omitempty"`
	NoAD           bool            `json:"NoAD,omitempty"`
	TiebreakAt     int             `json:"tiebreakAt,omitempty"`
	TiebreakFormat *TiebreakFormat `json:"tiebreakFormat,omitempty"`
	NoTiebreak     bool            `json:"noTiebreak,omitempty"`
	TiebreakSet    *TiebreakFormat `json:"tiebreakSet,omitempty"`
	Timed          bool            `json:"timed,omitempty"`
	Minutes        int             `json:"minutes,omitempty"`
	Based          TimedBasis      `json:"based,omitempty"`
}

type MatchUpFormat struct {
	BestOf         int        `json:"bestOf,omitempty"`
	SetFormat      *SetFormat `json:"setFormat,omitempty"`
	FinalSetFormat *SetFormat `json:"finalSetFormat,omitempty"`
	Simplified     bool       `json:"simplified,omitempty"`
}

// SetFormatFor returns the format governing setNumber; the final set override
// applies only to the deciding set of a best-of series.
func (f *MatchUpFormat) SetFormatFor(setNumber int) *SetFormat {
	if f == nil {
		return nil
	}
	if f.FinalSetFormat != nil && f.BestOf > 1 && setNumber == f.BestOf {
		return f.FinalSetFormat
	}
	return f.SetFormat
}

// SetsToWin is the number of sets that decides the matchUp.
func (f *MatchUpFormat) SetsToWin() int {
	if f == nil || f.BestOf < 1 {
		return 0
	}
	return f.BestOf/2 + 1
}
