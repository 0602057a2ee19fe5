// Package scoring analyzes set and matchUp scores against a matchUp format and
// renders score strings.
package scoring

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/models"
)

const (
	ReasonIncomplete        = "game scores incomplete"
	ReasonNotDecided        = "no side has met the win condition"
	ReasonTiebreakRequired  = "games are level at the tiebreak threshold"
	ReasonTiebreakMissing   = "tiebreak scores incomplete"
	ReasonTiebreakUndecided = "tiebreak score does not decide the set"
	ReasonTiebreakMismatch  = "tiebreak winner differs from games leader"
	ReasonStrayTiebreak     = "tiebreak scores present without a tiebreak"
	ReasonTimedLevel        = "timed set scores are level"
)

type SetAnalysis struct {
	SetNumber               int               `json:"setNumber"`
	IsDecidingSet           bool              `json:"isDecidingSet"`
	IsValidSet              bool              `json:"isValidSet"`
	WinningSide             int               `json:"winningSide,omitempty"`
	HasTiebreakCondition    bool              `json:"hasTiebreakCondition"`
	IsTiebreakSet           bool              `json:"isTiebreakSet"`
	IsTimedSet              bool              `json:"isTimedSet"`
	ExpectTiebreakSet       bool              `json:"expectTiebreakSet"`
	ExpectTimedSet          bool              `json:"expectTimedSet"`
	SideGameScoresCount     int               `json:"sideGameScoresCount"`
	SideTiebreakScoresCount int               `json:"sideTiebreakScoresCount"`
	SidePointScoresCount    int               `json:"sidePointScoresCount"`
	SetFormat               *models.SetFormat `json:"setFormat,omitempty"`
	Reason                  string            `json:"reason,omitempty"`
}

// AnalyzeSet decides validity and winner of one set. An undecided set is not an
// error: it comes back with IsValidSet false and a Reason.
func AnalyzeSet(set *models.Set, format *models.MatchUpFormat) (*SetAnalysis, error) {
	if set == nil {
		return nil, models.ErrMissingSetObject
	}
	if format == nil || format.BestOf < 1 || format.SetFormat == nil {
		return nil, models.ErrInvalidMatchUpFormat
	}
	if set.SetNumber < 1 || set.SetNumber > format.BestOf {
		return nil, fmt.Errorf("%w: set %d of best of %d", models.ErrInvalidSetNumber, set.SetNumber, format.BestOf)
	}

	for _, v := range []*int{set.Side1Score, set.Side2Score, set.Side1TiebreakScore, set.Side2TiebreakScore, set.Side1PointScore, set.Side2PointScore} {
		if v != nil && *v < 0 {
			return nil, fmt.Errorf("%w: negative score in set %d", models.ErrInvalidValues, set.SetNumber)
		}
	}

	sf := format.SetFormatFor(set.SetNumber)
	a := &SetAnalysis{
		SetNumber:               set.SetNumber,
		IsDecidingSet:           format.BestOf > 1 && set.SetNumber == format.BestOf,
		ExpectTiebreakSet:       sf.TiebreakSet != nil,
		ExpectTimedSet:          sf.Timed,
		SideGameScoresCount:     count(set.Side1Score, set.Side2Score),
		SideTiebreakScoresCount: count(set.Side1TiebreakScore, set.Side2TiebreakScore),
		SidePointScoresCount:    count(set.Side1PointScore, set.Side2PointScore),
		SetFormat:               sf,
	}

	switch {
	case a.ExpectTimedSet:
		analyzeTimedSet(a, set)
	case a.ExpectTiebreakSet:
		analyzeTiebreakSet(a, set, sf.TiebreakSet)
	default:
		analyzeGamesSet(a, set, sf)
	}
	if !a.IsValidSet {
		a.WinningSide = 0
	}
	return a, nil
}

func analyzeTimedSet(a *SetAnalysis, set *models.Set) {
	a.IsTimedSet = true
	s1, s2, n := set.Side1Score, set.Side2Score, a.SideGameScoresCount
	if a.SetFormat.Based == models.TimedBasisPoints && a.SidePointScoresCount == 2 {
		s1, s2, n = set.Side1PointScore, set.Side2PointScore, a.SidePointScoresCount
	}
	if n < 2 {
		a.Reason = ReasonIncomplete
		return
	}
	if *s1 == *s2 {
		a.Reason = ReasonTimedLevel
		return
	}
	a.IsValidSet = true
	a.WinningSide = leader(*s1, *s2)
}

// A match tiebreak is recorded in the tiebreak fields; game fields are
// accepted as the points when the tiebreak fields are empty.
func analyzeTiebreakSet(a *SetAnalysis, set *models.Set, tb *models.TiebreakFormat) {
	a.IsTiebreakSet = true
	s1, s2 := set.Side1TiebreakScore, set.Side2TiebreakScore
	if a.SideTiebreakScoresCount == 0 {
		s1, s2 = set.Side1Score, set.Side2Score
	}
	if s1 == nil || s2 == nil {
		a.Reason = ReasonIncomplete
		return
	}
	hi, lo := maxMin(*s1, *s2)
	if !tiebreakWon(hi, lo, tb) {
		a.Reason = ReasonTiebreakUndecided
		return
	}
	a.IsValidSet = true
	a.WinningSide = leader(*s1, *s2)
}

func analyzeGamesSet(a *SetAnalysis, set *models.Set, sf *models.SetFormat) {
	if a.SideGameScoresCount < 2 {
		a.Reason = ReasonIncomplete
		return
	}
	g1, g2 := *set.Side1Score, *set.Side2Score
	hi, lo := maxMin(g1, g2)
	side := leader(g1, g2)

	at := sf.TiebreakAt
	if at == 0 {
		at = sf.SetTo
	}
	if sf.TiebreakFormat != nil && !sf.NoTiebreak && lo == at && (hi == at || hi == at+1) {
		a.HasTiebreakCondition = true
		if hi == lo {
			a.Reason = ReasonTiebreakRequired
			return
		}
		if a.SideTiebreakScoresCount < 2 {
			a.Reason = ReasonTiebreakMissing
			return
		}
		t1, t2 := *set.Side1TiebreakScore, *set.Side2TiebreakScore
		tbHi, tbLo := maxMin(t1, t2)
		if !tiebreakWon(tbHi, tbLo, sf.TiebreakFormat) {
			a.Reason = ReasonTiebreakUndecided
			return
		}
		if leader(t1, t2) != side {
			a.Reason = ReasonTiebreakMismatch
			return
		}
		a.IsValidSet = true
		a.WinningSide = side
		return
	}

	if a.SideTiebreakScoresCount > 0 {
		a.Reason = ReasonStrayTiebreak
		return
	}
	if !gamesWon(hi, lo, sf, at) {
		a.Reason = ReasonNotDecided
		return
	}
	a.IsValidSet = true
	a.WinningSide = side
}

// gamesWon checks the games-to threshold. Without a tiebreak the set runs on
// until a two game margin; NoAD removes the margin.
func gamesWon(hi, lo int, sf *models.SetFormat, at int) bool {
	setTo := sf.SetTo
	if sf.TiebreakFormat == nil || sf.NoTiebreak {
		if sf.NoAD {
			return hi == setTo && lo < setTo
		}
		return hi >= setTo && hi-lo >= 2 && (hi == setTo || hi-lo == 2)
	}
	if sf.NoAD && hi == setTo && lo < at {
		return true
	}
	if hi == setTo && lo <= setTo-2 {
		return true
	}
	return at >= setTo && hi == setTo+1 && lo == setTo-1
}

func tiebreakWon(hi, lo int, tb *models.TiebreakFormat) bool {
	if tb == nil || tb.TiebreakTo < 1 {
		return false
	}
	if tb.NoAD {
		return hi == tb.TiebreakTo && lo < hi
	}
	return hi >= tb.TiebreakTo && hi-lo >= 2 && (hi == tb.TiebreakTo || hi-lo == 2)
}

func count(a, b *int) int {
	n := 0
	if a != nil {
		n++
	}
	if b != nil {
		n++
	}
	return n
}

func maxMin(a, b int) (int, int) {
	if a >= b {
		return a, b
	}
	return b, a
}

func leader(s1, s2 int) int {
	switch {
	case s1 > s2:
		return 1
	case s2 > s1:
		return 2
	}
	return 0
}
