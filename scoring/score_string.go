package scoring

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
)

type ScoreStringParams struct {
	Sets          []*models.Set
	MatchUpFormat string
	MatchUpStatus models.MatchUpStatus
	// WinningSide may be zero; it is then derived from set winners.
	WinningSide int
	WinnerFirst bool
	Reversed    bool
}

var statusSuffixes = map[models.MatchUpStatus]string{
	models.MatchUpStatusRetired:   "RET",
	models.MatchUpStatusDefaulted: "DEF",
	models.MatchUpStatusSuspended: "SUS",
	models.MatchUpStatusAbandoned: "ABN",
	models.MatchUpStatusCancelled: "CAN",
	models.MatchUpStatusWalkover:  "WO",
}

// GenerateScoreString renders sets as e.g. "6-3 4-6 7-6(3)". A tiebreak-only
// set renders as "[10-8]". Reversed swaps the sides; WinnerFirst puts the
// winner's games first. Both together give the loser-first rendering.
func GenerateScoreString(p ScoreStringParams) string {
	switch p.MatchUpStatus {
	case models.MatchUpStatusDoubleWalkover:
		return "WO/WO"
	case models.MatchUpStatusBye:
		return ""
	}

	var format *models.MatchUpFormat
	if p.MatchUpFormat != "" {
		if f, err := matchupformat.Parse(p.MatchUpFormat); err == nil {
			format = f
		}
	}

	sets := make([]*models.Set, 0, len(p.Sets))
	for _, set := range p.Sets {
		if set != nil {
			sets = append(sets, set)
		}
	}
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].SetNumber < sets[j].SetNumber })

	winningSide := p.WinningSide
	if winningSide == 0 {
		winningSide = winnerBySets(sets)
	}
	swap := p.Reversed != (p.WinnerFirst && winningSide == 2)

	parts := make([]string, 0, len(sets)+1)
	for _, set := range sets {
		if s := setString(set, format, swap); s != "" {
			parts = append(parts, s)
		}
	}
	if suffix, ok := statusSuffixes[p.MatchUpStatus]; ok {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}

func setString(set *models.Set, format *models.MatchUpFormat, swap bool) string {
	g1, g2 := set.Side1Score, set.Side2Score
	t1, t2 := set.Side1TiebreakScore, set.Side2TiebreakScore
	if swap {
		g1, g2 = g2, g1
		t1, t2 = t2, t1
	}

	tiebreakOnly := g1 == nil && g2 == nil && (t1 != nil || t2 != nil)
	if format != nil {
		if sf := format.SetFormatFor(set.SetNumber); sf != nil && sf.TiebreakSet != nil {
			if t1 == nil && t2 == nil {
				t1, t2 = g1, g2
			}
			tiebreakOnly = t1 != nil || t2 != nil
		}
	}
	if tiebreakOnly {
		return "[" + value(t1) + "-" + value(t2) + "]"
	}
	if g1 == nil && g2 == nil {
		return ""
	}

	s := value(g1) + "-" + value(g2)
	switch {
	case t1 != nil && t2 != nil:
		lo := *t1
		if *t2 < lo {
			lo = *t2
		}
		s += "(" + strconv.Itoa(lo) + ")"
	case t1 != nil:
		s += "(" + strconv.Itoa(*t1) + ")"
	case t2 != nil:
		s += "(" + strconv.Itoa(*t2) + ")"
	}
	return s
}

func value(v *int) string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(*v)
}

func winnerBySets(sets []*models.Set) int {
	var won [3]int
	for _, set := range sets {
		if set != nil && (set.WinningSide == 1 || set.WinningSide == 2) {
			won[set.WinningSide]++
		}
	}
	return leader(won[1], won[2])
}

// ScoreStrings returns the side 1 and side 2 perspective renderings.
func ScoreStrings(sets []*models.Set, matchUpFormat string, status models.MatchUpStatus, winningSide int) (string, string) {
	p := ScoreStringParams{Sets: sets, MatchUpFormat: matchUpFormat, MatchUpStatus: status, WinningSide: winningSide}
	side1 := GenerateScoreString(p)
	p.Reversed = true
	return side1, GenerateScoreString(p)
}
