// Package standings tallies round robin results into ranked standings.
package standings

import (
	"sort"

	"github.com/Dosada05/tournament-draws/models"
)

type Options struct {
	// ParticipantIDs seeds the table so participants without results still appear.
	ParticipantIDs []string
}

type Result struct {
	Tallies       []*models.ParticipantTally          `json:"tallies"`
	ByParticipant map[string]*models.ParticipantTally `json:"-"`
	// Counted is the number of matchUps that contributed to the tally.
	Counted int `json:"counted"`
}

type headToHead map[[2]string]int

// Tally aggregates completed matchUps. MatchUps without a winning side or
// without two participants are skipped. Ranking order: matchUp win ratio;
// a two-way tie on that ratio is settled head-to-head; then set ratio, game
// ratio and finally participantId ascending.
func Tally(matchUps []*models.MatchUp, opts Options) *Result {
	index := make(map[string]*models.ParticipantTally)
	entry := func(id string) *models.ParticipantTally {
		t, ok := index[id]
		if !ok {
			t = &models.ParticipantTally{ParticipantID: id}
			index[id] = t
		}
		return t
	}
	for _, id := range opts.ParticipantIDs {
		if id != "" {
			entry(id)
		}
	}

	h2h := make(headToHead)
	counted := 0
	for _, m := range matchUps {
		if m == nil || !m.MatchUpStatus.IsCompleted() || (m.WinningSide != 1 && m.WinningSide != 2) {
			continue
		}
		ids := m.ParticipantIDs()
		if ids[0] == "" || ids[1] == "" {
			continue
		}
		counted++
		sides := [2]*models.ParticipantTally{entry(ids[0]), entry(ids[1])}
		winner, loser := m.WinningSide-1, 2-m.WinningSide
		sides[winner].MatchUpsWon++
		sides[loser].MatchUpsLost++
		h2h[[2]string{ids[winner], ids[loser]}]++

		if m.Score == nil {
			continue
		}
		for _, set := range m.Score.Sets {
			if set == nil {
				continue
			}
			g1, g2 := setGames(set)
			sides[0].GamesWon += g1
			sides[0].GamesLost += g2
			sides[1].GamesWon += g2
			sides[1].GamesLost += g1
			if set.WinningSide == 1 || set.WinningSide == 2 {
				sides[set.WinningSide-1].SetsWon++
				sides[2-set.WinningSide].SetsLost++
			}
		}
	}

	tallies := make([]*models.ParticipantTally, 0, len(index))
	for _, t := range index {
		t.MatchUpsPct = pct(t.MatchUpsWon, t.MatchUpsLost)
		t.SetsPct = pct(t.SetsWon, t.SetsLost)
		t.GamesPct = pct(t.GamesWon, t.GamesLost)
		tallies = append(tallies, t)
	}

	sort.Slice(tallies, func(i, j int) bool {
		a, b := tallies[i], tallies[j]
		if c := compareRatio(a.MatchUpsWon, a.MatchUpsLost, b.MatchUpsWon, b.MatchUpsLost); c != 0 {
			return c > 0
		}
		if c := compareRatio(a.SetsWon, a.SetsLost, b.SetsWon, b.SetsLost); c != 0 {
			return c > 0
		}
		if c := compareRatio(a.GamesWon, a.GamesLost, b.GamesWon, b.GamesLost); c != 0 {
			return c > 0
		}
		return a.ParticipantID < b.ParticipantID
	})
	settleTwoWayTies(tallies, h2h)

	for i, t := range tallies {
		t.GroupOrder = i + 1
	}
	return &Result{Tallies: tallies, ByParticipant: index, Counted: counted}
}

// A tiebreak-only set counts as a single game for its winner.
func setGames(set *models.Set) (int, int) {
	if set.Side1Score == nil && set.Side2Score == nil {
		if set.Side1TiebreakScore != nil || set.Side2TiebreakScore != nil {
			switch set.WinningSide {
			case 1:
				return 1, 0
			case 2:
				return 0, 1
			}
		}
		return 0, 0
	}
	var g1, g2 int
	if set.Side1Score != nil {
		g1 = *set.Side1Score
	}
	if set.Side2Score != nil {
		g2 = *set.Side2Score
	}
	return g1, g2
}

func settleTwoWayTies(tallies []*models.ParticipantTally, h2h headToHead) {
	for start := 0; start < len(tallies); {
		end := start + 1
		for end < len(tallies) && compareRatio(tallies[start].MatchUpsWon, tallies[start].MatchUpsLost, tallies[end].MatchUpsWon, tallies[end].MatchUpsLost) == 0 {
			end++
		}
		if end-start == 2 {
			a, b := tallies[start], tallies[start+1]
			if h2h[[2]string{b.ParticipantID, a.ParticipantID}] > h2h[[2]string{a.ParticipantID, b.ParticipantID}] {
				tallies[start], tallies[start+1] = b, a
			}
		}
		start = end
	}
}

func pct(won, lost int) float64 {
	if won+lost == 0 {
		return 0
	}
	return float64(won) / float64(won+lost)
}

// compareRatio compares won/(won+lost) exactly; an empty record counts as 0.
func compareRatio(wonA, lostA, wonB, lostB int) int {
	totalA, totalB := wonA+lostA, wonB+lostB
	if totalA == 0 {
		totalA = 1
	}
	if totalB == 0 {
		totalB = 1
	}
	left, right := wonA*totalB, wonB*totalA
	switch {
	case left > right:
		return 1
	case left < right:
		return -1
	}
	return 0
}
