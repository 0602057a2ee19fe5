package scoring

import (
	"fmt"
	"sort"

	"github.com/Dosada05/tournament-draws/models"
)

type ScoreAnalysis struct {
	Sets        []*SetAnalysis `json:"sets"`
	SetsWon     [2]int         `json:"setsWon"`
	WinningSide int            `json:"winningSide,omitempty"`
	IsComplete  bool           `json:"isComplete"`
}

// AnalyzeScore analyzes every set and derives the matchUp winner once a side
// has won a majority of bestOf sets. Sets are examined in setNumber order.
func AnalyzeScore(score *models.Score, format *models.MatchUpFormat) (*ScoreAnalysis, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: score", models.ErrMissingValue)
	}
	sets := append([]*models.Set(nil), score.Sets...)
	for _, set := range sets {
		if set == nil {
			return nil, models.ErrMissingSetObject
		}
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].SetNumber < sets[j].SetNumber })

	result := &ScoreAnalysis{}
	seen := make(map[int]bool, len(sets))
	for _, set := range sets {
		if seen[set.SetNumber] {
			return nil, fmt.Errorf("%w: duplicate set %d", models.ErrInvalidSetNumber, set.SetNumber)
		}
		seen[set.SetNumber] = true

		a, err := AnalyzeSet(set, format)
		if err != nil {
			return nil, err
		}
		if result.WinningSide != 0 && a.SideGameScoresCount+a.SideTiebreakScoresCount+a.SidePointScoresCount > 0 {
			return nil, fmt.Errorf("%w: set %d scored after the matchUp was decided", models.ErrInvalidValues, set.SetNumber)
		}
		result.Sets = append(result.Sets, a)
		if a.IsValidSet {
			result.SetsWon[a.WinningSide-1]++
			if result.SetsWon[a.WinningSide-1] >= format.SetsToWin() {
				result.WinningSide = a.WinningSide
				result.IsComplete = true
			}
		}
	}
	return result, nil
}

// ApplyScore returns a copy of score whose sets carry the analyzed winning sides.
func ApplyScore(score *models.Score, format *models.MatchUpFormat) (*models.Score, *ScoreAnalysis, error) {
	analysis, err := AnalyzeScore(score, format)
	if err != nil {
		return nil, nil, err
	}
	applied := score.Clone()
	bySet := make(map[int]*SetAnalysis, len(analysis.Sets))
	for _, a := range analysis.Sets {
		bySet[a.SetNumber] = a
	}
	for _, set := range applied.Sets {
		set.WinningSide = bySet[set.SetNumber].WinningSide
	}
	sort.Slice(applied.Sets, func(i, j int) bool { return applied.Sets[i].SetNumber < applied.Sets[j].SetNumber })
	return applied, analysis, nil
}
