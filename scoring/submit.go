package scoring

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/models"
)

type SetField string

const (
	FieldSide1Score         SetField = "side1Score"
	FieldSide2Score         SetField = "side2Score"
	FieldSide1TiebreakScore SetField = "side1TiebreakScore"
	FieldSide2TiebreakScore SetField = "side2TiebreakScore"
	FieldSide1PointScore    SetField = "side1PointScore"
	FieldSide2PointScore    SetField = "side2PointScore"
)

type Outcome string

const (
	OutcomeComplete        Outcome = "COMPLETE"
	OutcomeRepaired        Outcome = "REPAIRED"
	OutcomePendingTiebreak Outcome = "PENDING_TIEBREAK"
	OutcomeInProgress      Outcome = "IN_PROGRESS"
)

type SetSubmission struct {
	Set           *models.Set  `json:"set"`
	Analysis      *SetAnalysis `json:"analysis"`
	Outcome       Outcome      `json:"outcome"`
	ClearedFields []SetField   `json:"clearedFields,omitempty"`
}

func (f SetField) target(set *models.Set) **int {
	switch f {
	case FieldSide1Score:
		return &set.Side1Score
	case FieldSide2Score:
		return &set.Side2Score
	case FieldSide1TiebreakScore:
		return &set.Side1TiebreakScore
	case FieldSide2TiebreakScore:
		return &set.Side2TiebreakScore
	case FieldSide1PointScore:
		return &set.Side1PointScore
	case FieldSide2PointScore:
		return &set.Side2PointScore
	}
	return nil
}

func (f SetField) IsValid() bool {
	return f.target(&models.Set{}) != nil
}

func (f SetField) isTiebreak() bool {
	return f == FieldSide1TiebreakScore || f == FieldSide2TiebreakScore
}

// SubmitSetValue sets one field of a copy of set (nil value clears it) and
// analyzes the result. When a game or point change leaves the set invalid only
// because of previously entered tiebreak scores, the tiebreak scores are
// cleared and the set is re-analyzed once; the repaired set is kept only if it
// is valid.
func SubmitSetValue(set *models.Set, field SetField, value *int, format *models.MatchUpFormat) (*SetSubmission, error) {
	if set == nil {
		return nil, models.ErrMissingSetObject
	}
	if !field.IsValid() {
		return nil, fmt.Errorf("%w: unknown set field %q", models.ErrInvalidValues, field)
	}
	if value != nil && *value < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", models.ErrInvalidValues, field)
	}

	updated := set.Clone()
	if value != nil {
		*field.target(updated) = models.Int(*value)
	} else {
		*field.target(updated) = nil
	}

	analysis, err := AnalyzeSet(updated, format)
	if err != nil {
		return nil, err
	}
	if analysis.IsValidSet {
		updated.WinningSide = analysis.WinningSide
		return &SetSubmission{Set: updated, Analysis: analysis, Outcome: OutcomeComplete}, nil
	}

	if analysis.SideTiebreakScoresCount > 0 && !field.isTiebreak() {
		repaired := updated.Clone()
		repaired.Side1TiebreakScore = nil
		repaired.Side2TiebreakScore = nil
		second, err := AnalyzeSet(repaired, format)
		if err != nil {
			return nil, err
		}
		if second.IsValidSet {
			repaired.WinningSide = second.WinningSide
			return &SetSubmission{
				Set:           repaired,
				Analysis:      second,
				Outcome:       OutcomeRepaired,
				ClearedFields: []SetField{FieldSide1TiebreakScore, FieldSide2TiebreakScore},
			}, nil
		}
	}

	updated.WinningSide = 0
	outcome := OutcomeInProgress
	if analysis.HasTiebreakCondition {
		outcome = OutcomePendingTiebreak
	}
	return &SetSubmission{Set: updated, Analysis: analysis, Outcome: outcome}, nil
}
