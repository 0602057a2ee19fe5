package scoring

import "github.com/Dosada05/tournament-draws/models"

// ReverseScore returns a copy of score seen from the other side. Applying it
// twice yields the original score.
func ReverseScore(score *models.Score) (*models.Score, error) {
	if score == nil {
		return nil, models.ErrMissingValue
	}
	reversed := &models.Score{
		ScoreStringSide1: score.ScoreStringSide2,
		ScoreStringSide2: score.ScoreStringSide1,
		Sets:             make([]*models.Set, 0, len(score.Sets)),
	}
	for _, set := range score.Sets {
		if set == nil {
			return nil, models.ErrMissingSetObject
		}
		r := set.Clone()
		r.Side1Score, r.Side2Score = r.Side2Score, r.Side1Score
		r.Side1TiebreakScore, r.Side2TiebreakScore = r.Side2TiebreakScore, r.Side1TiebreakScore
		r.Side1PointScore, r.Side2PointScore = r.Side2PointScore, r.Side1PointScore
		if r.WinningSide == 1 || r.WinningSide == 2 {
			r.WinningSide = 3 - r.WinningSide
		}
		reversed.Sets = append(reversed.Sets, r)
	}
	return reversed, nil
}
