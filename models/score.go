package models

// Set scores are pointers so that an absent value differs from zero.
type Set struct {
	SetNumber          int  `json:"setNumber"`
	Side1Score         *int `json:"side1Score,omitempty"`
	Side2Score         *int `json:"side2Score,omitempty"`
	Side1TiebreakScore *int `json:"side1TiebreakScore,omitempty"`
	Side2TiebreakScore *int `json:"side2TiebreakScore,omitempty"`
	Side1PointScore    *int `json:"side1PointScore,omitempty"`
	Side2PointScore    *int `json:"side2PointScore,omitempty"`
	WinningSide        int  `json:"winningSide,omitempty"`
}

type Score struct {
	ScoreStringSide1 string `json:"scoreStringSide1,omitempty"`
	ScoreStringSide2 string `json:"scoreStringSide2,omitempty"`
	Sets             []*Set `json:"sets"`
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}

func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	return &Set{
		SetNumber:          s.SetNumber,
		Side1Score:         cloneInt(s.Side1Score),
		Side2Score:         cloneInt(s.Side2Score),
		Side1TiebreakScore: cloneInt(s.Side1TiebreakScore),
		Side2TiebreakScore: cloneInt(s.Side2TiebreakScore),
		Side1PointScore:    cloneInt(s.Side1PointScore),
		Side2PointScore:    cloneInt(s.Side2PointScore),
		WinningSide:        s.WinningSide,
	}
}

func (s *Score) Clone() *Score {
	if s == nil {
		return nil
	}
	c := &Score{
		ScoreStringSide1: s.ScoreStringSide1,
		ScoreStringSide2: s.ScoreStringSide2,
		Sets:             make([]*Set, 0, len(s.Sets)),
	}
	for _, set := range s.Sets {
		c.Sets = append(c.Sets, set.Clone())
	}
	return c
}

// SetNumbered returns the set with the given number, or nil.
func (s *Score) SetNumbered(setNumber int) *Set {
	if s == nil {
		return nil
	}
	for _, set := range s.Sets {
		if set != nil && set.SetNumber == setNumber {
			return set
		}
	}
	return nil
}
