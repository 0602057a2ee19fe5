package models

type MatchUpStatus string

const (
	MatchUpStatusToBePlayed     MatchUpStatus = "TO_BE_PLAYED"
	MatchUpStatusInProgress     MatchUpStatus = "IN_PROGRESS"
	MatchUpStatusCompleted      MatchUpStatus = "COMPLETED"
	MatchUpStatusBye            MatchUpStatus = "BYE"
	MatchUpStatusRetired        MatchUpStatus = "RETIRED"
	MatchUpStatusWalkover       MatchUpStatus = "WALKOVER"
	MatchUpStatusDefaulted      MatchUpStatus = "DEFAULTED"
	MatchUpStatusDoubleWalkover MatchUpStatus = "DOUBLE_WALKOVER"
	MatchUpStatusSuspended      MatchUpStatus = "SUSPENDED"
	MatchUpStatusAbandoned      MatchUpStatus = "ABANDONED"
	MatchUpStatusCancelled      MatchUpStatus = "CANCELLED"
)

var matchUpStatuses = map[MatchUpStatus]bool{
	MatchUpStatusToBePlayed:     true,
	MatchUpStatusInProgress:     true,
	MatchUpStatusCompleted:      true,
	MatchUpStatusBye:            true,
	MatchUpStatusRetired:        true,
	MatchUpStatusWalkover:       true,
	MatchUpStatusDefaulted:      true,
	MatchUpStatusDoubleWalkover: true,
	MatchUpStatusSuspended:      true,
	MatchUpStatusAbandoned:      true,
	MatchUpStatusCancelled:      true,
}

func (s MatchUpStatus) IsValid() bool {
	return matchUpStatuses[s]
}

// IsCompleted reports statuses that produce a winner.
func (s MatchUpStatus) IsCompleted() bool {
	switch s {
	case MatchUpStatusCompleted, MatchUpStatusRetired, MatchUpStatusWalkover, MatchUpStatusDefaulted:
		return true
	}
	return false
}

type Side struct {
	SideNumber    int    `json:"sideNumber"`
	DrawPosition  int    `json:"drawPosition,omitempty"`
	ParticipantID string `json:"participantId,omitempty"`
	Bye           bool   `json:"bye,omitempty"`
}

type FinishingPositionRange struct {
	Winner []int `json:"winner"`
	Loser  []int `json:"loser"`
}

// MatchUp holds at most two drawPositions; slot i belongs to side i+1 and a
// zero marks a position not yet resolved.
type MatchUp struct {
	MatchUpID              string                  `json:"matchUpId"`
	RoundNumber            int                     `json:"roundNumber"`
	RoundPosition          int                     `json:"roundPosition"`
	DrawPositions          []int                   `json:"drawPositions"`
	Sides                  []*Side                 `json:"sides,omitempty"`
	Score                  *Score                  `json:"score,omitempty"`
	MatchUpFormat          string                  `json:"matchUpFormat,omitempty"`
	MatchUpStatus          MatchUpStatus           `json:"matchUpStatus"`
	WinningSide            int                     `json:"winningSide,omitempty"`
	FinishingRound         int                     `json:"finishingRound,omitempty"`
	FinishingPositionRange *FinishingPositionRange `json:"finishingPositionRange,omitempty"`
	ScoreHistory           []*Score                `json:"scoreHistory,omitempty"`
}

func NewMatchUp(id string, roundNumber, roundPosition int) *MatchUp {
	return &MatchUp{
		MatchUpID:     id,
		RoundNumber:   roundNumber,
		RoundPosition: roundPosition,
		DrawPositions: []int{0, 0},
		MatchUpStatus: MatchUpStatusToBePlayed,
	}
}

func (m *MatchUp) Side(sideNumber int) *Side {
	for _, s := range m.Sides {
		if s.SideNumber == sideNumber {
			return s
		}
	}
	return nil
}

func (m *MatchUp) HasDrawPosition(drawPosition int) bool {
	for _, p := range m.DrawPositions {
		if p != 0 && p == drawPosition {
			return true
		}
	}
	return false
}

// ResolvedDrawPositions returns the non-zero positions in slot order.
func (m *MatchUp) ResolvedDrawPositions() []int {
	var resolved []int
	for _, p := range m.DrawPositions {
		if p != 0 {
			resolved = append(resolved, p)
		}
	}
	return resolved
}

// ParticipantIDs returns side participant ids indexed by side number - 1.
func (m *MatchUp) ParticipantIDs() [2]string {
	var ids [2]string
	for _, s := range m.Sides {
		if s.SideNumber == 1 || s.SideNumber == 2 {
			ids[s.SideNumber-1] = s.ParticipantID
		}
	}
	return ids
}
