package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type DrawType string

const (
	DrawTypeSingleElimination          DrawType = "SINGLE_ELIMINATION"
	DrawTypeDoubleElimination          DrawType = "DOUBLE_ELIMINATION"
	DrawTypeRoundRobin                 DrawType = "ROUND_ROBIN"
	DrawTypeRoundRobinWithPlayoff      DrawType = "ROUND_ROBIN_WITH_PLAYOFF"
	DrawTypeCompass                    DrawType = "COMPASS"
	DrawTypeOlympic                    DrawType = "OLYMPIC"
	DrawTypeFeedInChampionship         DrawType = "FEED_IN_CHAMPIONSHIP"
	DrawTypeFeedInChampionshipToSF     DrawType = "FEED_IN_CHAMPIONSHIP_TO_SF"
	DrawTypeFeedInChampionshipToQF     DrawType = "FEED_IN_CHAMPIONSHIP_TO_QF"
	DrawTypeFeedInChampionshipToR16    DrawType = "FEED_IN_CHAMPIONSHIP_TO_R16"
	DrawTypeFirstRoundLoserConsolation DrawType = "FIRST_ROUND_LOSER_CONSOLATION"
	DrawTypeAdHoc                      DrawType = "AD_HOC"
)

// DrawTypes lists every supported draw type in a stable order.
var DrawTypes = []DrawType{
	DrawTypeSingleElimination,
	DrawTypeDoubleElimination,
	DrawTypeRoundRobin,
	DrawTypeRoundRobinWithPlayoff,
	DrawTypeCompass,
	DrawTypeOlympic,
	DrawTypeFeedInChampionship,
	DrawTypeFeedInChampionshipToSF,
	DrawTypeFeedInChampionshipToQF,
	DrawTypeFeedInChampionshipToR16,
	DrawTypeFirstRoundLoserConsolation,
	DrawTypeAdHoc,
}

func (t DrawType) IsValid() bool {
	for _, known := range DrawTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Stage string

const (
	StageQualifying  Stage = "QUALIFYING"
	StageMain        Stage = "MAIN"
	StageConsolation Stage = "CONSOLATION"
	StagePlayOff     Stage = "PLAY_OFF"
)

type StructureType string

const (
	StructureTypeContainer StructureType = "CONTAINER"
	StructureTypeItem      StructureType = "ITEM"
)

type DrawDefinition struct {
	DrawID        string       `json:"drawId"`
	DrawName      string       `json:"drawName,omitempty"`
	DrawType      DrawType     `json:"drawType"`
	DrawSize      int          `json:"drawSize"`
	MatchUpFormat string       `json:"matchUpFormat,omitempty"`
	Structures    []*Structure `json:"structures"`
	Links         []*Link      `json:"links"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Clone returns a deep copy; repositories hand out clones so callers never
// share matchUps with stored documents.
func (d *DrawDefinition) Clone() (*DrawDefinition, error) {
	if d == nil {
		return nil, ErrMissingDrawDefinition
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draw %s: %w", d.DrawID, err)
	}
	clone := &DrawDefinition{}
	if err := json.Unmarshal(data, clone); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draw %s: %w", d.DrawID, err)
	}
	return clone, nil
}

type PositionAssignment struct {
	DrawPosition  int    `json:"drawPosition"`
	ParticipantID string `json:"participantId,omitempty"`
	Bye           bool   `json:"bye,omitempty"`
	Qualifier     bool   `json:"qualifier,omitempty"`
}

type Structure struct {
	StructureID             string                `json:"structureId"`
	StructureName           string                `json:"structureName,omitempty"`
	StructureType           StructureType         `json:"structureType,omitempty"`
	Stage                   Stage                 `json:"stage"`
	StageSequence           int                   `json:"stageSequence"`
	FinishingPositionOffset int                   `json:"finishingPositionOffset,omitempty"`
	RoundLimit              int                   `json:"roundLimit,omitempty"`
	MatchUpFormat           string                `json:"matchUpFormat,omitempty"`
	MatchUps                []*MatchUp            `json:"matchUps,omitempty"`
	Structures              []*Structure          `json:"structures,omitempty"`
	PositionAssignments     []*PositionAssignment `json:"positionAssignments,omitempty"`
}

func (s *Structure) IsContainer() bool {
	return s.StructureType == StructureTypeContainer
}

// RoundMatchUps returns the matchUps of one round ordered by roundPosition.
func (s *Structure) RoundMatchUps(roundNumber int) []*MatchUp {
	var round []*MatchUp
	for _, m := range s.MatchUps {
		if m.RoundNumber == roundNumber {
			round = append(round, m)
		}
	}
	sort.Slice(round, func(i, j int) bool { return round[i].RoundPosition < round[j].RoundPosition })
	return round
}

// RoundNumbers returns the distinct round numbers in ascending order.
func (s *Structure) RoundNumbers() []int {
	seen := make(map[int]bool)
	var rounds []int
	for _, m := range s.MatchUps {
		if !seen[m.RoundNumber] {
			seen[m.RoundNumber] = true
			rounds = append(rounds, m.RoundNumber)
		}
	}
	sort.Ints(rounds)
	return rounds
}

func (s *Structure) RoundsCount() int {
	rounds := s.RoundNumbers()
	if len(rounds) == 0 {
		return 0
	}
	return rounds[len(rounds)-1]
}

// AllMatchUps includes the matchUps of nested structures, container first.
func (s *Structure) AllMatchUps() []*MatchUp {
	all := append([]*MatchUp(nil), s.MatchUps...)
	for _, child := range s.Structures {
		all = append(all, child.AllMatchUps()...)
	}
	return all
}

// Assignment finds the position assignment for drawPosition, searching nested
// structures too.
func (s *Structure) Assignment(drawPosition int) *PositionAssignment {
	for _, a := range s.PositionAssignments {
		if a.DrawPosition == drawPosition {
			return a
		}
	}
	for _, child := range s.Structures {
		if a := child.Assignment(drawPosition); a != nil {
			return a
		}
	}
	return nil
}

// AllAssignments flattens the position assignments of s and its children.
func (s *Structure) AllAssignments() []*PositionAssignment {
	all := append([]*PositionAssignment(nil), s.PositionAssignments...)
	for _, child := range s.Structures {
		all = append(all, child.AllAssignments()...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DrawPosition < all[j].DrawPosition })
	return all
}

func (s *Structure) IsByePosition(drawPosition int) bool {
	a := s.Assignment(drawPosition)
	return a != nil && a.Bye
}

// DrawSummary is the listing view of a draw document.
type DrawSummary struct {
	DrawID    string    `json:"drawId"`
	DrawName  string    `json:"drawName,omitempty"`
	DrawType  DrawType  `json:"drawType"`
	DrawSize  int       `json:"drawSize"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DrawDefinition) Summary() DrawSummary {
	return DrawSummary{
		DrawID:    d.DrawID,
		DrawName:  d.DrawName,
		DrawType:  d.DrawType,
		DrawSize:  d.DrawSize,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
