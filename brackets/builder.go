package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

// GenerationState tracks draw generation; transitions only move forward.
type GenerationState int

const (
	StateEmpty GenerationState = iota
	StateRoundsAllocated
	StatePositionsAllocated
	StateLinked
)

func (s GenerationState) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateRoundsAllocated:
		return "ROUNDS_ALLOCATED"
	case StatePositionsAllocated:
		return "POSITIONS_ALLOCATED"
	case StateLinked:
		return "LINKED"
	}
	return fmt.Sprintf("GenerationState(%d)", int(s))
}

type roundSpec struct {
	matchUps int
	fed      bool
}

type structureSpec struct {
	key             string
	name            string
	stage           models.Stage
	stageSequence   int
	rounds          []roundSpec
	groups          []int
	adHoc           bool
	finishingOffset int
	roundLimit      int
	entrants        int
	qualifiers      int
	main            bool
}

type linkFunc func(byKey map[string]*models.Structure) ([]*models.Link, error)

type drawPlan struct {
	specs   []*structureSpec
	mainKey string
	links   linkFunc
}

type drawBuilder struct {
	ec         *engine.Context
	state      GenerationState
	specs      []*structureSpec
	structures []*models.Structure
	byKey      map[string]*models.Structure
	groupPairs map[string][2]int
	links      []*models.Link
}

func newDrawBuilder(ec *engine.Context) *drawBuilder {
	if ec == nil {
		ec = engine.New()
	}
	return &drawBuilder{
		ec:         ec,
		byKey:      make(map[string]*models.Structure),
		groupPairs: make(map[string][2]int),
	}
}

func (b *drawBuilder) transition(from, to GenerationState) error {
	if b.state != from || to != from+1 {
		return fmt.Errorf("%w: %s -> %s while %s", models.ErrInvalidGenerationState, from, to, b.state)
	}
	b.state = to
	return nil
}

// treeRounds lists the rounds of an elimination tree with size positions,
// truncated to limit rounds when limit > 0.
func treeRounds(size, limit int) []roundSpec {
	var rounds []roundSpec
	for m := size / 2; m >= 1; m /= 2 {
		if limit > 0 && len(rounds) == limit {
			break
		}
		rounds = append(rounds, roundSpec{matchUps: m})
	}
	return rounds
}

// build runs a plan through the generation phases. Qualifying, when requested,
// becomes an extra structure linked into the main structure's first round.
func build(ec *engine.Context, params GenerateDrawParams, plan *drawPlan) (*GeneratedDraw, error) {
	b := newDrawBuilder(ec)
	specs := plan.specs
	var qualifyingRounds int
	if params.QualifyingDrawSize > 0 {
		size := nextPowerOfTwo(params.QualifyingDrawSize)
		qualifyingRounds = log2(size / params.QualifiersCount)
		for _, spec := range specs {
			if spec.key == plan.mainKey {
				spec.qualifiers = params.QualifiersCount
			}
		}
		qualifying := &structureSpec{
			key:           "qualifying",
			name:          "Qualifying",
			stage:         models.StageQualifying,
			stageSequence: 1,
			rounds:        treeRounds(size, qualifyingRounds),
			roundLimit:    qualifyingRounds,
			entrants:      params.QualifyingDrawSize,
		}
		specs = append([]*structureSpec{qualifying}, specs...)
	}
	b.specs = specs

	if err := b.allocateRounds(); err != nil {
		return nil, err
	}
	if err := b.allocatePositions(params.ParticipantIDs); err != nil {
		return nil, err
	}

	var links []*models.Link
	if plan.links != nil {
		planned, err := plan.links(b.byKey)
		if err != nil {
			return nil, err
		}
		links = append(links, planned...)
	}
	if qualifyingRounds > 0 {
		link, err := GenerateQualifyingLink(QualifyingLinkParams{
			QualifyingStructureID: b.byKey["qualifying"].StructureID,
			MainStructureID:       b.byKey[plan.mainKey].StructureID,
			QualifyingRoundNumber: qualifyingRounds,
		})
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := b.link(links); err != nil {
		return nil, err
	}
	return &GeneratedDraw{Structures: b.structures, Links: b.links}, nil
}

func (b *drawBuilder) allocateRounds() error {
	if err := b.transition(StateEmpty, StateRoundsAllocated); err != nil {
		return err
	}
	for _, spec := range b.specs {
		s := &models.Structure{
			StructureID:             b.ec.ID(),
			StructureName:           spec.name,
			Stage:                   spec.stage,
			StageSequence:           spec.stageSequence,
			FinishingPositionOffset: spec.finishingOffset,
			RoundLimit:              spec.roundLimit,
		}
		switch {
		case len(spec.groups) > 0:
			s.StructureType = models.StructureTypeContainer
			for gi, size := range spec.groups {
				s.Structures = append(s.Structures, b.allocateGroup(spec, gi+1, size))
			}
		case !spec.adHoc:
			b.allocateTree(s, spec)
		}
		b.structures = append(b.structures, s)
		b.byKey[spec.key] = s
	}
	return nil
}

func (b *drawBuilder) allocateTree(s *models.Structure, spec *structureSpec) {
	remaining := 0
	for r, rs := range spec.rounds {
		roundNumber := r + 1
		entering := rs.matchUps
		if r == 0 {
			entering = 2 * rs.matchUps
		}
		before := remaining + entering
		if r > 0 && !rs.fed {
			before = remaining
		}
		remaining = before - rs.matchUps
		offset := spec.finishingOffset
		for k := 1; k <= rs.matchUps; k++ {
			m := models.NewMatchUp(b.ec.ID(), roundNumber, k)
			m.FinishingRound = len(spec.rounds) - r
			m.FinishingPositionRange = &models.FinishingPositionRange{
				Winner: []int{offset + 1, offset + remaining},
				Loser:  []int{offset + remaining + 1, offset + remaining + rs.matchUps},
			}
			s.MatchUps = append(s.MatchUps, m)
		}
	}
}

func (b *drawBuilder) allocateGroup(spec *structureSpec, groupNumber, size int) *models.Structure {
	group := &models.Structure{
		StructureID:   b.ec.ID(),
		StructureName: fmt.Sprintf("Group %d", groupNumber),
		StructureType: models.StructureTypeItem,
		Stage:         spec.stage,
		StageSequence: spec.stageSequence,
	}
	for r, pairs := range circleRounds(size) {
		for k, pair := range pairs {
			m := models.NewMatchUp(b.ec.ID(), r+1, k+1)
			b.groupPairs[m.MatchUpID] = pair
			group.MatchUps = append(group.MatchUps, m)
		}
	}
	return group
}

func (b *drawBuilder) allocatePositions(participantIDs []string) error {
	if err := b.transition(StateRoundsAllocated, StatePositionsAllocated); err != nil {
		return err
	}
	for i, spec := range b.specs {
		s := b.structures[i]
		switch {
		case len(spec.groups) > 0:
			b.positionGroups(s)
		case spec.adHoc:
			for i, id := range participantIDs {
				s.PositionAssignments = append(s.PositionAssignments, &models.PositionAssignment{DrawPosition: i + 1, ParticipantID: id})
			}
			continue
		default:
			if err := positionTree(s, spec); err != nil {
				return err
			}
		}
		if spec.main && len(participantIDs) > 0 {
			entryLimit := 0
			if len(spec.groups) == 0 {
				entryLimit = 2 * len(s.RoundMatchUps(1))
			}
			if err := assignParticipants(s, participantIDs, entryLimit); err != nil {
				return err
			}
		}
		if spec.entrants > 0 {
			resolveByes(s)
		}
		RefreshSides(s)
	}
	return nil
}

func positionTree(s *models.Structure, spec *structureSpec) error {
	first := s.RoundMatchUps(1)
	pos := 0
	for _, m := range first {
		m.DrawPositions = []int{pos + 1, pos + 2}
		pos += 2
	}
	size := pos
	for _, roundNumber := range s.RoundNumbers() {
		if roundNumber == 1 || !spec.rounds[roundNumber-1].fed {
			continue
		}
		for _, m := range s.RoundMatchUps(roundNumber) {
			pos++
			m.DrawPositions[0] = pos
		}
	}
	for p := 1; p <= pos; p++ {
		s.PositionAssignments = append(s.PositionAssignments, &models.PositionAssignment{DrawPosition: p})
	}

	if spec.entrants == 0 {
		return nil
	}
	if spec.entrants > size {
		return fmt.Errorf("%w: %d entrants for %d positions", models.ErrInvalidDrawSize, spec.entrants, size)
	}
	byes := byePositions(size, size-spec.entrants)
	for _, p := range byes {
		s.Assignment(p).Bye = true
	}
	for _, p := range qualifierPositions(size, spec.qualifiers, byes) {
		s.Assignment(p).Qualifier = true
	}
	return nil
}

func (b *drawBuilder) positionGroups(container *models.Structure) {
	pos := 0
	for _, group := range container.Structures {
		members := make(map[int]int)
		for _, m := range group.MatchUps {
			pair := b.groupPairs[m.MatchUpID]
			for _, member := range pair {
				if _, ok := members[member]; !ok {
					members[member] = 0
				}
			}
		}
		for member := 0; member < len(members); member++ {
			pos++
			members[member] = pos
			group.PositionAssignments = append(group.PositionAssignments, &models.PositionAssignment{DrawPosition: pos})
		}
		for _, m := range group.MatchUps {
			pair := b.groupPairs[m.MatchUpID]
			m.DrawPositions = []int{members[pair[0]], members[pair[1]]}
		}
	}
}

// assignParticipants fills free positions in order. A positive entryLimit
// excludes the fed positions numbered above it.
func assignParticipants(s *models.Structure, participantIDs []string, entryLimit int) error {
	var free []*models.PositionAssignment
	for _, a := range s.AllAssignments() {
		if entryLimit > 0 && a.DrawPosition > entryLimit {
			continue
		}
		if !a.Bye && !a.Qualifier && a.ParticipantID == "" {
			free = append(free, a)
		}
	}
	if len(participantIDs) > len(free) {
		return fmt.Errorf("%w: %d participants for %d positions", models.ErrInvalidValues, len(participantIDs), len(free))
	}
	for i, id := range participantIDs {
		free[i].ParticipantID = id
	}
	return nil
}

func (b *drawBuilder) link(links []*models.Link) error {
	if err := b.transition(StatePositionsAllocated, StateLinked); err != nil {
		return err
	}
	b.links = links
	draw := &models.DrawDefinition{Structures: b.structures, Links: b.links}
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return err
	}
	if err := propagateByes(idx); err != nil {
		return err
	}
	for _, s := range b.structures {
		RefreshSides(s)
	}
	return VerifyLinks(draw)
}
