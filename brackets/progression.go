package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/models"
)

// advancePosition moves drawPosition from m into the following round of s and
// returns the receiving matchUp, or nil when m is in the last round.
func advancePosition(s *models.Structure, m *models.MatchUp, drawPosition int) *models.MatchUp {
	if s.RoundLimit > 0 && m.RoundNumber >= s.RoundLimit {
		return nil
	}
	current := s.RoundMatchUps(m.RoundNumber)
	next := s.RoundMatchUps(m.RoundNumber + 1)
	if len(next) == 0 {
		return nil
	}
	var target *models.MatchUp
	slot := 1
	if len(next) == len(current) {
		target = next[m.RoundPosition-1]
	} else {
		idx := (m.RoundPosition+1)/2 - 1
		if idx >= len(next) {
			return nil
		}
		target = next[idx]
		slot = (m.RoundPosition - 1) % 2
	}
	for len(target.DrawPositions) < 2 {
		target.DrawPositions = append(target.DrawPositions, 0)
	}
	target.DrawPositions[slot] = drawPosition
	return target
}

// feedCandidates lists the positions of a target round that links may fill:
// every first round position (only the qualifier slots when any are flagged)
// or the fed positions of a later round.
func feedCandidates(target *models.Structure, roundNumber int) []int {
	var positions []int
	if roundNumber <= 1 {
		var qualifiers []int
		for _, m := range target.RoundMatchUps(1) {
			for _, p := range m.DrawPositions {
				if p == 0 {
					continue
				}
				positions = append(positions, p)
				if a := target.Assignment(p); a != nil && a.Qualifier {
					qualifiers = append(qualifiers, p)
				}
			}
		}
		if len(qualifiers) > 0 {
			return qualifiers
		}
		return positions
	}
	for _, m := range target.RoundMatchUps(roundNumber) {
		if len(m.DrawPositions) > 0 && m.DrawPositions[0] != 0 {
			positions = append(positions, m.DrawPositions[0])
		}
	}
	return positions
}

// feedTargetPosition picks the position in target that receives the outcome
// of the sourceRoundPosition-th matchUp out of sourceCount. When the round has
// exactly one position per source matchUp the mapping follows the profile;
// otherwise the first free position in profile order is taken.
func feedTargetPosition(target *models.Structure, roundNumber int, profile models.FeedProfile, sourceRoundPosition, sourceCount int) (int, error) {
	candidates := feedCandidates(target, roundNumber)
	if len(candidates) == sourceCount && profile != models.FeedProfileDraw && sourceRoundPosition >= 1 && sourceRoundPosition <= sourceCount {
		i := sourceRoundPosition - 1
		if profile == models.FeedProfileBottomUp {
			i = sourceCount - sourceRoundPosition
		}
		return candidates[i], nil
	}
	if profile == models.FeedProfileBottomUp {
		for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		}
	}
	for _, p := range candidates {
		a := target.Assignment(p)
		if a != nil && !a.Bye && a.ParticipantID == "" {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: no free position in %s round %d", models.ErrInvalidLink, target.StructureID, roundNumber)
}

func byeSplit(s *models.Structure, m *models.MatchUp) (winner, loser int) {
	first, second := m.DrawPositions[0], m.DrawPositions[1]
	if s.IsByePosition(first) && !s.IsByePosition(second) {
		return second, first
	}
	return first, second
}

// resolveByes marks matchUps with a bye side as BYE and advances the other
// position. Both sides being byes advances the first one.
func resolveByes(s *models.Structure) {
	for _, round := range s.RoundNumbers() {
		for _, m := range s.RoundMatchUps(round) {
			if m.MatchUpStatus != models.MatchUpStatusToBePlayed || len(m.DrawPositions) != 2 {
				continue
			}
			if m.DrawPositions[0] == 0 || m.DrawPositions[1] == 0 {
				continue
			}
			if !s.IsByePosition(m.DrawPositions[0]) && !s.IsByePosition(m.DrawPositions[1]) {
				continue
			}
			m.MatchUpStatus = models.MatchUpStatusBye
			winner, _ := byeSplit(s, m)
			advancePosition(s, m, winner)
		}
	}
}

// propagateByes walks structures in draw order so byes handed down through
// loser links are resolved before their own losers are passed on.
func propagateByes(idx *models.DrawIndex) error {
	for _, s := range idx.Draw.Structures {
		if s.IsContainer() {
			continue
		}
		resolveByes(s)
		for _, round := range s.RoundNumbers() {
			sourceCount := len(s.RoundMatchUps(round))
			for _, m := range s.RoundMatchUps(round) {
				if m.MatchUpStatus != models.MatchUpStatusBye {
					continue
				}
				for _, link := range idx.LinksFrom(s.StructureID, round) {
					if link.LinkType != models.LinkTypeLoser {
						continue
					}
					target, err := idx.Structure(link.Target.StructureID)
					if err != nil {
						return err
					}
					pos, err := feedTargetPosition(target, link.Target.RoundNumber, link.Target.FeedProfile, m.RoundPosition, sourceCount)
					if err != nil {
						return err
					}
					target.Assignment(pos).Bye = true
				}
			}
		}
	}
	return nil
}

// RefreshSides rebuilds the sides of every positioned matchUp in s from its
// position assignments. Ad hoc matchUps carry their own sides and are left alone.
func RefreshSides(s *models.Structure) {
	for _, m := range s.AllMatchUps() {
		if len(m.DrawPositions) == 0 {
			continue
		}
		sides := make([]*models.Side, 0, len(m.DrawPositions))
		for i, dp := range m.DrawPositions {
			side := &models.Side{SideNumber: i + 1, DrawPosition: dp}
			if dp != 0 {
				if a := s.Assignment(dp); a != nil {
					side.ParticipantID = a.ParticipantID
					side.Bye = a.Bye
				}
			}
			sides = append(sides, side)
		}
		m.Sides = sides
	}
}

func isPlaced(target *models.Structure, participantID string) bool {
	for _, a := range target.AllAssignments() {
		if a.ParticipantID == participantID {
			return true
		}
	}
	return false
}

// isFedInto reports whether participantID already holds one of the positions
// fed into roundNumber of target.
func isFedInto(target *models.Structure, roundNumber int, participantID string) bool {
	for _, p := range feedCandidates(target, roundNumber) {
		if a := target.Assignment(p); a != nil && a.ParticipantID == participantID {
			return true
		}
	}
	return false
}

func placeParticipant(target *models.Structure, pos int, participantID string) bool {
	a := target.Assignment(pos)
	if a == nil || a.Bye {
		return false
	}
	a.ParticipantID = participantID
	return true
}

func matchUpsAt(s *models.Structure, pos int) []*models.MatchUp {
	var found []*models.MatchUp
	for _, m := range s.AllMatchUps() {
		if m.HasDrawPosition(pos) {
			found = append(found, m)
		}
	}
	return found
}

type modifiedSet struct {
	seen map[string]bool
	list []*models.MatchUp
}

func (ms *modifiedSet) add(matchUps ...*models.MatchUp) {
	if ms.seen == nil {
		ms.seen = make(map[string]bool)
	}
	for _, m := range matchUps {
		if m != nil && !ms.seen[m.MatchUpID] {
			ms.seen[m.MatchUpID] = true
			ms.list = append(ms.list, m)
		}
	}
}

// DirectParticipants moves the winner of a decided matchUp to the next round
// and routes winner and loser through the links leaving its round. It returns
// every matchUp whose sides changed.
func DirectParticipants(idx *models.DrawIndex, m *models.MatchUp) ([]*models.MatchUp, error) {
	if m == nil {
		return nil, models.ErrMissingMatchUpID
	}
	if m.WinningSide != 1 && m.WinningSide != 2 {
		return nil, fmt.Errorf("%w: winningSide %d", models.ErrInvalidSideNumber, m.WinningSide)
	}
	s := idx.StructureOf(m.MatchUpID)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrMatchUpNotFound, m.MatchUpID)
	}
	var modified modifiedSet
	ids := m.ParticipantIDs()
	winnerID, loserID := ids[m.WinningSide-1], ids[2-m.WinningSide]

	if len(m.DrawPositions) == 2 {
		winnerPos := m.DrawPositions[m.WinningSide-1]
		if next := advancePosition(s, m, winnerPos); next != nil {
			modified.add(next)
		}
	}

	sourceCount := len(s.RoundMatchUps(m.RoundNumber))
	for _, link := range idx.LinksFrom(s.StructureID, m.RoundNumber) {
		var participantID string
		switch link.LinkType {
		case models.LinkTypeWinner:
			participantID = winnerID
		case models.LinkTypeLoser:
			participantID = loserID
		default:
			continue
		}
		target, err := idx.Structure(link.Target.StructureID)
		if err != nil {
			return nil, err
		}
		if participantID == "" || isFedInto(target, link.Target.RoundNumber, participantID) {
			continue
		}
		pos, err := feedTargetPosition(target, link.Target.RoundNumber, link.Target.FeedProfile, m.RoundPosition, sourceCount)
		if err != nil {
			return nil, err
		}
		if placeParticipant(target, pos, participantID) {
			RefreshSides(target)
			modified.add(matchUpsAt(target, pos)...)
		}
	}
	RefreshSides(s)
	return modified.list, nil
}

// DirectGroupFinishers places group finishers into the structures fed by DRAW
// links from container. finishers maps a group id to its participants in
// finishing order.
func DirectGroupFinishers(idx *models.DrawIndex, container *models.Structure, finishers map[string][]string) ([]*models.MatchUp, error) {
	if container == nil {
		return nil, models.ErrMissingStructureID
	}
	var modified modifiedSet
	for _, link := range idx.LinksFrom(container.StructureID, 0) {
		if link.LinkType != models.LinkTypeDraw {
			continue
		}
		target, err := idx.Structure(link.Target.StructureID)
		if err != nil {
			return nil, err
		}
		for gi, group := range container.Structures {
			order := finishers[group.StructureID]
			for _, fp := range link.Source.FinishingPositions {
				if fp < 1 || fp > len(order) || isPlaced(target, order[fp-1]) {
					continue
				}
				pos, err := feedTargetPosition(target, link.Target.RoundNumber, link.Target.FeedProfile, gi+1, len(container.Structures))
				if err != nil {
					return nil, err
				}
				if placeParticipant(target, pos, order[fp-1]) {
					modified.add(matchUpsAt(target, pos)...)
				}
			}
		}
		RefreshSides(target)
	}
	return modified.list, nil
}
