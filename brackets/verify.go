package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/models"
)

// VerifyLinks checks that every link names existing structures and rounds,
// that the target round can take every outcome the source produces, and that
// no top level structure of a multi structure draw is left unlinked.
func VerifyLinks(draw *models.DrawDefinition) error {
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return err
	}
	type feedKey struct {
		structureID string
		roundNumber int
	}
	linked := make(map[string]bool)
	outcomesByTarget := make(map[feedKey]int)
	var feeds []feedKey
	for _, link := range draw.Links {
		if link == nil {
			return fmt.Errorf("%w: nil link", models.ErrInvalidLink)
		}
		if !link.LinkType.IsValid() {
			return fmt.Errorf("%w: link type %q", models.ErrInvalidLink, link.LinkType)
		}
		if !link.Target.FeedProfile.IsValid() {
			return fmt.Errorf("%w: feed profile %q", models.ErrInvalidLink, link.Target.FeedProfile)
		}
		source, err := idx.Structure(link.Source.StructureID)
		if err != nil {
			return err
		}
		target, err := idx.Structure(link.Target.StructureID)
		if err != nil {
			return err
		}
		if target.IsContainer() {
			return fmt.Errorf("%w: target %s is a container", models.ErrInvalidLink, target.StructureID)
		}

		var outcomes int
		if link.LinkType == models.LinkTypeDraw {
			if len(link.Source.FinishingPositions) == 0 {
				return fmt.Errorf("%w: draw link from %s without finishing positions", models.ErrInvalidLink, source.StructureID)
			}
			groups := len(source.Structures)
			if groups == 0 {
				groups = 1
			}
			outcomes = groups * len(link.Source.FinishingPositions)
		} else {
			outcomes = len(source.RoundMatchUps(link.Source.RoundNumber))
			if outcomes == 0 {
				return fmt.Errorf("%w: %s has no round %d", models.ErrInvalidLink, source.StructureID, link.Source.RoundNumber)
			}
		}
		if len(target.RoundMatchUps(link.Target.RoundNumber)) == 0 {
			return fmt.Errorf("%w: %s has no round %d", models.ErrInvalidLink, target.StructureID, link.Target.RoundNumber)
		}
		key := feedKey{target.StructureID, link.Target.RoundNumber}
		if _, ok := outcomesByTarget[key]; !ok {
			feeds = append(feeds, key)
		}
		outcomesByTarget[key] += outcomes
		linked[source.StructureID] = true
		linked[target.StructureID] = true
	}
	for _, key := range feeds {
		target, _ := idx.Structure(key.structureID)
		open := 0
		for _, p := range feedCandidates(target, key.roundNumber) {
			if !target.IsByePosition(p) {
				open++
			}
		}
		if open > outcomesByTarget[key] {
			return fmt.Errorf("%w: %d positions in %s round %d for %d outcomes",
				models.ErrInvalidLink, open, key.structureID, key.roundNumber, outcomesByTarget[key])
		}
	}
	if len(draw.Structures) > 1 {
		for _, s := range draw.Structures {
			if !linked[s.StructureID] {
				return fmt.Errorf("%w: structure %s is not linked", models.ErrInvalidLink, s.StructureID)
			}
		}
	}
	return nil
}
