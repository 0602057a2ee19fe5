package brackets

import (
	"github.com/Dosada05/tournament-draws/models"
)

type QualifyingLinkParams struct {
	QualifyingStructureID string             `json:"qualifyingStructureId"`
	MainStructureID       string             `json:"mainStructureId"`
	QualifyingRoundNumber int                `json:"qualifyingRoundNumber"`
	MainRoundNumber       int                `json:"mainRoundNumber,omitempty"`
	FeedProfile           models.FeedProfile `json:"feedProfile,omitempty"`
	LinkType              models.LinkType    `json:"linkType,omitempty"`
}

// GenerateQualifyingLink builds the link carrying qualifiers from a
// qualifying round into the main structure. Main round 1, DRAW feeding and
// WINNER links are the defaults.
func GenerateQualifyingLink(params QualifyingLinkParams) (*models.Link, error) {
	if params.QualifyingStructureID == "" || params.MainStructureID == "" {
		return nil, models.ErrMissingStructureID
	}
	if params.QualifyingRoundNumber < 1 {
		return nil, models.ErrInvalidValues
	}
	if params.MainRoundNumber == 0 {
		params.MainRoundNumber = 1
	}
	if params.FeedProfile == "" {
		params.FeedProfile = models.FeedProfileDraw
	}
	if params.LinkType == "" {
		params.LinkType = models.LinkTypeWinner
	}
	if !params.FeedProfile.IsValid() || !params.LinkType.IsValid() {
		return nil, models.ErrInvalidLink
	}
	return &models.Link{
		LinkType: params.LinkType,
		Source: models.LinkSource{
			StructureID: params.QualifyingStructureID,
			RoundNumber: params.QualifyingRoundNumber,
		},
		Target: models.LinkTarget{
			StructureID: params.MainStructureID,
			RoundNumber: params.MainRoundNumber,
			FeedProfile: params.FeedProfile,
		},
	}, nil
}

func loserLink(source *models.Structure, sourceRound int, target *models.Structure, targetRound int, profile models.FeedProfile) *models.Link {
	return &models.Link{
		LinkType: models.LinkTypeLoser,
		Source:   models.LinkSource{StructureID: source.StructureID, RoundNumber: sourceRound},
		Target:   models.LinkTarget{StructureID: target.StructureID, RoundNumber: targetRound, FeedProfile: profile},
	}
}

// fedRounds lists the rounds of s that have positions of their own: the
// first round and every round with a fed slot.
func fedRounds(s *models.Structure) []int {
	var rounds []int
	for _, r := range s.RoundNumbers() {
		if r == 1 || isFedRound(s, r) {
			rounds = append(rounds, r)
		}
	}
	return rounds
}

// isFedRound reports whether round r carries positions that never appeared in
// an earlier round.
func isFedRound(s *models.Structure, r int) bool {
	earlier := make(map[int]bool)
	for _, m := range s.MatchUps {
		if m.RoundNumber < r {
			for _, p := range m.DrawPositions {
				earlier[p] = true
			}
		}
	}
	for _, m := range s.RoundMatchUps(r) {
		if len(m.DrawPositions) > 0 && m.DrawPositions[0] != 0 && !earlier[m.DrawPositions[0]] {
			return true
		}
	}
	return false
}

// feedLinks sends the losers of main rounds 1..len(fed rounds) to the
// consolation rounds that take them, in order.
func feedLinks(main, consolation *models.Structure, profileFor func(mainRound int) models.FeedProfile) []*models.Link {
	rounds := fedRounds(consolation)
	links := make([]*models.Link, 0, len(rounds))
	for i, targetRound := range rounds {
		mainRound := i + 1
		if len(main.RoundMatchUps(mainRound)) == 0 {
			break
		}
		links = append(links, loserLink(main, mainRound, consolation, targetRound, profileFor(mainRound)))
	}
	return links
}

// DoubleEliminationLinks wires a double elimination draw: main losers into
// the backdraw with alternating feed profiles, the backdraw winner into the
// main final, and both finalists into the decider.
func DoubleEliminationLinks(main, consolation, decider *models.Structure) ([]*models.Link, error) {
	for _, s := range []*models.Structure{main, consolation, decider} {
		if s == nil || s.StructureID == "" {
			return nil, models.ErrMissingStructureID
		}
	}
	links := feedLinks(main, consolation, func(mainRound int) models.FeedProfile {
		if mainRound%2 == 1 {
			return models.FeedProfileTopDown
		}
		return models.FeedProfileBottomUp
	})

	mainFinal := main.RoundsCount()
	links = append(links,
		&models.Link{
			LinkType: models.LinkTypeWinner,
			Source:   models.LinkSource{StructureID: consolation.StructureID, RoundNumber: consolation.RoundsCount()},
			Target:   models.LinkTarget{StructureID: main.StructureID, RoundNumber: mainFinal, FeedProfile: models.FeedProfileTopDown},
		},
		&models.Link{
			LinkType: models.LinkTypeWinner,
			Source:   models.LinkSource{StructureID: main.StructureID, RoundNumber: mainFinal},
			Target:   models.LinkTarget{StructureID: decider.StructureID, RoundNumber: 1, FeedProfile: models.FeedProfileTopDown},
		},
		loserLink(main, mainFinal, decider, 1, models.FeedProfileTopDown),
	)
	return links, nil
}
