package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

// consolationFinishingOffset shifts consolation finishing positions past the
// main draw winner.
const consolationFinishingOffset = 1

// FeedInChampionshipGenerator builds a main tree and a consolation structure
// that takes first round losers and then feeds in the losers of later main
// rounds. unfedRounds counts the final main rounds whose losers are not fed.
type FeedInChampionshipGenerator struct {
	unfedRounds int
}

func NewFeedInChampionshipGenerator(unfedRounds int) DrawGenerator {
	return &FeedInChampionshipGenerator{unfedRounds: unfedRounds}
}

func (g *FeedInChampionshipGenerator) GetName() string {
	switch g.unfedRounds {
	case 1:
		return "FeedInChampionshipToSF"
	case 2:
		return "FeedInChampionshipToQF"
	case 3:
		return "FeedInChampionshipToR16"
	}
	return "FeedInChampionship"
}

// feedInRounds lays out a consolation for a main tree of size positions. The
// losers of main rounds 2..feedLimit enter through fed rounds matching the
// size of the main round they come from.
func feedInRounds(size, feedLimit int) []roundSpec {
	mainRounds := log2(size)
	m := size / 4
	rounds := []roundSpec{{matchUps: m}}
	for mainRound := 2; mainRound <= feedLimit && mainRound <= mainRounds; mainRound++ {
		if mainRound > 2 {
			m /= 2
			rounds = append(rounds, roundSpec{matchUps: m})
		}
		rounds = append(rounds, roundSpec{matchUps: m, fed: true})
	}
	for m > 1 {
		m /= 2
		rounds = append(rounds, roundSpec{matchUps: m})
	}
	return rounds
}

func consolationSize(drawSize int) (int, error) {
	size := nextPowerOfTwo(drawSize)
	if size < 4 {
		return 0, fmt.Errorf("%w: %d is too small for a consolation structure", models.ErrInvalidDrawSize, drawSize)
	}
	return size, nil
}

func (g *FeedInChampionshipGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	size, err := consolationSize(params.DrawSize)
	if err != nil {
		return nil, err
	}
	feedLimit := log2(size) - g.unfedRounds
	if feedLimit < 1 {
		feedLimit = 1
	}
	return build(ec, params, &drawPlan{
		specs: []*structureSpec{
			mainTreeSpec(params.DrawSize),
			{
				key:             "consolation",
				name:            "Consolation",
				stage:           models.StageConsolation,
				stageSequence:   1,
				rounds:          feedInRounds(size, feedLimit),
				finishingOffset: consolationFinishingOffset,
			},
		},
		mainKey: "main",
		links: func(byKey map[string]*models.Structure) ([]*models.Link, error) {
			return feedLinks(byKey["main"], byKey["consolation"], func(mainRound int) models.FeedProfile {
				if mainRound == 1 {
					return models.FeedProfileTopDown
				}
				return models.FeedProfileBottomUp
			}), nil
		},
	})
}

// FirstRoundLoserConsolationGenerator sends only first round losers to a
// consolation tree.
type FirstRoundLoserConsolationGenerator struct {
}

func NewFirstRoundLoserConsolationGenerator() DrawGenerator {
	return &FirstRoundLoserConsolationGenerator{}
}

func (g *FirstRoundLoserConsolationGenerator) GetName() string {
	return "FirstRoundLoserConsolation"
}

func (g *FirstRoundLoserConsolationGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	size, err := consolationSize(params.DrawSize)
	if err != nil {
		return nil, err
	}
	return build(ec, params, &drawPlan{
		specs: []*structureSpec{
			mainTreeSpec(params.DrawSize),
			{
				key:             "consolation",
				name:            "Consolation",
				stage:           models.StageConsolation,
				stageSequence:   1,
				rounds:          treeRounds(size/2, 0),
				finishingOffset: size / 2,
			},
		},
		mainKey: "main",
		links: func(byKey map[string]*models.Structure) ([]*models.Link, error) {
			return []*models.Link{
				loserLink(byKey["main"], 1, byKey["consolation"], 1, models.FeedProfileTopDown),
			}, nil
		},
	})
}
