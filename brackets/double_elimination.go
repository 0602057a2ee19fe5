package brackets

import (
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

// DoubleEliminationGenerator builds a main tree with an extra final that the
// backdraw winner feeds into, a full feed-in backdraw and a decider played
// between the two finalists.
type DoubleEliminationGenerator struct {
}

func NewDoubleEliminationGenerator() DrawGenerator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

func (g *DoubleEliminationGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	size, err := consolationSize(params.DrawSize)
	if err != nil {
		return nil, err
	}
	main := mainTreeSpec(params.DrawSize)
	main.rounds = append(main.rounds, roundSpec{matchUps: 1, fed: true})

	return build(ec, params, &drawPlan{
		specs: []*structureSpec{
			main,
			{
				key:             "backdraw",
				name:            "Backdraw",
				stage:           models.StageConsolation,
				stageSequence:   1,
				rounds:          feedInRounds(size, log2(size)),
				finishingOffset: consolationFinishingOffset,
			},
			{
				key:           "decider",
				name:          "Decider",
				stage:         models.StageMain,
				stageSequence: 2,
				rounds:        []roundSpec{{matchUps: 1}},
			},
		},
		mainKey: "main",
		links: func(byKey map[string]*models.Structure) ([]*models.Link, error) {
			return DoubleEliminationLinks(byKey["main"], byKey["backdraw"], byKey["decider"])
		},
	})
}
