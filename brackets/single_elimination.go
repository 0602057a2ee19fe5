// tournament-draws/brackets/single_elimination.go
package brackets

import (
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

type SingleEliminationGenerator struct {
}

func NewSingleEliminationGenerator() DrawGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

func (g *SingleEliminationGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	return build(ec, params, &drawPlan{
		specs:   []*structureSpec{mainTreeSpec(params.DrawSize)},
		mainKey: "main",
	})
}

// mainTreeSpec is the elimination tree that receives the draw's participants.
// Positions beyond drawSize become byes.
func mainTreeSpec(drawSize int) *structureSpec {
	return &structureSpec{
		key:           "main",
		name:          "Main",
		stage:         models.StageMain,
		stageSequence: 1,
		rounds:        treeRounds(nextPowerOfTwo(drawSize), 0),
		entrants:      drawSize,
		main:          true,
	}
}
