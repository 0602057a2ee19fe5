package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

type RoundRobinGenerator struct {
	withPlayoff bool
}

func NewRoundRobinGenerator(withPlayoff bool) DrawGenerator {
	return &RoundRobinGenerator{withPlayoff: withPlayoff}
}

func (g *RoundRobinGenerator) GetName() string {
	if g.withPlayoff {
		return "RoundRobinWithPlayoff"
	}
	return "RoundRobin"
}

// groupSizes splits drawSize entrants into groups of at most groupSize,
// keeping group sizes within one of each other.
func groupSizes(drawSize, groupSize int) []int {
	count := (drawSize + groupSize - 1) / groupSize
	sizes := make([]int, count)
	for i := range sizes {
		sizes[i] = drawSize / count
		if i < drawSize%count {
			sizes[i]++
		}
	}
	return sizes
}

// Generate creates a container with one group per slice of the draw; every
// member of a group meets every other member once.
func (g *RoundRobinGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	groupSize := params.GroupSize
	if groupSize == 0 {
		groupSize = defaultGroupSize
	}
	if groupSize < minGroupSize || groupSize > maxGroupSize {
		return nil, fmt.Errorf("%w: group size %d", models.ErrInvalidValues, groupSize)
	}
	groups := groupSizes(params.DrawSize, groupSize)

	plan := &drawPlan{
		specs: []*structureSpec{{
			key:           "main",
			name:          "Main",
			stage:         models.StageMain,
			stageSequence: 1,
			groups:        groups,
			main:          true,
		}},
		mainKey: "main",
	}
	if g.withPlayoff {
		if len(groups) < 2 {
			return nil, fmt.Errorf("%w: a playoff needs at least two groups, got %d", models.ErrInvalidDrawSize, len(groups))
		}
		plan.specs = append(plan.specs, &structureSpec{
			key:           "playoff",
			name:          "Playoff",
			stage:         models.StagePlayOff,
			stageSequence: 2,
			rounds:        treeRounds(nextPowerOfTwo(len(groups)), 0),
			entrants:      len(groups),
		})
		plan.links = func(byKey map[string]*models.Structure) ([]*models.Link, error) {
			return []*models.Link{{
				LinkType: models.LinkTypeDraw,
				Source: models.LinkSource{
					StructureID:        byKey["main"].StructureID,
					FinishingPositions: []int{1},
				},
				Target: models.LinkTarget{
					StructureID: byKey["playoff"].StructureID,
					RoundNumber: 1,
					FeedProfile: models.FeedProfileDraw,
				},
			}}, nil
		}
	}
	return build(ec, params, plan)
}
