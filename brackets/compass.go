package brackets

import (
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

// direction is one structure of a compass draw. Its entrants are the losers
// of sourceRound in the source direction; offset is the finishing position
// offset as eighths of the draw size.
type direction struct {
	name          string
	source        string
	sourceRound   int
	stageSequence int
	offsetEighths int
	sizeDivisor   int
}

var compassDirections = []direction{
	{name: "East", stageSequence: 1, sizeDivisor: 1},
	{name: "West", source: "East", sourceRound: 1, stageSequence: 2, offsetEighths: 4, sizeDivisor: 2},
	{name: "North", source: "East", sourceRound: 2, stageSequence: 2, offsetEighths: 2, sizeDivisor: 4},
	{name: "Northeast", source: "East", sourceRound: 3, stageSequence: 2, offsetEighths: 1, sizeDivisor: 8},
	{name: "South", source: "West", sourceRound: 1, stageSequence: 3, offsetEighths: 6, sizeDivisor: 4},
	{name: "Southwest", source: "West", sourceRound: 2, stageSequence: 3, offsetEighths: 5, sizeDivisor: 8},
	{name: "Northwest", source: "North", sourceRound: 1, stageSequence: 3, offsetEighths: 3, sizeDivisor: 8},
	{name: "Southeast", source: "South", sourceRound: 1, stageSequence: 4, offsetEighths: 7, sizeDivisor: 8},
}

var olympicDirections = pickDirections("East", "West", "North", "South")

func pickDirections(names ...string) []direction {
	var picked []direction
	for _, d := range compassDirections {
		for _, name := range names {
			if d.name == name {
				picked = append(picked, d)
			}
		}
	}
	return picked
}

type CompassGenerator struct {
	directions []direction
}

func NewCompassGenerator(directions []direction) DrawGenerator {
	return &CompassGenerator{directions: directions}
}

func (g *CompassGenerator) GetName() string {
	if len(g.directions) == len(olympicDirections) {
		return "Olympic"
	}
	return "Compass"
}

// Generate builds one structure per direction that is large enough to hold a
// matchUp; directions whose source was skipped are skipped too.
func (g *CompassGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	size := nextPowerOfTwo(params.DrawSize)
	var specs []*structureSpec
	var kept []direction
	present := make(map[string]bool)
	for _, d := range g.directions {
		dsize := size / d.sizeDivisor
		if dsize < 2 || (d.source != "" && !present[d.source]) {
			continue
		}
		spec := &structureSpec{
			key:             d.name,
			name:            d.name,
			stage:           models.StagePlayOff,
			stageSequence:   d.stageSequence,
			rounds:          treeRounds(dsize, 0),
			finishingOffset: size * d.offsetEighths / 8,
		}
		if d.source == "" {
			spec.stage = models.StageMain
			spec.entrants = params.DrawSize
			spec.main = true
		}
		specs = append(specs, spec)
		kept = append(kept, d)
		present[d.name] = true
	}
	return build(ec, params, &drawPlan{
		specs:   specs,
		mainKey: "East",
		links: func(byKey map[string]*models.Structure) ([]*models.Link, error) {
			var links []*models.Link
			for _, d := range kept {
				if d.source == "" {
					continue
				}
				links = append(links, loserLink(byKey[d.source], d.sourceRound, byKey[d.name], 1, models.FeedProfileTopDown))
			}
			return links, nil
		},
	})
}
