package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

// AdHocGenerator creates a single structure with no matchUps; rounds are
// added later with GenerateAdHocMatchUps.
type AdHocGenerator struct {
}

func NewAdHocGenerator() DrawGenerator {
	return &AdHocGenerator{}
}

func (g *AdHocGenerator) GetName() string {
	return "AdHoc"
}

func (g *AdHocGenerator) Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error) {
	return build(ec, params, &drawPlan{
		specs: []*structureSpec{{
			key:           "main",
			name:          "Main",
			stage:         models.StageMain,
			stageSequence: 1,
			adHoc:         true,
			main:          true,
		}},
		mainKey: "main",
	})
}

type AdHocMatchUpsParams struct {
	// MatchUpsCount is used when no pairings are given.
	MatchUpsCount int         `json:"matchUpsCount,omitempty"`
	Pairings      [][2]string `json:"pairings,omitempty"`
}

// GenerateAdHocMatchUps appends a new round to an ad hoc structure. Each
// pairing becomes a matchUp; without pairings MatchUpsCount empty matchUps
// are created.
func GenerateAdHocMatchUps(ec *engine.Context, draw *models.DrawDefinition, structureID string, params AdHocMatchUpsParams) ([]*models.MatchUp, error) {
	if draw == nil {
		return nil, models.ErrMissingDrawDefinition
	}
	if draw.DrawType != models.DrawTypeAdHoc {
		return nil, fmt.Errorf("%w: %s does not take ad hoc matchUps", models.ErrInvalidDrawType, draw.DrawType)
	}
	if structureID == "" && len(draw.Structures) == 1 {
		structureID = draw.Structures[0].StructureID
	}
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return nil, err
	}
	s, err := idx.Structure(structureID)
	if err != nil {
		return nil, err
	}

	count := params.MatchUpsCount
	if len(params.Pairings) > 0 {
		count = len(params.Pairings)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: no matchUps requested", models.ErrInvalidValues)
	}

	entries := make(map[string]bool)
	for _, a := range s.PositionAssignments {
		if a.ParticipantID != "" {
			entries[a.ParticipantID] = true
		}
	}
	inRound := make(map[string]bool)
	for _, pair := range params.Pairings {
		if pair[0] == "" || pair[1] == "" || pair[0] == pair[1] {
			return nil, fmt.Errorf("%w: invalid pairing %q", models.ErrInvalidValues, pair)
		}
		for _, id := range pair {
			if inRound[id] {
				return nil, fmt.Errorf("%w: %s is paired twice in one round", models.ErrInvalidValues, id)
			}
			if len(entries) > 0 && !entries[id] {
				return nil, fmt.Errorf("%w: %s is not entered in %s", models.ErrInvalidValues, id, s.StructureID)
			}
			inRound[id] = true
		}
	}

	if ec == nil {
		ec = engine.New()
	}
	roundNumber := s.RoundsCount() + 1
	created := make([]*models.MatchUp, 0, count)
	for k := 0; k < count; k++ {
		m := models.NewMatchUp(ec.ID(), roundNumber, k+1)
		m.DrawPositions = []int{}
		m.Sides = []*models.Side{{SideNumber: 1}, {SideNumber: 2}}
		if k < len(params.Pairings) {
			m.Sides[0].ParticipantID = params.Pairings[k][0]
			m.Sides[1].ParticipantID = params.Pairings[k][1]
		}
		created = append(created, m)
	}
	s.MatchUps = append(s.MatchUps, created...)
	ec.Debug("ad hoc matchUps added", "drawId", draw.DrawID, "structureId", s.StructureID, "roundNumber", roundNumber, "count", count)
	return created, nil
}
