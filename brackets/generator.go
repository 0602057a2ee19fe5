package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
)

const (
	maxDrawSize      = 1024
	defaultGroupSize = 4
	minGroupSize     = 3
	maxGroupSize     = 8
)

type GenerateDrawParams struct {
	DrawName      string          `json:"drawName,omitempty"`
	DrawType      models.DrawType `json:"drawType"`
	DrawSize      int             `json:"drawSize"`
	MatchUpFormat string          `json:"matchUpFormat,omitempty"`
	// ParticipantIDs are assigned in order to the free main positions.
	ParticipantIDs     []string `json:"participantIds,omitempty"`
	GroupSize          int      `json:"groupSize,omitempty"`
	QualifyingDrawSize int      `json:"qualifyingDrawSize,omitempty"`
	QualifiersCount    int      `json:"qualifiersCount,omitempty"`
}

type GeneratedDraw struct {
	Structures []*models.Structure `json:"structures"`
	Links      []*models.Link      `json:"links"`
}

// DrawGenerator produces the structures and links of one draw type.
type DrawGenerator interface {
	Generate(ec *engine.Context, params GenerateDrawParams) (*GeneratedDraw, error)

	GetName() string
}

var generators = map[models.DrawType]DrawGenerator{
	models.DrawTypeSingleElimination:          NewSingleEliminationGenerator(),
	models.DrawTypeDoubleElimination:          NewDoubleEliminationGenerator(),
	models.DrawTypeRoundRobin:                 NewRoundRobinGenerator(false),
	models.DrawTypeRoundRobinWithPlayoff:      NewRoundRobinGenerator(true),
	models.DrawTypeCompass:                    NewCompassGenerator(compassDirections),
	models.DrawTypeOlympic:                    NewCompassGenerator(olympicDirections),
	models.DrawTypeFeedInChampionship:         NewFeedInChampionshipGenerator(0),
	models.DrawTypeFeedInChampionshipToSF:     NewFeedInChampionshipGenerator(1),
	models.DrawTypeFeedInChampionshipToQF:     NewFeedInChampionshipGenerator(2),
	models.DrawTypeFeedInChampionshipToR16:    NewFeedInChampionshipGenerator(3),
	models.DrawTypeFirstRoundLoserConsolation: NewFirstRoundLoserConsolationGenerator(),
	models.DrawTypeAdHoc:                      NewAdHocGenerator(),
}

func GeneratorFor(drawType models.DrawType) (DrawGenerator, error) {
	g, ok := generators[drawType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidDrawType, drawType)
	}
	return g, nil
}

func validateParams(params GenerateDrawParams) error {
	if !params.DrawType.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidDrawType, params.DrawType)
	}
	minSize := 2
	if params.DrawType == models.DrawTypeAdHoc {
		minSize = 0
	}
	if params.DrawSize < minSize || params.DrawSize > maxDrawSize {
		return fmt.Errorf("%w: %d", models.ErrInvalidDrawSize, params.DrawSize)
	}
	if len(params.ParticipantIDs) > 0 {
		seen := make(map[string]bool, len(params.ParticipantIDs))
		for _, id := range params.ParticipantIDs {
			if id == "" || seen[id] {
				return fmt.Errorf("%w: participant ids must be unique and non-empty", models.ErrInvalidValues)
			}
			seen[id] = true
		}
		if params.DrawType != models.DrawTypeAdHoc && len(params.ParticipantIDs) > params.DrawSize {
			return fmt.Errorf("%w: %d participants for draw size %d", models.ErrInvalidValues, len(params.ParticipantIDs), params.DrawSize)
		}
	}
	if params.MatchUpFormat != "" {
		if _, err := matchupformat.ParseValid(params.MatchUpFormat); err != nil {
			return err
		}
	}
	if params.QualifyingDrawSize > 0 || params.QualifiersCount > 0 {
		switch params.DrawType {
		case models.DrawTypeAdHoc, models.DrawTypeRoundRobin, models.DrawTypeRoundRobinWithPlayoff:
			return fmt.Errorf("%w: qualifying is not supported for %s", models.ErrInvalidValues, params.DrawType)
		}
		q, k := params.QualifyingDrawSize, params.QualifiersCount
		if q < 2 || q > maxDrawSize || k < 1 || k >= q || k >= params.DrawSize {
			return fmt.Errorf("%w: qualifying draw size %d with %d qualifiers", models.ErrInvalidValues, q, k)
		}
		if size := nextPowerOfTwo(q); size%k != 0 || !isPowerOfTwo(size/k) {
			return fmt.Errorf("%w: %d qualifiers cannot come out of a qualifying draw of %d", models.ErrInvalidValues, k, q)
		}
	}
	return nil
}

// GenerateDrawTypeAndModifyDrawDefinition generates the structures and links
// for params and appends them to draw. Validation happens before draw is touched.
func GenerateDrawTypeAndModifyDrawDefinition(ec *engine.Context, draw *models.DrawDefinition, params GenerateDrawParams) (*GeneratedDraw, error) {
	if draw == nil {
		return nil, models.ErrMissingDrawDefinition
	}
	if len(draw.Structures) > 0 {
		return nil, fmt.Errorf("%w: draw %s already has structures", models.ErrInvalidGenerationState, draw.DrawID)
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}
	g, err := GeneratorFor(params.DrawType)
	if err != nil {
		return nil, err
	}
	generated, err := g.Generate(ec, params)
	if err != nil {
		return nil, err
	}

	draw.DrawType = params.DrawType
	draw.DrawSize = params.DrawSize
	if params.DrawName != "" {
		draw.DrawName = params.DrawName
	}
	if params.MatchUpFormat != "" {
		draw.MatchUpFormat = params.MatchUpFormat
	}
	draw.Structures = append(draw.Structures, generated.Structures...)
	draw.Links = append(draw.Links, generated.Links...)

	ec.Debug("draw generated",
		"drawId", draw.DrawID,
		"drawType", string(params.DrawType),
		"generator", g.GetName(),
		"structures", len(generated.Structures),
		"links", len(generated.Links))
	return generated, nil
}
