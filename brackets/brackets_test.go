package brackets_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Dosada05/tournament-draws/brackets"
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
)

func participants(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	return ids
}

func generate(t *testing.T, params brackets.GenerateDrawParams) *models.DrawDefinition {
	t.Helper()
	draw := &models.DrawDefinition{DrawID: "draw-1"}
	ec := engine.New(engine.WithIDGenerator(engine.SequenceIDs("id")))
	if _, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(ec, draw, params); err != nil {
		t.Fatalf("generate %s: %v", params.DrawType, err)
	}
	return draw
}

func roundSizes(s *models.Structure) []int {
	var sizes []int
	for _, r := range s.RoundNumbers() {
		sizes = append(sizes, len(s.RoundMatchUps(r)))
	}
	return sizes
}

func structureNamed(t *testing.T, draw *models.DrawDefinition, name string) *models.Structure {
	t.Helper()
	for _, s := range draw.Structures {
		if s.StructureName == name {
			return s
		}
	}
	t.Fatalf("no structure named %s", name)
	return nil
}

func TestSingleEliminationRounds(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 32})

	if len(draw.Structures) != 1 || len(draw.Links) != 0 {
		t.Fatalf("got %d structures and %d links", len(draw.Structures), len(draw.Links))
	}
	main := draw.Structures[0]
	if got, want := roundSizes(main), []int{16, 8, 4, 2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("round sizes = %v, want %v", got, want)
	}
	if main.Stage != models.StageMain || main.StageSequence != 1 {
		t.Errorf("stage = %s/%d", main.Stage, main.StageSequence)
	}
	final := main.RoundMatchUps(5)[0]
	if final.FinishingRound != 1 || !reflect.DeepEqual(final.FinishingPositionRange.Loser, []int{2, 2}) {
		t.Errorf("final finishing = %d %+v", final.FinishingRound, final.FinishingPositionRange)
	}
	if draw.DrawType != models.DrawTypeSingleElimination || draw.DrawSize != 32 {
		t.Errorf("draw not updated: %s %d", draw.DrawType, draw.DrawSize)
	}
}

func TestSingleEliminationByes(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeSingleElimination,
		DrawSize:       6,
		ParticipantIDs: participants(6),
	})
	main := draw.Structures[0]

	var byes []int
	for _, a := range main.AllAssignments() {
		if a.Bye {
			byes = append(byes, a.DrawPosition)
		}
	}
	if !reflect.DeepEqual(byes, []int{2, 7}) {
		t.Fatalf("byes = %v, want [2 7]", byes)
	}

	first := main.RoundMatchUps(1)
	if first[0].MatchUpStatus != models.MatchUpStatusBye || first[3].MatchUpStatus != models.MatchUpStatusBye {
		t.Errorf("expected bye matchUps at 1 and 4, got %s and %s", first[0].MatchUpStatus, first[3].MatchUpStatus)
	}
	second := main.RoundMatchUps(2)
	if !reflect.DeepEqual(second[0].DrawPositions, []int{1, 0}) || !reflect.DeepEqual(second[1].DrawPositions, []int{0, 8}) {
		t.Errorf("second round positions = %v %v", second[0].DrawPositions, second[1].DrawPositions)
	}
	if got := second[0].ParticipantIDs(); got[0] != "p1" {
		t.Errorf("advanced participant = %q, want p1", got[0])
	}
	if got := main.Assignment(8).ParticipantID; got != "p6" {
		t.Errorf("position 8 = %q, want p6", got)
	}
}

func TestCompassStructures(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeCompass, DrawSize: 32})

	bySequence := make(map[int][]string)
	for _, s := range draw.Structures {
		bySequence[s.StageSequence] = append(bySequence[s.StageSequence], s.StructureName)
	}
	want := map[int][]string{
		1: {"East"},
		2: {"West", "North", "Northeast"},
		3: {"South", "Southwest", "Northwest"},
		4: {"Southeast"},
	}
	if !reflect.DeepEqual(bySequence, want) {
		t.Errorf("structures by stage sequence = %v, want %v", bySequence, want)
	}
	if len(draw.Links) != 7 {
		t.Errorf("links = %d, want 7", len(draw.Links))
	}
	if got := structureNamed(t, draw, "Southeast").FinishingPositionOffset; got != 28 {
		t.Errorf("Southeast offset = %d, want 28", got)
	}
	for _, l := range draw.Links {
		if l.LinkType != models.LinkTypeLoser || l.Target.FeedProfile != models.FeedProfileTopDown {
			t.Errorf("unexpected link %+v", l)
		}
	}
}

func TestOlympicStructures(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeOlympic, DrawSize: 16})

	var names []string
	for _, s := range draw.Structures {
		names = append(names, s.StructureName)
	}
	if want := []string{"East", "West", "North", "South"}; !reflect.DeepEqual(names, want) {
		t.Errorf("structures = %v, want %v", names, want)
	}
}

func TestDoubleEliminationLinks(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeDoubleElimination, DrawSize: 8})

	main := structureNamed(t, draw, "Main")
	backdraw := structureNamed(t, draw, "Backdraw")
	decider := structureNamed(t, draw, "Decider")

	if got := roundSizes(main); !reflect.DeepEqual(got, []int{4, 2, 1, 1}) {
		t.Errorf("main rounds = %v", got)
	}
	if got := roundSizes(backdraw); !reflect.DeepEqual(got, []int{2, 2, 1, 1}) {
		t.Errorf("backdraw rounds = %v", got)
	}
	if decider.Stage != models.StageMain || decider.StageSequence != 2 {
		t.Errorf("decider stage = %s/%d", decider.Stage, decider.StageSequence)
	}

	var toDecider []models.LinkType
	for _, l := range draw.Links {
		if l.Target.StructureID != decider.StructureID {
			continue
		}
		if l.Source.StructureID != main.StructureID || l.Source.RoundNumber != main.RoundsCount() {
			t.Errorf("decider link source = %+v", l.Source)
		}
		toDecider = append(toDecider, l.LinkType)
	}
	if !reflect.DeepEqual(toDecider, []models.LinkType{models.LinkTypeWinner, models.LinkTypeLoser}) {
		t.Errorf("decider links = %v", toDecider)
	}

	profiles := make(map[int]models.FeedProfile)
	for _, l := range draw.Links {
		if l.Source.StructureID == main.StructureID && l.Target.StructureID == backdraw.StructureID {
			profiles[l.Source.RoundNumber] = l.Target.FeedProfile
		}
	}
	want := map[int]models.FeedProfile{1: models.FeedProfileTopDown, 2: models.FeedProfileBottomUp, 3: models.FeedProfileTopDown}
	if !reflect.DeepEqual(profiles, want) {
		t.Errorf("backdraw feed profiles = %v", profiles)
	}
}

// playOut decides every matchUp with two participants, side winningSide
// winning, until no matchUp is left to play. It returns the number played.
func playOut(t *testing.T, draw *models.DrawDefinition, winningSide int) int {
	t.Helper()
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		t.Fatal(err)
	}
	played := 0
	for progressed := true; progressed; {
		progressed = false
		for _, m := range idx.MatchUps() {
			ids := m.ParticipantIDs()
			if m.WinningSide != 0 || ids[0] == "" || ids[1] == "" {
				continue
			}
			complete(m, winningSide)
			if _, err := brackets.DirectParticipants(idx, m); err != nil {
				t.Fatalf("direct %s: %v", m.MatchUpID, err)
			}
			played++
			progressed = true
		}
	}
	return played
}

func TestDoubleEliminationPlaysIntoDecider(t *testing.T) {
	for _, size := range []int{8, 6} {
		for _, side := range []int{1, 2} {
			t.Run(fmt.Sprintf("size %d side %d", size, side), func(t *testing.T) {
				draw := generate(t, brackets.GenerateDrawParams{
					DrawType:       models.DrawTypeDoubleElimination,
					DrawSize:       size,
					ParticipantIDs: participants(size),
				})
				main := structureNamed(t, draw, "Main")
				backdraw := structureNamed(t, draw, "Backdraw")
				decider := structureNamed(t, draw, "Decider")

				played := playOut(t, draw, side)
				if played == 0 {
					t.Fatal("nothing played")
				}

				extra := main.RoundMatchUps(main.RoundsCount())[0]
				backFinal := backdraw.RoundMatchUps(backdraw.RoundsCount())[0]
				if backFinal.WinningSide == 0 {
					t.Fatalf("backdraw final not played, sides = %v", backFinal.ParticipantIDs())
				}
				backWinner := backFinal.ParticipantIDs()[backFinal.WinningSide-1]
				if ids := extra.ParticipantIDs(); ids[0] != backWinner && ids[1] != backWinner {
					t.Errorf("extra final sides = %v, want backdraw winner %s", ids, backWinner)
				}

				final := decider.MatchUps[0]
				ids := final.ParticipantIDs()
				if ids[0] == "" || ids[1] == "" {
					t.Fatalf("decider sides = %v", ids)
				}
				extraIDs := extra.ParticipantIDs()
				got := map[string]bool{ids[0]: true, ids[1]: true}
				if !got[extraIDs[0]] || !got[extraIDs[1]] {
					t.Errorf("decider sides = %v, want %v", ids, extraIDs)
				}
				if final.WinningSide == 0 {
					t.Error("decider was not played")
				}
			})
		}
	}
}

func TestDoubleEliminationLinksMissingStructure(t *testing.T) {
	main := &models.Structure{StructureID: "m"}
	_, err := brackets.DoubleEliminationLinks(main, &models.Structure{}, nil)
	if !errors.Is(err, models.ErrMissingStructureID) {
		t.Errorf("err = %v, want MISSING_STRUCTURE_ID", err)
	}
}

func TestFeedInChampionshipVariants(t *testing.T) {
	tests := []struct {
		drawType    models.DrawType
		rounds      []int
		loserLinks  int
		finalIsFed  bool
		consolation string
	}{
		{models.DrawTypeFeedInChampionship, []int{4, 4, 2, 2, 1, 1}, 4, true, "Consolation"},
		{models.DrawTypeFeedInChampionshipToSF, []int{4, 4, 2, 2, 1}, 3, false, "Consolation"},
		{models.DrawTypeFeedInChampionshipToQF, []int{4, 4, 2, 1}, 2, false, "Consolation"},
		{models.DrawTypeFeedInChampionshipToR16, []int{4, 2, 1}, 1, false, "Consolation"},
	}
	for _, tt := range tests {
		t.Run(string(tt.drawType), func(t *testing.T) {
			draw := generate(t, brackets.GenerateDrawParams{DrawType: tt.drawType, DrawSize: 16})
			consolation := structureNamed(t, draw, tt.consolation)
			if got := roundSizes(consolation); !reflect.DeepEqual(got, tt.rounds) {
				t.Errorf("consolation rounds = %v, want %v", got, tt.rounds)
			}
			if len(draw.Links) != tt.loserLinks {
				t.Errorf("links = %d, want %d", len(draw.Links), tt.loserLinks)
			}
			if draw.Links[0].Target.FeedProfile != models.FeedProfileTopDown {
				t.Errorf("first round feed = %s", draw.Links[0].Target.FeedProfile)
			}
			for _, l := range draw.Links[1:] {
				if l.Target.FeedProfile != models.FeedProfileBottomUp {
					t.Errorf("fed round %d profile = %s", l.Target.RoundNumber, l.Target.FeedProfile)
				}
			}
		})
	}
}

func TestConsolationNeedsFourPositions(t *testing.T) {
	draw := &models.DrawDefinition{DrawID: "d"}
	_, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(nil, draw, brackets.GenerateDrawParams{
		DrawType: models.DrawTypeFirstRoundLoserConsolation,
		DrawSize: 2,
	})
	if !errors.Is(err, models.ErrInvalidDrawSize) {
		t.Errorf("err = %v, want INVALID_DRAW_SIZE", err)
	}
	if len(draw.Structures) != 0 {
		t.Error("draw modified on failure")
	}
}

func TestFirstRoundLoserConsolation(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeFirstRoundLoserConsolation, DrawSize: 8})
	consolation := structureNamed(t, draw, "Consolation")
	if got := roundSizes(consolation); !reflect.DeepEqual(got, []int{2, 1}) {
		t.Errorf("consolation rounds = %v", got)
	}
	if consolation.FinishingPositionOffset != 4 {
		t.Errorf("offset = %d, want 4", consolation.FinishingPositionOffset)
	}
	if len(draw.Links) != 1 || draw.Links[0].Source.RoundNumber != 1 {
		t.Errorf("links = %+v", draw.Links)
	}
}

func TestRoundRobinGroups(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeRoundRobin,
		DrawSize:       8,
		ParticipantIDs: participants(8),
	})
	container := draw.Structures[0]
	if !container.IsContainer() || len(container.Structures) != 2 {
		t.Fatalf("container = %+v", container)
	}
	for _, group := range container.Structures {
		if got := roundSizes(group); !reflect.DeepEqual(got, []int{2, 2, 2}) {
			t.Errorf("%s rounds = %v", group.StructureName, got)
		}
		met := make(map[[2]string]bool)
		for _, m := range group.MatchUps {
			ids := m.ParticipantIDs()
			if ids[0] == "" || ids[1] == "" || ids[0] == ids[1] {
				t.Fatalf("bad pairing %v", ids)
			}
			if ids[0] > ids[1] {
				ids[0], ids[1] = ids[1], ids[0]
			}
			if met[ids] {
				t.Errorf("%v meet twice", ids)
			}
			met[ids] = true
		}
	}
}

func TestRoundRobinWithPlayoff(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeRoundRobinWithPlayoff,
		DrawSize:       8,
		ParticipantIDs: participants(8),
	})
	if len(draw.Structures) != 2 || len(draw.Links) != 1 {
		t.Fatalf("got %d structures, %d links", len(draw.Structures), len(draw.Links))
	}
	container, playoff := draw.Structures[0], draw.Structures[1]
	if playoff.Stage != models.StagePlayOff || draw.Links[0].LinkType != models.LinkTypeDraw {
		t.Errorf("playoff = %s, link = %s", playoff.Stage, draw.Links[0].LinkType)
	}

	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		t.Fatal(err)
	}
	finishers := map[string][]string{
		container.Structures[0].StructureID: {"p1"},
		container.Structures[1].StructureID: {"p5"},
	}
	modified, err := brackets.DirectGroupFinishers(idx, container, finishers)
	if err != nil {
		t.Fatal(err)
	}
	if len(modified) != 1 {
		t.Fatalf("modified = %d, want 1", len(modified))
	}
	if got := playoff.MatchUps[0].ParticipantIDs(); got != [2]string{"p1", "p5"} {
		t.Errorf("playoff sides = %v", got)
	}
	if _, err := brackets.DirectGroupFinishers(idx, container, finishers); err != nil {
		t.Errorf("repeat direct: %v", err)
	}
}

func TestRoundRobinWithPlayoffNeedsTwoGroups(t *testing.T) {
	_, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(nil, &models.DrawDefinition{}, brackets.GenerateDrawParams{
		DrawType: models.DrawTypeRoundRobinWithPlayoff,
		DrawSize: 4,
	})
	if !errors.Is(err, models.ErrInvalidDrawSize) {
		t.Errorf("err = %v, want INVALID_DRAW_SIZE", err)
	}
}

func TestQualifyingStructure(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:           models.DrawTypeSingleElimination,
		DrawSize:           8,
		ParticipantIDs:     participants(6),
		QualifyingDrawSize: 8,
		QualifiersCount:    2,
	})
	if len(draw.Structures) != 2 {
		t.Fatalf("structures = %d", len(draw.Structures))
	}
	qualifying, main := draw.Structures[0], draw.Structures[1]
	if qualifying.Stage != models.StageQualifying || qualifying.RoundLimit != 2 {
		t.Errorf("qualifying stage %s limit %d", qualifying.Stage, qualifying.RoundLimit)
	}
	if got := roundSizes(qualifying); !reflect.DeepEqual(got, []int{4, 2}) {
		t.Errorf("qualifying rounds = %v", got)
	}
	var qualifiers []int
	for _, a := range main.AllAssignments() {
		if a.Qualifier {
			qualifiers = append(qualifiers, a.DrawPosition)
		}
	}
	if !reflect.DeepEqual(qualifiers, []int{4, 5}) {
		t.Errorf("qualifier positions = %v", qualifiers)
	}
	link := draw.Links[0]
	if link.LinkType != models.LinkTypeWinner || link.Source.RoundNumber != 2 || link.Target.FeedProfile != models.FeedProfileDraw {
		t.Errorf("qualifying link = %+v", link)
	}
}

func TestQualifyingValidation(t *testing.T) {
	tests := []struct {
		name   string
		params brackets.GenerateDrawParams
	}{
		{"qualifiers not a power of two split", brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 8, QualifyingDrawSize: 8, QualifiersCount: 3}},
		{"qualifiers exceed draw", brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4, QualifyingDrawSize: 16, QualifiersCount: 4}},
		{"round robin qualifying", brackets.GenerateDrawParams{DrawType: models.DrawTypeRoundRobin, DrawSize: 8, QualifyingDrawSize: 8, QualifiersCount: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(nil, &models.DrawDefinition{}, tt.params)
			if !errors.Is(err, models.ErrInvalidValues) {
				t.Errorf("err = %v, want INVALID_VALUES", err)
			}
		})
	}
}

func TestGenerateQualifyingLink(t *testing.T) {
	if _, err := brackets.GenerateQualifyingLink(brackets.QualifyingLinkParams{MainStructureID: "main", QualifyingRoundNumber: 2}); !errors.Is(err, models.ErrMissingStructureID) {
		t.Errorf("err = %v, want MISSING_STRUCTURE_ID", err)
	}
	link, err := brackets.GenerateQualifyingLink(brackets.QualifyingLinkParams{
		QualifyingStructureID: "q",
		MainStructureID:       "main",
		QualifyingRoundNumber: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &models.Link{
		LinkType: models.LinkTypeWinner,
		Source:   models.LinkSource{StructureID: "q", RoundNumber: 2},
		Target:   models.LinkTarget{StructureID: "main", RoundNumber: 1, FeedProfile: models.FeedProfileDraw},
	}
	if !reflect.DeepEqual(link, want) {
		t.Errorf("link = %+v, want %+v", link, want)
	}
}

func TestGenerateDrawErrors(t *testing.T) {
	existing := &models.DrawDefinition{Structures: []*models.Structure{{StructureID: "s"}}}
	tests := []struct {
		name   string
		draw   *models.DrawDefinition
		params brackets.GenerateDrawParams
		want   error
	}{
		{"nil draw", nil, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4}, models.ErrMissingDrawDefinition},
		{"already generated", existing, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4}, models.ErrInvalidGenerationState},
		{"unknown type", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: "SWISS", DrawSize: 4}, models.ErrInvalidDrawType},
		{"too small", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 1}, models.ErrInvalidDrawSize},
		{"too many participants", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4, ParticipantIDs: participants(5)}, models.ErrInvalidValues},
		{"participants onto qualifier positions", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeDoubleElimination, DrawSize: 8, QualifyingDrawSize: 4, QualifiersCount: 2, ParticipantIDs: participants(7)}, models.ErrInvalidValues},
		{"participants beyond double elimination size", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeDoubleElimination, DrawSize: 8, ParticipantIDs: participants(9)}, models.ErrInvalidValues},
		{"duplicate participants", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4, ParticipantIDs: []string{"a", "a"}}, models.ErrInvalidValues},
		{"bad format", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4, MatchUpFormat: "SET3-X"}, models.ErrUnrecognizedFormat},
		{"bad group size", &models.DrawDefinition{}, brackets.GenerateDrawParams{DrawType: models.DrawTypeRoundRobin, DrawSize: 8, GroupSize: 2}, models.ErrInvalidValues},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(nil, tt.draw, tt.params)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEveryDrawTypeVerifies(t *testing.T) {
	for _, drawType := range models.DrawTypes {
		t.Run(string(drawType), func(t *testing.T) {
			g, err := brackets.GeneratorFor(drawType)
			if err != nil {
				t.Fatal(err)
			}
			if g.GetName() == "" {
				t.Error("empty generator name")
			}
			draw := generate(t, brackets.GenerateDrawParams{DrawType: drawType, DrawSize: 12, ParticipantIDs: participants(12)})
			if err := brackets.VerifyLinks(draw); err != nil {
				t.Errorf("verify: %v", err)
			}
		})
	}
}

func TestVerifyLinks(t *testing.T) {
	base := func() *models.DrawDefinition {
		return generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeFirstRoundLoserConsolation, DrawSize: 8})
	}

	t.Run("unknown target", func(t *testing.T) {
		draw := base()
		draw.Links[0].Target.StructureID = "nowhere"
		if err := brackets.VerifyLinks(draw); !errors.Is(err, models.ErrStructureNotFound) {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("missing round", func(t *testing.T) {
		draw := base()
		draw.Links[0].Source.RoundNumber = 9
		if err := brackets.VerifyLinks(draw); !errors.Is(err, models.ErrInvalidLink) {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("more positions than outcomes", func(t *testing.T) {
		draw := base()
		draw.Links[0].Source.RoundNumber = 2
		if err := brackets.VerifyLinks(draw); !errors.Is(err, models.ErrInvalidLink) {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("unlinked structure", func(t *testing.T) {
		draw := base()
		draw.Links = nil
		if err := brackets.VerifyLinks(draw); !errors.Is(err, models.ErrInvalidLink) {
			t.Errorf("err = %v", err)
		}
	})
	t.Run("bad feed profile", func(t *testing.T) {
		draw := base()
		draw.Links[0].Target.FeedProfile = "SIDEWAYS"
		if err := brackets.VerifyLinks(draw); !errors.Is(err, models.ErrInvalidLink) {
			t.Errorf("err = %v", err)
		}
	})
}

func complete(m *models.MatchUp, winningSide int) {
	m.WinningSide = winningSide
	m.MatchUpStatus = models.MatchUpStatusCompleted
}

func TestDirectParticipants(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeFirstRoundLoserConsolation,
		DrawSize:       4,
		ParticipantIDs: participants(4),
	})
	main := structureNamed(t, draw, "Main")
	consolation := structureNamed(t, draw, "Consolation")
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		t.Fatal(err)
	}

	first := main.RoundMatchUps(1)[0]
	complete(first, 1)
	modified, err := brackets.DirectParticipants(idx, first)
	if err != nil {
		t.Fatal(err)
	}
	if len(modified) != 2 {
		t.Fatalf("modified = %d, want 2", len(modified))
	}

	final := main.RoundMatchUps(2)[0]
	if !reflect.DeepEqual(final.DrawPositions, []int{1, 0}) {
		t.Errorf("final positions = %v", final.DrawPositions)
	}
	if got := final.ParticipantIDs(); got[0] != "p1" {
		t.Errorf("final side 1 = %q", got[0])
	}
	if got := consolation.MatchUps[0].ParticipantIDs(); got[0] != "p2" || got[1] != "" {
		t.Errorf("consolation sides = %v", got)
	}

	second := main.RoundMatchUps(1)[1]
	complete(second, 2)
	if _, err := brackets.DirectParticipants(idx, second); err != nil {
		t.Fatal(err)
	}
	if got := final.ParticipantIDs(); got != [2]string{"p1", "p4"} {
		t.Errorf("final sides = %v", got)
	}
	if got := consolation.MatchUps[0].ParticipantIDs(); got != [2]string{"p2", "p3"} {
		t.Errorf("consolation sides = %v", got)
	}
}

func TestDirectParticipantsRequiresWinner(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4})
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		t.Fatal(err)
	}
	_, err = brackets.DirectParticipants(idx, draw.Structures[0].MatchUps[0])
	if !errors.Is(err, models.ErrInvalidSideNumber) {
		t.Errorf("err = %v, want INVALID_SIDE_NUMBER", err)
	}
}

func TestAdHocMatchUps(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeAdHoc,
		DrawSize:       4,
		ParticipantIDs: participants(4),
	})
	ec := engine.New(engine.WithIDGenerator(engine.SequenceIDs("adhoc")))

	created, err := brackets.GenerateAdHocMatchUps(ec, draw, "", brackets.AdHocMatchUpsParams{
		Pairings: [][2]string{{"p1", "p2"}, {"p3", "p4"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 2 || created[0].RoundNumber != 1 || len(created[0].DrawPositions) != 0 {
		t.Fatalf("created = %+v", created)
	}
	if got := created[1].ParticipantIDs(); got != [2]string{"p3", "p4"} {
		t.Errorf("sides = %v", got)
	}

	next, err := brackets.GenerateAdHocMatchUps(ec, draw, "", brackets.AdHocMatchUpsParams{MatchUpsCount: 1})
	if err != nil {
		t.Fatal(err)
	}
	if next[0].RoundNumber != 2 {
		t.Errorf("round = %d, want 2", next[0].RoundNumber)
	}

	bad := []brackets.AdHocMatchUpsParams{
		{Pairings: [][2]string{{"p1", "p2"}, {"p2", "p3"}}},
		{Pairings: [][2]string{{"p1", "p1"}}},
		{Pairings: [][2]string{{"p1", "stranger"}}},
		{},
	}
	for _, params := range bad {
		if _, err := brackets.GenerateAdHocMatchUps(ec, draw, "", params); !errors.Is(err, models.ErrInvalidValues) {
			t.Errorf("%+v: err = %v, want INVALID_VALUES", params, err)
		}
	}
}

func TestAdHocMatchUpsRequireAdHocDraw(t *testing.T) {
	draw := generate(t, brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4})
	_, err := brackets.GenerateAdHocMatchUps(nil, draw, "", brackets.AdHocMatchUpsParams{MatchUpsCount: 1})
	if !errors.Is(err, models.ErrInvalidDrawType) {
		t.Errorf("err = %v, want INVALID_DRAW_TYPE", err)
	}
}
