package services_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/Dosada05/tournament-draws/brackets"
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/notify"
	"github.com/Dosada05/tournament-draws/repositories"
	"github.com/Dosada05/tournament-draws/scoring"
	"github.com/Dosada05/tournament-draws/services"
	"github.com/Dosada05/tournament-draws/storage"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	draws    services.DrawService
	scores   services.ScoreService
	recorder *notify.Recorder
	archiver *fakeArchiver
}

type fakeArchiver struct {
	archived []string
	fail     map[string]bool
}

func (a *fakeArchiver) Archive(_ context.Context, draw *models.DrawDefinition, takenAt time.Time) (*storage.Snapshot, error) {
	if a.fail[draw.DrawID] {
		return nil, errors.New("upload failed")
	}
	a.archived = append(a.archived, draw.DrawID)
	return &storage.Snapshot{DrawID: draw.DrawID, TakenAt: takenAt}, nil
}

func newFixture(t *testing.T, withArchiver bool) *fixture {
	t.Helper()
	repo := repositories.NewMemoryDrawRepository()
	recorder := &notify.Recorder{}
	ec := engine.New(
		engine.WithIDGenerator(engine.SequenceIDs("id")),
		engine.WithNotifier(recorder),
	)
	locks := services.NewDrawLocks()
	now := func() time.Time { return fixedNow }

	f := &fixture{recorder: recorder}
	cfg := services.DrawServiceConfig{Locks: locks, Now: now}
	if withArchiver {
		f.archiver = &fakeArchiver{}
		cfg.Archiver = f.archiver
	}
	f.draws = services.NewDrawService(repo, ec, nil, cfg)
	f.scores = services.NewScoreService(repo, ec, nil, services.ScoreServiceConfig{Locks: locks, Now: now})
	return f
}

func participants(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}
	return ids
}

func sets(games ...[2]int) []*models.Set {
	out := make([]*models.Set, 0, len(games))
	for i, g := range games {
		out = append(out, &models.Set{
			SetNumber:  i + 1,
			Side1Score: models.Int(g[0]),
			Side2Score: models.Int(g[1]),
		})
	}
	return out
}

func (f *fixture) elimination(t *testing.T, size int) *models.DrawDefinition {
	t.Helper()
	draw, err := f.draws.GenerateDraw(context.Background(), brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeSingleElimination,
		DrawSize:       size,
		ParticipantIDs: participants(size),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return draw
}

func (f *fixture) reload(t *testing.T, drawID string) *models.DrawDefinition {
	t.Helper()
	draw, err := f.draws.GetDraw(context.Background(), drawID)
	if err != nil {
		t.Fatalf("get draw: %v", err)
	}
	return draw
}

func TestGenerateDraw(t *testing.T) {
	f := newFixture(t, false)
	draw := f.elimination(t, 4)

	if draw.DrawID != "id-1" {
		t.Errorf("drawId = %q, want id-1", draw.DrawID)
	}
	if draw.MatchUpFormat != "SET3-S:6/TB7" || !draw.CreatedAt.Equal(fixedNow) {
		t.Errorf("format = %q, createdAt = %v", draw.MatchUpFormat, draw.CreatedAt)
	}
	summaries, err := f.draws.ListDraws(context.Background())
	if err != nil || len(summaries) != 1 || summaries[0].DrawID != draw.DrawID {
		t.Fatalf("list = %+v, %v", summaries, err)
	}
	if got := f.recorder.Topics(); !reflect.DeepEqual(got, []string{engine.TopicAddMatchUps}) {
		t.Errorf("topics = %v", got)
	}
}

func TestGenerateDrawRejectsInvalidParams(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	tests := []struct {
		name   string
		params brackets.GenerateDrawParams
		want   error
	}{
		{"unknown type", brackets.GenerateDrawParams{DrawType: "LADDER", DrawSize: 8}, models.ErrInvalidDrawType},
		{"size too small", brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 1}, models.ErrInvalidDrawSize},
		{"bad format", brackets.GenerateDrawParams{DrawType: models.DrawTypeSingleElimination, DrawSize: 4, MatchUpFormat: "SET4"}, models.ErrUnrecognizedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.draws.GenerateDraw(ctx, tt.params); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if summaries, _ := f.draws.ListDraws(ctx); len(summaries) != 0 {
		t.Errorf("stored %d draws after failures", len(summaries))
	}
}

func TestSetMatchUpScoreAdvancesWinner(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	first := draw.Structures[0].RoundMatchUps(1)[0]

	result, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, first.MatchUpID, services.SetScoreInput{
		Sets: sets([2]int{6, 3}, [2]int{6, 3}),
	})
	if err != nil {
		t.Fatal(err)
	}
	m := result.MatchUp
	if m.MatchUpStatus != models.MatchUpStatusCompleted || m.WinningSide != 1 {
		t.Errorf("status = %s, winningSide = %d", m.MatchUpStatus, m.WinningSide)
	}
	if m.Score.ScoreStringSide1 != "6-3 6-3" || m.Score.ScoreStringSide2 != "3-6 3-6" {
		t.Errorf("score strings = %q / %q", m.Score.ScoreStringSide1, m.Score.ScoreStringSide2)
	}
	if len(result.Modified) != 1 {
		t.Fatalf("modified = %d, want 1", len(result.Modified))
	}

	final := f.reload(t, draw.DrawID).Structures[0].RoundMatchUps(2)[0]
	if got := final.ParticipantIDs(); got[0] != "p1" {
		t.Errorf("final side 1 = %q, want p1", got[0])
	}
	want := []string{engine.TopicAddMatchUps, engine.TopicModifyMatchUp}
	if got := f.recorder.Topics(); !reflect.DeepEqual(got, want) {
		t.Errorf("topics = %v, want %v", got, want)
	}
}

func TestSetMatchUpScoreKeepsWinningSide(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	id := draw.Structures[0].RoundMatchUps(1)[0].MatchUpID

	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{6, 3}, [2]int{6, 3})}); err != nil {
		t.Fatal(err)
	}
	_, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{3, 6}, [2]int{3, 6})})
	if !errors.Is(err, models.ErrCannotChangeWinningSide) {
		t.Fatalf("err = %v, want CANNOT_CHANGE_WINNING_SIDE", err)
	}
	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{6, 4}, [2]int{6, 4})}); err != nil {
		t.Fatalf("correction with the same winner: %v", err)
	}
	history, err := f.scores.GetScoreHistory(ctx, draw.DrawID, id)
	if err != nil || len(history) != 2 {
		t.Fatalf("history = %d entries, %v", len(history), err)
	}
}

func TestSetMatchUpScoreOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		input       services.SetScoreInput
		wantStatus  models.MatchUpStatus
		wantWinner  int
		wantErr     error
		wantString1 string
	}{
		{
			name:        "partial score is in progress",
			input:       services.SetScoreInput{Sets: sets([2]int{6, 3})},
			wantStatus:  models.MatchUpStatusInProgress,
			wantString1: "6-3",
		},
		{
			name:       "no sets stays to be played",
			input:      services.SetScoreInput{},
			wantStatus: models.MatchUpStatusToBePlayed,
		},
		{
			name:        "retirement names the winner",
			input:       services.SetScoreInput{Sets: sets([2]int{6, 3}, [2]int{1, 2}), MatchUpStatus: models.MatchUpStatusRetired, WinningSide: 2},
			wantStatus:  models.MatchUpStatusRetired,
			wantWinner:  2,
			wantString1: "6-3 1-2 RET",
		},
		{
			name:    "retirement without winner",
			input:   services.SetScoreInput{MatchUpStatus: models.MatchUpStatusRetired},
			wantErr: models.ErrInvalidSideNumber,
		},
		{
			name:    "completed without a decided score",
			input:   services.SetScoreInput{Sets: sets([2]int{6, 3}), MatchUpStatus: models.MatchUpStatusCompleted},
			wantErr: models.ErrInvalidValues,
		},
		{
			name:    "winner disagrees with sets",
			input:   services.SetScoreInput{Sets: sets([2]int{6, 3}, [2]int{6, 3}), WinningSide: 2},
			wantErr: models.ErrInvalidSideNumber,
		},
		{
			name:    "unknown status",
			input:   services.SetScoreInput{MatchUpStatus: "POSTPONED"},
			wantErr: models.ErrInvalidValues,
		},
		{
			name:    "set after the matchUp was decided",
			input:   services.SetScoreInput{Sets: sets([2]int{6, 3}, [2]int{6, 3}, [2]int{1, 0})},
			wantErr: models.ErrInvalidValues,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			draw := f.elimination(t, 4)
			id := draw.Structures[0].RoundMatchUps(1)[0].MatchUpID

			result, err := f.scores.SetMatchUpScore(context.Background(), draw.DrawID, id, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			m := result.MatchUp
			if m.MatchUpStatus != tt.wantStatus || m.WinningSide != tt.wantWinner {
				t.Errorf("got %s/%d, want %s/%d", m.MatchUpStatus, m.WinningSide, tt.wantStatus, tt.wantWinner)
			}
			if m.Score.ScoreStringSide1 != tt.wantString1 {
				t.Errorf("score string = %q, want %q", m.Score.ScoreStringSide1, tt.wantString1)
			}
		})
	}
}

func TestSetMatchUpScoreUnknownMatchUp(t *testing.T) {
	f := newFixture(t, false)
	draw := f.elimination(t, 4)
	ctx := context.Background()

	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, "missing", services.SetScoreInput{}); !errors.Is(err, models.ErrMatchUpNotFound) {
		t.Errorf("err = %v, want MATCHUP_NOT_FOUND", err)
	}
	if _, err := f.scores.SetMatchUpScore(ctx, "nope", "missing", services.SetScoreInput{}); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("err = %v, want DRAW_NOT_FOUND", err)
	}
}

func TestScoreHistoryAndUndo(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	id := draw.Structures[0].RoundMatchUps(1)[1].MatchUpID

	if _, err := f.scores.GetScoreHistory(ctx, draw.DrawID, id); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want NOT_FOUND", err)
	}
	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{6, 3})}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{6, 3}, [2]int{2, 1})}); err != nil {
		t.Fatal(err)
	}

	undone, err := f.scores.UndoScore(ctx, draw.DrawID, id)
	if err != nil {
		t.Fatal(err)
	}
	if undone.MatchUp.MatchUpStatus != models.MatchUpStatusInProgress || len(undone.MatchUp.Score.Sets) != 1 {
		t.Errorf("after undo: %s with %d sets", undone.MatchUp.MatchUpStatus, len(undone.MatchUp.Score.Sets))
	}
	if len(undone.MatchUp.ScoreHistory) != 1 {
		t.Errorf("history = %d, want 1", len(undone.MatchUp.ScoreHistory))
	}

	undone, err = f.scores.UndoScore(ctx, draw.DrawID, id)
	if err != nil {
		t.Fatal(err)
	}
	if undone.MatchUp.MatchUpStatus != models.MatchUpStatusToBePlayed || len(undone.MatchUp.Score.Sets) != 0 {
		t.Errorf("after second undo: %s with %d sets", undone.MatchUp.MatchUpStatus, len(undone.MatchUp.Score.Sets))
	}
	if _, err := f.scores.UndoScore(ctx, draw.DrawID, id); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestUndoCannotRemoveWinner(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	id := draw.Structures[0].RoundMatchUps(1)[0].MatchUpID

	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{6, 0}, [2]int{6, 0})}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.scores.UndoScore(ctx, draw.DrawID, id); !errors.Is(err, models.ErrCannotChangeWinningSide) {
		t.Errorf("err = %v, want CANNOT_CHANGE_WINNING_SIDE", err)
	}
}

func TestSetSetValue(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	id := draw.Structures[0].RoundMatchUps(1)[0].MatchUpID

	steps := []struct {
		field scoring.SetField
		value *int
		want  scoring.Outcome
	}{
		{scoring.FieldSide1Score, models.Int(7), scoring.OutcomeInProgress},
		{scoring.FieldSide2Score, models.Int(6), scoring.OutcomePendingTiebreak},
		{scoring.FieldSide1TiebreakScore, models.Int(7), scoring.OutcomePendingTiebreak},
		{scoring.FieldSide2TiebreakScore, models.Int(5), scoring.OutcomeComplete},
		{scoring.FieldSide2Score, models.Int(5), scoring.OutcomeRepaired},
	}
	var last *services.SetValueResult
	for i, step := range steps {
		res, err := f.scores.SetSetValue(ctx, draw.DrawID, id, services.SetValueInput{SetNumber: 1, Field: step.field, Value: step.value})
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if res.Submission.Outcome != step.want {
			t.Errorf("step %d: outcome = %s, want %s", i, res.Submission.Outcome, step.want)
		}
		last = res
	}
	if last.MatchUp.Score.ScoreStringSide1 != "7-5" || last.MatchUp.MatchUpStatus != models.MatchUpStatusInProgress {
		t.Errorf("matchUp = %s %q", last.MatchUp.MatchUpStatus, last.MatchUp.Score.ScoreStringSide1)
	}

	_, err := f.scores.SetSetValue(ctx, draw.DrawID, id, services.SetValueInput{SetNumber: 4, Field: scoring.FieldSide1Score, Value: models.Int(6)})
	if !errors.Is(err, models.ErrInvalidSetNumber) {
		t.Errorf("err = %v, want INVALID_SET_NUMBER", err)
	}
}

func TestGetScoreString(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)
	id := draw.Structures[0].RoundMatchUps(1)[0].MatchUpID

	if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, id, services.SetScoreInput{Sets: sets([2]int{3, 6}, [2]int{4, 6})}); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		opts services.ScoreStringOptions
		want string
	}{
		{services.ScoreStringOptions{}, "3-6 4-6"},
		{services.ScoreStringOptions{Reversed: true}, "6-3 6-4"},
		{services.ScoreStringOptions{WinnerFirst: true}, "6-3 6-4"},
		{services.ScoreStringOptions{Reversed: true, WinnerFirst: true}, "3-6 4-6"},
	}
	for _, tt := range tests {
		got, err := f.scores.GetScoreString(ctx, draw.DrawID, id, tt.opts)
		if err != nil {
			t.Fatal(err)
		}
		if got.ScoreString != tt.want {
			t.Errorf("%+v: %q, want %q", tt.opts, got.ScoreString, tt.want)
		}
	}
}

func TestRoundRobinGroupCompletionFeedsPlayoff(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw, err := f.draws.GenerateDraw(ctx, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeRoundRobinWithPlayoff,
		DrawSize:       8,
		ParticipantIDs: participants(8),
	})
	if err != nil {
		t.Fatal(err)
	}
	container, playoff := draw.Structures[0], draw.Structures[1]
	group := container.Structures[0]

	for _, m := range group.MatchUps {
		if _, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, m.MatchUpID, services.SetScoreInput{Sets: sets([2]int{6, 0}, [2]int{6, 0})}); err != nil {
			t.Fatalf("score %s: %v", m.MatchUpID, err)
		}
	}

	tally, err := f.scores.GetStructureTally(ctx, draw.DrawID, container.StructureID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tally.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(tally.Groups))
	}
	first := tally.Groups[0]
	if !first.Complete || first.Counted != len(group.MatchUps) || tally.Groups[1].Complete {
		t.Errorf("group state = %+v / %+v", first, tally.Groups[1])
	}
	if len(first.Tallies) != 4 || first.Tallies[0].GroupOrder != 1 {
		t.Fatalf("tallies = %+v", first.Tallies)
	}

	stored := f.reload(t, draw.DrawID)
	var final *models.MatchUp
	for _, s := range stored.Structures {
		if s.StructureID == playoff.StructureID {
			final = s.MatchUps[0]
		}
	}
	ids := final.ParticipantIDs()
	if ids[0] != first.Tallies[0].ParticipantID && ids[1] != first.Tallies[0].ParticipantID {
		t.Errorf("playoff sides = %v, want group winner %s", ids, first.Tallies[0].ParticipantID)
	}
}

func TestGetStructureTallyUnknownStructure(t *testing.T) {
	f := newFixture(t, false)
	draw := f.elimination(t, 4)
	if _, err := f.scores.GetStructureTally(context.Background(), draw.DrawID, "missing"); !errors.Is(err, models.ErrStructureNotFound) {
		t.Errorf("err = %v, want STRUCTURE_NOT_FOUND", err)
	}
}

func TestAddAdHocMatchUps(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw, err := f.draws.GenerateDraw(ctx, brackets.GenerateDrawParams{
		DrawType:       models.DrawTypeAdHoc,
		DrawSize:       4,
		ParticipantIDs: participants(4),
	})
	if err != nil {
		t.Fatal(err)
	}

	created, err := f.draws.AddAdHocMatchUps(ctx, draw.DrawID, "", brackets.AdHocMatchUpsParams{
		Pairings: [][2]string{{"p1", "p4"}, {"p2", "p3"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d", len(created))
	}
	if got := len(f.reload(t, draw.DrawID).Structures[0].MatchUps); got != 2 {
		t.Errorf("stored matchUps = %d, want 2", got)
	}

	result, err := f.scores.SetMatchUpScore(ctx, draw.DrawID, created[0].MatchUpID, services.SetScoreInput{Sets: sets([2]int{6, 1}, [2]int{6, 2})})
	if err != nil {
		t.Fatal(err)
	}
	if result.MatchUp.WinningSide != 1 || len(result.Modified) != 0 {
		t.Errorf("winningSide = %d, modified = %d", result.MatchUp.WinningSide, len(result.Modified))
	}

	se := f.elimination(t, 4)
	if _, err := f.draws.AddAdHocMatchUps(ctx, se.DrawID, "", brackets.AdHocMatchUpsParams{MatchUpsCount: 1}); !errors.Is(err, models.ErrInvalidDrawType) {
		t.Errorf("err = %v, want INVALID_DRAW_TYPE", err)
	}
}

func TestAddQualifyingLink(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw, err := f.draws.GenerateDraw(ctx, brackets.GenerateDrawParams{
		DrawType:           models.DrawTypeSingleElimination,
		DrawSize:           8,
		QualifyingDrawSize: 8,
		QualifiersCount:    2,
	})
	if err != nil {
		t.Fatal(err)
	}
	var qualifying, main *models.Structure
	for _, s := range draw.Structures {
		switch s.Stage {
		case models.StageQualifying:
			qualifying = s
		case models.StageMain:
			main = s
		}
	}
	luckyLosers := brackets.QualifyingLinkParams{
		QualifyingStructureID: qualifying.StructureID,
		MainStructureID:       main.StructureID,
		QualifyingRoundNumber: qualifying.RoundsCount(),
		LinkType:              models.LinkTypeLoser,
	}

	link, err := f.draws.AddQualifyingLink(ctx, draw.DrawID, luckyLosers)
	if err != nil {
		t.Fatal(err)
	}
	if link.LinkType != models.LinkTypeLoser || link.Target.FeedProfile != models.FeedProfileDraw {
		t.Errorf("link = %+v", link)
	}
	if got := len(f.reload(t, draw.DrawID).Links); got != 2 {
		t.Errorf("links = %d, want 2", got)
	}

	tests := []struct {
		name   string
		params brackets.QualifyingLinkParams
		want   error
	}{
		{"duplicate", luckyLosers, models.ErrInvalidLink},
		{"missing structure id", brackets.QualifyingLinkParams{QualifyingRoundNumber: 1}, models.ErrMissingStructureID},
		{"unknown structure", brackets.QualifyingLinkParams{
			QualifyingStructureID: "ghost",
			MainStructureID:       main.StructureID,
			QualifyingRoundNumber: 1,
		}, models.ErrStructureNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.draws.AddQualifyingLink(ctx, draw.DrawID, tt.params); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if got := len(f.reload(t, draw.DrawID).Links); got != 2 {
		t.Errorf("links after rejected adds = %d, want 2", got)
	}
}

func TestDeleteDraw(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	draw := f.elimination(t, 4)

	if err := f.draws.DeleteDraw(ctx, draw.DrawID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.draws.GetDraw(ctx, draw.DrawID); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("get after delete: %v", err)
	}
	if err := f.draws.DeleteDraw(ctx, draw.DrawID); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("second delete: %v", err)
	}
	notes := f.recorder.Notifications()
	last := notes[len(notes)-1]
	if last.Topic != engine.TopicDeletedDrawIDs || !reflect.DeepEqual(last.Payload, []string{draw.DrawID}) {
		t.Errorf("last notification = %+v", last)
	}
}

func TestArchiveDraw(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, false)
		draw := f.elimination(t, 4)
		if _, err := f.draws.ArchiveDraw(ctx, draw.DrawID); !errors.Is(err, services.ErrArchiveDisabled) {
			t.Errorf("err = %v, want ErrArchiveDisabled", err)
		}
	})

	t.Run("single and all", func(t *testing.T) {
		f := newFixture(t, true)
		first := f.elimination(t, 4)
		second := f.elimination(t, 8)

		snapshot, err := f.draws.ArchiveDraw(ctx, first.DrawID)
		if err != nil {
			t.Fatal(err)
		}
		if snapshot.DrawID != first.DrawID || !snapshot.TakenAt.Equal(fixedNow) {
			t.Errorf("snapshot = %+v", snapshot)
		}

		f.archiver.fail = map[string]bool{second.DrawID: true}
		archived, err := f.draws.ArchiveAll(ctx)
		if archived != 1 || err == nil {
			t.Errorf("archived = %d, err = %v; want 1 and an error", archived, err)
		}
	})
}
