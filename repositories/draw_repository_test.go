package repositories_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/repositories"
)

func sampleDraw(id string, created time.Time) *models.DrawDefinition {
	return &models.DrawDefinition{
		DrawID:   id,
		DrawName: "Draw " + id,
		DrawType: models.DrawTypeSingleElimination,
		DrawSize: 2,
		Structures: []*models.Structure{{
			StructureID: id + "-s",
			Stage:       models.StageMain,
			MatchUps:    []*models.MatchUp{models.NewMatchUp(id+"-m", 1, 1)},
		}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func exerciseDrawRepository(t *testing.T, repo repositories.DrawRepository) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, sampleDraw("b", base.Add(time.Minute))); err != nil {
		t.Fatalf("create b: %v", err)
	}
	if err := repo.Create(ctx, sampleDraw("a", base)); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := repo.Create(ctx, sampleDraw("a", base)); !errors.Is(err, repositories.ErrDrawIDConflict) {
		t.Errorf("duplicate create: err = %v", err)
	}

	got, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.DrawName != "Draw a" || len(got.Structures) != 1 || got.Structures[0].MatchUps[0].MatchUpID != "a-m" {
		t.Errorf("round trip lost data: %+v", got)
	}

	got.Structures[0].MatchUps[0].MatchUpStatus = models.MatchUpStatusCompleted
	again, _ := repo.GetByID(ctx, "a")
	if again.Structures[0].MatchUps[0].MatchUpStatus != models.MatchUpStatusToBePlayed {
		t.Error("caller mutation leaked into stored draw")
	}

	got.DrawName = "Renamed"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatal(err)
	}
	if again, _ := repo.GetByID(ctx, "a"); again.DrawName != "Renamed" {
		t.Errorf("update not stored: %s", again.DrawName)
	}
	if err := repo.Update(ctx, sampleDraw("zzz", base)); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("update missing: err = %v", err)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 || summaries[0].DrawID != "a" || summaries[1].DrawID != "b" {
		t.Errorf("list = %+v", summaries)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByID(ctx, "a"); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("get deleted: err = %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, models.ErrDrawNotFound) {
		t.Errorf("delete twice: err = %v", err)
	}
	if models.CodeOf(repo.Delete(ctx, "a")) != models.CodeDrawNotFound {
		t.Error("not found error lost its code")
	}
}

func TestMemoryDrawRepository(t *testing.T) {
	exerciseDrawRepository(t, repositories.NewMemoryDrawRepository())
}

func TestBoltDrawRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.db")
	repo, closeDB, err := repositories.NewBoltDrawRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	defer closeDB()
	exerciseDrawRepository(t, repo)
}

func TestBoltDrawRepositoryReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.db")
	repo, closeDB, err := repositories.NewBoltDrawRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(context.Background(), sampleDraw("kept", time.Now().UTC())); err != nil {
		t.Fatal(err)
	}
	if err := closeDB(); err != nil {
		t.Fatal(err)
	}

	repo, closeDB, err = repositories.NewBoltDrawRepository(path)
	if err != nil {
		t.Fatal(err)
	}
	defer closeDB()
	if _, err := repo.GetByID(context.Background(), "kept"); err != nil {
		t.Errorf("draw lost across reopen: %v", err)
	}
}
