package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/Dosada05/tournament-draws/models"
	"golang.org/x/sync/errgroup"
)

// MatchUpScoreRecord is one line of the scores snapshot.
type MatchUpScoreRecord struct {
	MatchUpID        string               `json:"matchUpId"`
	StructureID      string               `json:"structureId"`
	RoundNumber      int                  `json:"roundNumber"`
	RoundPosition    int                  `json:"roundPosition"`
	MatchUpStatus    models.MatchUpStatus `json:"matchUpStatus"`
	WinningSide      int                  `json:"winningSide,omitempty"`
	ParticipantIDs   [2]string            `json:"participantIds"`
	ScoreStringSide1 string               `json:"scoreStringSide1,omitempty"`
	ScoreStringSide2 string               `json:"scoreStringSide2,omitempty"`
}

type Snapshot struct {
	DrawID   string        `json:"drawId"`
	TakenAt  time.Time     `json:"takenAt"`
	Document *UploadResult `json:"document"`
	Scores   *UploadResult `json:"scores"`
}

// DrawArchiver writes point-in-time copies of draw documents to object
// storage under <prefix>/<drawId>/<timestamp>/.
type DrawArchiver struct {
	uploader FileUploader
	prefix   string
}

func NewDrawArchiver(uploader FileUploader, prefix string) *DrawArchiver {
	if prefix == "" {
		prefix = "draws"
	}
	return &DrawArchiver{uploader: uploader, prefix: prefix}
}

func scoreRecords(draw *models.DrawDefinition) ([]MatchUpScoreRecord, error) {
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return nil, err
	}
	records := make([]MatchUpScoreRecord, 0)
	for _, m := range idx.MatchUps() {
		record := MatchUpScoreRecord{
			MatchUpID:      m.MatchUpID,
			StructureID:    idx.StructureOf(m.MatchUpID).StructureID,
			RoundNumber:    m.RoundNumber,
			RoundPosition:  m.RoundPosition,
			MatchUpStatus:  m.MatchUpStatus,
			WinningSide:    m.WinningSide,
			ParticipantIDs: m.ParticipantIDs(),
		}
		if m.Score != nil {
			record.ScoreStringSide1 = m.Score.ScoreStringSide1
			record.ScoreStringSide2 = m.Score.ScoreStringSide2
		}
		records = append(records, record)
	}
	return records, nil
}

// Archive uploads the draw document and its score lines in parallel. When
// either upload fails the other object is removed again.
func (a *DrawArchiver) Archive(ctx context.Context, draw *models.DrawDefinition, takenAt time.Time) (*Snapshot, error) {
	if draw == nil {
		return nil, models.ErrMissingDrawDefinition
	}
	records, err := scoreRecords(draw)
	if err != nil {
		return nil, err
	}

	dir := path.Join(a.prefix, draw.DrawID, takenAt.UTC().Format("20060102T150405Z"))
	snapshot := &Snapshot{DrawID: draw.DrawID, TakenAt: takenAt.UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := uploadJSON(gctx, a.uploader, path.Join(dir, "draw.json"), draw)
		snapshot.Document = res
		return err
	})
	g.Go(func() error {
		res, err := uploadJSON(gctx, a.uploader, path.Join(dir, "scores.json"), records)
		snapshot.Scores = res
		return err
	})
	if err := g.Wait(); err != nil {
		if cleanupErr := deleteUploaded(context.WithoutCancel(ctx), a.uploader, snapshot.Document, snapshot.Scores); cleanupErr != nil {
			err = errors.Join(err, cleanupErr)
		}
		return nil, fmt.Errorf("failed to archive draw %s: %w", draw.DrawID, err)
	}
	return snapshot, nil
}
