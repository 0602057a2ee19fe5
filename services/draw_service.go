package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-draws/brackets"
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/repositories"
	"github.com/Dosada05/tournament-draws/storage"
	"golang.org/x/sync/errgroup"
)

const archiveConcurrency = 4

type DrawService interface {
	GenerateDraw(ctx context.Context, params brackets.GenerateDrawParams) (*models.DrawDefinition, error)
	GetDraw(ctx context.Context, drawID string) (*models.DrawDefinition, error)
	ListDraws(ctx context.Context) ([]models.DrawSummary, error)
	DeleteDraw(ctx context.Context, drawID string) error
	AddQualifyingLink(ctx context.Context, drawID string, params brackets.QualifyingLinkParams) (*models.Link, error)
	AddAdHocMatchUps(ctx context.Context, drawID, structureID string, params brackets.AdHocMatchUpsParams) ([]*models.MatchUp, error)
	ArchiveDraw(ctx context.Context, drawID string) (*storage.Snapshot, error)
	ArchiveAll(ctx context.Context) (int, error)
}

// DrawArchiver stores snapshots of draw documents.
type DrawArchiver interface {
	Archive(ctx context.Context, draw *models.DrawDefinition, takenAt time.Time) (*storage.Snapshot, error)
}

type DrawServiceConfig struct {
	DefaultMatchUpFormat string
	// Archiver may be nil; archive operations then fail with ErrArchiveDisabled.
	Archiver DrawArchiver
	// Locks must be shared with the ScoreService working on the same repository.
	Locks *DrawLocks
	Now   func() time.Time
}

type drawService struct {
	drawRepo      repositories.DrawRepository
	ec            *engine.Context
	logger        *slog.Logger
	locks         *DrawLocks
	archiver      DrawArchiver
	defaultFormat string
	now           func() time.Time
}

func NewDrawService(drawRepo repositories.DrawRepository, ec *engine.Context, logger *slog.Logger, cfg DrawServiceConfig) DrawService {
	return &drawService{
		drawRepo:      drawRepo,
		ec:            ec,
		logger:        orDefault(logger),
		locks:         orNewLocks(cfg.Locks),
		archiver:      cfg.Archiver,
		defaultFormat: defaultFormat(cfg.DefaultMatchUpFormat),
		now:           orNow(cfg.Now),
	}
}

func (s *drawService) GenerateDraw(ctx context.Context, params brackets.GenerateDrawParams) (*models.DrawDefinition, error) {
	now := s.now()
	draw := &models.DrawDefinition{
		DrawID:        s.ec.ID(),
		MatchUpFormat: s.defaultFormat,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := brackets.GenerateDrawTypeAndModifyDrawDefinition(s.ec, draw, params); err != nil {
		return nil, err
	}
	if draw.Links == nil {
		draw.Links = []*models.Link{}
	}

	if err := s.drawRepo.Create(ctx, draw); err != nil {
		return nil, fmt.Errorf("failed to store draw: %w", err)
	}
	s.logger.InfoContext(ctx, "draw generated",
		slog.String("drawId", draw.DrawID),
		slog.String("drawType", string(draw.DrawType)),
		slog.Int("drawSize", draw.DrawSize),
		slog.Int("structures", len(draw.Structures)))

	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, engine.TopicAddMatchUps, draw.DrawID, idx.MatchUps())
	return draw, nil
}

func (s *drawService) GetDraw(ctx context.Context, drawID string) (*models.DrawDefinition, error) {
	if drawID == "" {
		return nil, models.ErrMissingDrawDefinition
	}
	return s.drawRepo.GetByID(ctx, drawID)
}

func (s *drawService) ListDraws(ctx context.Context) ([]models.DrawSummary, error) {
	summaries, err := s.drawRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list draws: %w", err)
	}
	if summaries == nil {
		return []models.DrawSummary{}, nil
	}
	return summaries, nil
}

func (s *drawService) DeleteDraw(ctx context.Context, drawID string) error {
	if drawID == "" {
		return models.ErrMissingDrawDefinition
	}
	unlock := s.locks.lock(drawID)
	defer unlock()

	if err := s.drawRepo.Delete(ctx, drawID); err != nil {
		return err
	}
	s.locks.forget(drawID)
	s.logger.InfoContext(ctx, "draw deleted", slog.String("drawId", drawID))
	s.notify(ctx, engine.TopicDeletedDrawIDs, drawID, []string{drawID})
	return nil
}

// AddQualifyingLink appends a qualifying link and keeps it only when the
// draw's links still verify.
func (s *drawService) AddQualifyingLink(ctx context.Context, drawID string, params brackets.QualifyingLinkParams) (*models.Link, error) {
	link, err := brackets.GenerateQualifyingLink(params)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(drawID)
	defer unlock()

	draw, err := s.GetDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	for _, existing := range draw.Links {
		if sameEndpoints(existing, link) {
			return nil, fmt.Errorf("%w: link already exists", models.ErrInvalidLink)
		}
	}
	draw.Links = append(draw.Links, link)
	if err := brackets.VerifyLinks(draw); err != nil {
		return nil, err
	}

	draw.UpdatedAt = s.now()
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		return nil, fmt.Errorf("failed to update draw %s: %w", drawID, err)
	}
	s.logger.InfoContext(ctx, "qualifying link added",
		slog.String("drawId", drawID),
		slog.String("source", link.Source.StructureID),
		slog.String("target", link.Target.StructureID))
	s.notify(ctx, engine.TopicModifyDrawDefinition, drawID, draw.Links)
	return link, nil
}

func (s *drawService) AddAdHocMatchUps(ctx context.Context, drawID, structureID string, params brackets.AdHocMatchUpsParams) ([]*models.MatchUp, error) {
	unlock := s.locks.lock(drawID)
	defer unlock()

	draw, err := s.GetDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	matchUps, err := brackets.GenerateAdHocMatchUps(s.ec, draw, structureID, params)
	if err != nil {
		return nil, err
	}

	draw.UpdatedAt = s.now()
	if err := s.drawRepo.Update(ctx, draw); err != nil {
		return nil, fmt.Errorf("failed to update draw %s: %w", drawID, err)
	}
	s.logger.InfoContext(ctx, "ad hoc matchUps added",
		slog.String("drawId", drawID),
		slog.Int("matchUps", len(matchUps)))
	s.notify(ctx, engine.TopicAddMatchUps, drawID, matchUps)
	return matchUps, nil
}

func (s *drawService) ArchiveDraw(ctx context.Context, drawID string) (*storage.Snapshot, error) {
	if s.archiver == nil {
		return nil, ErrArchiveDisabled
	}
	draw, err := s.GetDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.archiver.Archive(ctx, draw, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to archive draw %s: %w", drawID, err)
	}
	s.logger.InfoContext(ctx, "draw archived",
		slog.String("drawId", drawID),
		slog.Time("takenAt", snapshot.TakenAt))
	return snapshot, nil
}

// ArchiveAll snapshots every stored draw and returns how many were archived.
// Failures are logged per draw and joined into the returned error.
func (s *drawService) ArchiveAll(ctx context.Context) (int, error) {
	if s.archiver == nil {
		return 0, ErrArchiveDisabled
	}
	summaries, err := s.ListDraws(ctx)
	if err != nil {
		return 0, err
	}

	errs := make([]error, len(summaries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(archiveConcurrency)
	for i, summary := range summaries {
		i, summary := i, summary
		g.Go(func() error {
			if _, err := s.ArchiveDraw(gctx, summary.DrawID); err != nil {
				s.logger.WarnContext(gctx, "draw snapshot failed",
					slog.String("drawId", summary.DrawID),
					slog.Any("error", err))
				errs[i] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	archived := 0
	for _, err := range errs {
		if err == nil {
			archived++
		}
	}
	return archived, errors.Join(errs...)
}

func (s *drawService) notify(ctx context.Context, topic, drawID string, payload any) {
	if err := s.ec.Notify(ctx, topic, drawID, payload); err != nil {
		s.logger.WarnContext(ctx, "notification failed",
			slog.String("topic", topic),
			slog.String("drawId", drawID),
			slog.Any("error", err))
	}
}

func sameEndpoints(a, b *models.Link) bool {
	return a.LinkType == b.LinkType &&
		a.Source.StructureID == b.Source.StructureID &&
		a.Source.RoundNumber == b.Source.RoundNumber &&
		a.Target == b.Target
}

func defaultFormat(code string) string {
	if code == "" {
		return matchupformat.DefaultCode
	}
	return code
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func orNow(now func() time.Time) func() time.Time {
	if now == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return now
}
