package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/tournament-draws/brackets"
	"github.com/Dosada05/tournament-draws/engine"
	"github.com/Dosada05/tournament-draws/matchupformat"
	"github.com/Dosada05/tournament-draws/models"
	"github.com/Dosada05/tournament-draws/repositories"
	"github.com/Dosada05/tournament-draws/scoring"
	"github.com/Dosada05/tournament-draws/standings"
)

type ScoreService interface {
	SetMatchUpScore(ctx context.Context, drawID, matchUpID string, input SetScoreInput) (*MatchUpResult, error)
	SetSetValue(ctx context.Context, drawID, matchUpID string, input SetValueInput) (*SetValueResult, error)
	GetScoreString(ctx context.Context, drawID, matchUpID string, opts ScoreStringOptions) (*ScoreStringResult, error)
	GetScoreHistory(ctx context.Context, drawID, matchUpID string) ([]*models.Score, error)
	UndoScore(ctx context.Context, drawID, matchUpID string) (*MatchUpResult, error)
	GetStructureTally(ctx context.Context, drawID, structureID string) (*TallyResult, error)
}

// SetScoreInput replaces the sets of a matchUp. MatchUpStatus is derived from
// the sets when empty; RETIRED, WALKOVER and DEFAULTED need WinningSide.
type SetScoreInput struct {
	Sets          []*models.Set        `json:"sets"`
	MatchUpStatus models.MatchUpStatus `json:"matchUpStatus,omitempty"`
	WinningSide   int                  `json:"winningSide,omitempty"`
}

type SetValueInput struct {
	SetNumber int              `json:"setNumber"`
	Field     scoring.SetField `json:"field"`
	// Value nil clears the field.
	Value *int `json:"value"`
}

type ScoreStringOptions struct {
	Reversed    bool
	WinnerFirst bool
}

type MatchUpResult struct {
	MatchUp  *models.MatchUp        `json:"matchUp"`
	Analysis *scoring.ScoreAnalysis `json:"analysis,omitempty"`
	// Modified lists matchUps that received participants as a consequence.
	Modified []*models.MatchUp `json:"modifiedMatchUps,omitempty"`
}

type SetValueResult struct {
	Submission *scoring.SetSubmission `json:"submission"`
	*MatchUpResult
}

type ScoreStringResult struct {
	MatchUpID   string `json:"matchUpId"`
	ScoreString string `json:"scoreString"`
	Reversed    bool   `json:"reversed"`
	WinnerFirst bool   `json:"winnerFirst"`
}

type GroupTally struct {
	StructureID   string                     `json:"structureId"`
	StructureName string                     `json:"structureName,omitempty"`
	Complete      bool                       `json:"complete"`
	Counted       int                        `json:"counted"`
	Tallies       []*models.ParticipantTally `json:"tallies"`
}

type TallyResult struct {
	StructureID string        `json:"structureId"`
	Groups      []*GroupTally `json:"groups"`
}

type ScoreServiceConfig struct {
	DefaultMatchUpFormat string
	Locks                *DrawLocks
	Now                  func() time.Time
}

type scoreService struct {
	drawRepo      repositories.DrawRepository
	ec            *engine.Context
	logger        *slog.Logger
	locks         *DrawLocks
	defaultFormat string
	now           func() time.Time
}

func NewScoreService(drawRepo repositories.DrawRepository, ec *engine.Context, logger *slog.Logger, cfg ScoreServiceConfig) ScoreService {
	return &scoreService{
		drawRepo:      drawRepo,
		ec:            ec,
		logger:        orDefault(logger),
		locks:         orNewLocks(cfg.Locks),
		defaultFormat: defaultFormat(cfg.DefaultMatchUpFormat),
		now:           orNow(cfg.Now),
	}
}

type matchUpMutation func(idx *models.DrawIndex, m *models.MatchUp) (*MatchUpResult, error)

// mutate loads the draw under its lock, applies fn to the matchUp and stores
// the draw only when fn succeeds.
func (s *scoreService) mutate(ctx context.Context, drawID, matchUpID string, fn matchUpMutation) (*MatchUpResult, error) {
	if drawID == "" {
		return nil, models.ErrMissingDrawDefinition
	}
	unlock := s.locks.lock(drawID)
	defer unlock()

	idx, m, err := s.load(ctx, drawID, matchUpID)
	if err != nil {
		return nil, err
	}
	result, err := fn(idx, m)
	if err != nil {
		return nil, err
	}

	idx.Draw.UpdatedAt = s.now()
	if err := s.drawRepo.Update(ctx, idx.Draw); err != nil {
		return nil, fmt.Errorf("failed to update draw %s: %w", drawID, err)
	}
	s.logger.InfoContext(ctx, "matchUp updated",
		slog.String("drawId", drawID),
		slog.String("matchUpId", matchUpID),
		slog.String("matchUpStatus", string(m.MatchUpStatus)),
		slog.Int("winningSide", m.WinningSide),
		slog.Int("modified", len(result.Modified)))

	payload := append([]*models.MatchUp{m}, result.Modified...)
	if err := s.ec.Notify(ctx, engine.TopicModifyMatchUp, drawID, payload); err != nil {
		s.logger.WarnContext(ctx, "notification failed",
			slog.String("topic", engine.TopicModifyMatchUp),
			slog.String("drawId", drawID),
			slog.Any("error", err))
	}
	return result, nil
}

func (s *scoreService) load(ctx context.Context, drawID, matchUpID string) (*models.DrawIndex, *models.MatchUp, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		return nil, nil, err
	}
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return nil, nil, err
	}
	m, err := idx.MatchUp(matchUpID)
	if err != nil {
		return nil, nil, err
	}
	return idx, m, nil
}

func (s *scoreService) formatOf(idx *models.DrawIndex, matchUpID string) (string, *models.MatchUpFormat, error) {
	code := idx.MatchUpFormatOf(matchUpID)
	if code == "" {
		code = s.defaultFormat
	}
	format, err := matchupformat.Parse(code)
	if err != nil {
		return "", nil, err
	}
	return code, format, nil
}

func (s *scoreService) SetMatchUpScore(ctx context.Context, drawID, matchUpID string, input SetScoreInput) (*MatchUpResult, error) {
	return s.mutate(ctx, drawID, matchUpID, func(idx *models.DrawIndex, m *models.MatchUp) (*MatchUpResult, error) {
		return s.applyScore(idx, m, input, true)
	})
}

// SetSetValue changes one field of one set and re-scores the matchUp with the
// resulting sets.
func (s *scoreService) SetSetValue(ctx context.Context, drawID, matchUpID string, input SetValueInput) (*SetValueResult, error) {
	var submission *scoring.SetSubmission
	result, err := s.mutate(ctx, drawID, matchUpID, func(idx *models.DrawIndex, m *models.MatchUp) (*MatchUpResult, error) {
		if input.SetNumber < 1 {
			return nil, fmt.Errorf("%w: %d", models.ErrInvalidSetNumber, input.SetNumber)
		}
		_, format, err := s.formatOf(idx, m.MatchUpID)
		if err != nil {
			return nil, err
		}
		if format.BestOf > 0 && input.SetNumber > format.BestOf {
			return nil, fmt.Errorf("%w: %d exceeds bestOf %d", models.ErrInvalidSetNumber, input.SetNumber, format.BestOf)
		}

		set := m.Score.SetNumbered(input.SetNumber).Clone()
		if set == nil {
			set = &models.Set{SetNumber: input.SetNumber}
		}
		submission, err = scoring.SubmitSetValue(set, input.Field, input.Value, format)
		if err != nil {
			return nil, err
		}

		sets := []*models.Set{}
		if m.Score != nil {
			for _, existing := range m.Score.Sets {
				if existing != nil && existing.SetNumber != input.SetNumber {
					sets = append(sets, existing.Clone())
				}
			}
		}
		sets = append(sets, submission.Set.Clone())
		return s.applyScore(idx, m, SetScoreInput{Sets: sets}, true)
	})
	if err != nil {
		return nil, err
	}
	return &SetValueResult{Submission: submission, MatchUpResult: result}, nil
}

func (s *scoreService) applyScore(idx *models.DrawIndex, m *models.MatchUp, input SetScoreInput, record bool) (*MatchUpResult, error) {
	if m.MatchUpStatus == models.MatchUpStatusBye {
		return nil, fmt.Errorf("%w: %s is a bye", ErrScoreNotAccepted, m.MatchUpID)
	}
	code, format, err := s.formatOf(idx, m.MatchUpID)
	if err != nil {
		return nil, err
	}
	sets := input.Sets
	if sets == nil {
		sets = []*models.Set{}
	}
	applied, analysis, err := scoring.ApplyScore(&models.Score{Sets: sets}, format)
	if err != nil {
		return nil, err
	}
	status, winningSide, err := resolveOutcome(input, analysis)
	if err != nil {
		return nil, err
	}

	if winningSide != 0 {
		ids := m.ParticipantIDs()
		if ids[0] == "" || ids[1] == "" {
			return nil, fmt.Errorf("%w: %s does not have two participants", ErrScoreNotAccepted, m.MatchUpID)
		}
	}
	if m.WinningSide != 0 && winningSide != m.WinningSide {
		return nil, fmt.Errorf("%w: %s", models.ErrCannotChangeWinningSide, m.MatchUpID)
	}

	if record {
		prior := m.Score.Clone()
		if prior == nil {
			prior = &models.Score{Sets: []*models.Set{}}
		}
		m.ScoreHistory = append(m.ScoreHistory, prior)
	}
	applied.ScoreStringSide1, applied.ScoreStringSide2 = scoring.ScoreStrings(applied.Sets, code, status, winningSide)
	decided := m.WinningSide == 0 && winningSide != 0
	m.Score = applied
	m.MatchUpStatus = status
	m.WinningSide = winningSide

	result := &MatchUpResult{MatchUp: m, Analysis: analysis}
	if decided {
		modified, err := brackets.DirectParticipants(idx, m)
		if err != nil {
			return nil, err
		}
		result.Modified = append(result.Modified, modified...)
	}
	finishers, err := directCompletedGroup(idx, m)
	if err != nil {
		return nil, err
	}
	result.Modified = append(result.Modified, finishers...)
	return result, nil
}

func resolveOutcome(input SetScoreInput, analysis *scoring.ScoreAnalysis) (models.MatchUpStatus, int, error) {
	status := input.MatchUpStatus
	if status != "" && !status.IsValid() {
		return "", 0, fmt.Errorf("%w: matchUpStatus %q", models.ErrInvalidValues, status)
	}
	if input.WinningSide < 0 || input.WinningSide > 2 {
		return "", 0, fmt.Errorf("%w: %d", models.ErrInvalidSideNumber, input.WinningSide)
	}

	switch status {
	case models.MatchUpStatusBye:
		return "", 0, fmt.Errorf("%w: a bye cannot be submitted", models.ErrInvalidValues)
	case models.MatchUpStatusRetired, models.MatchUpStatusWalkover, models.MatchUpStatusDefaulted:
		if input.WinningSide == 0 {
			return "", 0, fmt.Errorf("%w: %s needs a winningSide", models.ErrInvalidSideNumber, status)
		}
		if analysis.IsComplete {
			return "", 0, fmt.Errorf("%w: sets already decide the matchUp", models.ErrInvalidValues)
		}
		return status, input.WinningSide, nil
	case models.MatchUpStatusDoubleWalkover, models.MatchUpStatusSuspended,
		models.MatchUpStatusAbandoned, models.MatchUpStatusCancelled:
		return status, 0, nil
	}

	if analysis.IsComplete {
		if status != "" && status != models.MatchUpStatusCompleted {
			return "", 0, fmt.Errorf("%w: sets decide the matchUp but status is %s", models.ErrInvalidValues, status)
		}
		if input.WinningSide != 0 && input.WinningSide != analysis.WinningSide {
			return "", 0, fmt.Errorf("%w: winningSide %d disagrees with the sets", models.ErrInvalidSideNumber, input.WinningSide)
		}
		return models.MatchUpStatusCompleted, analysis.WinningSide, nil
	}
	if status == models.MatchUpStatusCompleted {
		return "", 0, fmt.Errorf("%w: sets do not decide the matchUp", models.ErrInvalidValues)
	}
	if input.WinningSide != 0 {
		return "", 0, fmt.Errorf("%w: winningSide given for an undecided matchUp", models.ErrInvalidSideNumber)
	}
	if status == "" {
		status = models.MatchUpStatusToBePlayed
		if hasValues(input.Sets) {
			status = models.MatchUpStatusInProgress
		}
	}
	return status, 0, nil
}

func hasValues(sets []*models.Set) bool {
	for _, set := range sets {
		if set == nil {
			continue
		}
		for _, v := range []*int{set.Side1Score, set.Side2Score, set.Side1TiebreakScore,
			set.Side2TiebreakScore, set.Side1PointScore, set.Side2PointScore} {
			if v != nil {
				return true
			}
		}
	}
	return false
}

// directCompletedGroup places the finishers of a round robin group once its
// last matchUp is decided.
func directCompletedGroup(idx *models.DrawIndex, m *models.MatchUp) ([]*models.MatchUp, error) {
	group := idx.StructureOf(m.MatchUpID)
	if group == nil {
		return nil, nil
	}
	container := idx.Parent(group.StructureID)
	if container == nil || len(idx.LinksFrom(container.StructureID, 0)) == 0 {
		return nil, nil
	}
	if !groupComplete(group) {
		return nil, nil
	}
	result := tallyGroup(group)
	order := make([]string, 0, len(result.Tallies))
	for _, t := range result.Tallies {
		order = append(order, t.ParticipantID)
	}
	return brackets.DirectGroupFinishers(idx, container, map[string][]string{group.StructureID: order})
}

func groupComplete(group *models.Structure) bool {
	for _, gm := range group.MatchUps {
		if !gm.MatchUpStatus.IsCompleted() && gm.MatchUpStatus != models.MatchUpStatusDoubleWalkover {
			return false
		}
	}
	return len(group.MatchUps) > 0
}

func tallyGroup(group *models.Structure) *standings.Result {
	var ids []string
	for _, a := range group.AllAssignments() {
		if a.ParticipantID != "" {
			ids = append(ids, a.ParticipantID)
		}
	}
	return standings.Tally(group.AllMatchUps(), standings.Options{ParticipantIDs: ids})
}

func (s *scoreService) GetScoreString(ctx context.Context, drawID, matchUpID string, opts ScoreStringOptions) (*ScoreStringResult, error) {
	idx, m, err := s.load(ctx, drawID, matchUpID)
	if err != nil {
		return nil, err
	}
	code, _, err := s.formatOf(idx, matchUpID)
	if err != nil {
		return nil, err
	}
	var sets []*models.Set
	if m.Score != nil {
		sets = m.Score.Sets
	}
	return &ScoreStringResult{
		MatchUpID: m.MatchUpID,
		ScoreString: scoring.GenerateScoreString(scoring.ScoreStringParams{
			Sets:          sets,
			MatchUpFormat: code,
			MatchUpStatus: m.MatchUpStatus,
			WinningSide:   m.WinningSide,
			WinnerFirst:   opts.WinnerFirst,
			Reversed:      opts.Reversed,
		}),
		Reversed:    opts.Reversed,
		WinnerFirst: opts.WinnerFirst,
	}, nil
}

func (s *scoreService) GetScoreHistory(ctx context.Context, drawID, matchUpID string) ([]*models.Score, error) {
	_, m, err := s.load(ctx, drawID, matchUpID)
	if err != nil {
		return nil, err
	}
	if len(m.ScoreHistory) == 0 {
		return nil, fmt.Errorf("%w: no score history for %s", models.ErrNotFound, matchUpID)
	}
	return m.ScoreHistory, nil
}

// UndoScore restores the most recent history entry. The status is derived
// again from the restored sets.
func (s *scoreService) UndoScore(ctx context.Context, drawID, matchUpID string) (*MatchUpResult, error) {
	return s.mutate(ctx, drawID, matchUpID, func(idx *models.DrawIndex, m *models.MatchUp) (*MatchUpResult, error) {
		if len(m.ScoreHistory) == 0 {
			return nil, fmt.Errorf("%w: no score history for %s", models.ErrNotFound, matchUpID)
		}
		prior := m.ScoreHistory[len(m.ScoreHistory)-1]
		result, err := s.applyScore(idx, m, SetScoreInput{Sets: prior.Sets}, false)
		if err != nil {
			return nil, err
		}
		m.ScoreHistory = m.ScoreHistory[:len(m.ScoreHistory)-1]
		return result, nil
	})
}

// GetStructureTally returns standings for every group of a round robin
// container, or for a single group or structure.
func (s *scoreService) GetStructureTally(ctx context.Context, drawID, structureID string) (*TallyResult, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		return nil, err
	}
	idx, err := models.NewDrawIndex(draw)
	if err != nil {
		return nil, err
	}
	structure, err := idx.Structure(structureID)
	if err != nil {
		return nil, err
	}

	groups := []*models.Structure{structure}
	if structure.IsContainer() {
		groups = structure.Structures
	}
	result := &TallyResult{StructureID: structure.StructureID, Groups: make([]*GroupTally, 0, len(groups))}
	for _, group := range groups {
		t := tallyGroup(group)
		result.Groups = append(result.Groups, &GroupTally{
			StructureID:   group.StructureID,
			StructureName: group.StructureName,
			Complete:      groupComplete(group),
			Counted:       t.Counted,
			Tallies:       t.Tallies,
		})
	}
	return result, nil
}
