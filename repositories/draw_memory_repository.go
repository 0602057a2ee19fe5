package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/Dosada05/tournament-draws/models"
)

type memoryDrawRepository struct {
	mu    sync.RWMutex
	draws map[string]*models.DrawDefinition
}

func NewMemoryDrawRepository() DrawRepository {
	return &memoryDrawRepository{draws: make(map[string]*models.DrawDefinition)}
}

func (r *memoryDrawRepository) Create(_ context.Context, draw *models.DrawDefinition) error {
	clone, err := draw.Clone()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.draws[draw.DrawID]; exists {
		return ErrDrawIDConflict
	}
	r.draws[draw.DrawID] = clone
	return nil
}

func (r *memoryDrawRepository) GetByID(_ context.Context, id string) (*models.DrawDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draw, ok := r.draws[id]
	if !ok {
		return nil, drawNotFound(id)
	}
	return draw.Clone()
}

func (r *memoryDrawRepository) Update(_ context.Context, draw *models.DrawDefinition) error {
	clone, err := draw.Clone()
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.draws[draw.DrawID]; !ok {
		return drawNotFound(draw.DrawID)
	}
	r.draws[draw.DrawID] = clone
	return nil
}

func (r *memoryDrawRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.draws[id]; !ok {
		return drawNotFound(id)
	}
	delete(r.draws, id)
	return nil
}

func (r *memoryDrawRepository) List(_ context.Context) ([]models.DrawSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summaries := make([]models.DrawSummary, 0, len(r.draws))
	for _, draw := range r.draws {
		summaries = append(summaries, draw.Summary())
	}
	sortSummaries(summaries)
	return summaries, nil
}

func sortSummaries(summaries []models.DrawSummary) {
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
		}
		return summaries[i].DrawID < summaries[j].DrawID
	})
}
