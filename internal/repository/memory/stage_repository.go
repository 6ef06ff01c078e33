package memory

import (
	"context"
	"sync"
	"time"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// StageRepository holds supervisor decisions awaiting confirmation.
type StageRepository struct {
	mu     sync.Mutex
	stages map[string]entity.StagedDecision
}

func NewStageRepository() *StageRepository {
	return &StageRepository{stages: make(map[string]entity.StagedDecision)}
}

func (r *StageRepository) SaveStage(_ context.Context, d entity.StagedDecision) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.Comments = cloneString(d.Comments)
	r.stages[d.ID] = d

	return nil
}

func (r *StageRepository) Stage(_ context.Context, id string) (entity.StagedDecision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.stages[id]
	if !ok {
		return entity.StagedDecision{}, entity.ErrNotFound
	}

	d.Comments = cloneString(d.Comments)

	return d, nil
}

// DeleteStage removes a staged decision and returns it, so that it is consumed exactly once.
func (r *StageRepository) DeleteStage(_ context.Context, id string) (entity.StagedDecision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.stages[id]
	if !ok {
		return entity.StagedDecision{}, entity.ErrNotFound
	}

	delete(r.stages, id)

	return d, nil
}

func (r *StageRepository) DeleteExpiredStages(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0

	for id, d := range r.stages {
		if d.Expired(now) {
			delete(r.stages, id)
			removed++
		}
	}

	return removed, nil
}
