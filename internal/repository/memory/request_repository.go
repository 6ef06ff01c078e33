package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

type RequestRepository struct {
	mu       sync.RWMutex
	requests map[string]entity.Request
}

func NewRequestRepository(seed []entity.Request) *RequestRepository {
	r := &RequestRepository{requests: make(map[string]entity.Request, len(seed))}

	for _, req := range seed {
		r.requests[req.ID] = cloneRequest(req)
	}

	return r
}

func (r *RequestRepository) CreateRequest(_ context.Context, req entity.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[req.ID]; ok {
		return entity.ErrAlreadyExists
	}

	r.requests[req.ID] = cloneRequest(req)

	return nil
}

func (r *RequestRepository) RequestByID(_ context.Context, id string) (entity.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.requests[id]
	if !ok {
		return entity.Request{}, entity.ErrNotFound
	}

	return cloneRequest(req), nil
}

// RequestsByQuery returns matching requests, newest first.
func (r *RequestRepository) RequestsByQuery(_ context.Context, q entity.RequestQuery) ([]entity.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]entity.Request, 0)

	for _, req := range r.requests {
		if q.Kind != "" && req.Kind != q.Kind {
			continue
		}

		if !q.Status.Match(req.Status) {
			continue
		}

		if !slices.Contains(q.EmployeeIDs, req.EmployeeID) {
			continue
		}

		res = append(res, cloneRequest(req))
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}

		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	return res, nil
}

// TransitionRequest moves a PENDING request to t.To. A request in any other status is left untouched
// and entity.ErrNotPending is returned.
func (r *RequestRepository) TransitionRequest(_ context.Context, t entity.Transition) (entity.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[t.RequestID]
	if !ok {
		return entity.Request{}, entity.ErrNotFound
	}

	if req.Status != entity.StatusPending {
		return entity.Request{}, entity.ErrNotPending
	}

	decidedBy := t.DecidedBy

	req.Status = t.To
	req.Comments = cloneString(t.Comments)
	req.DecidedBy = &decidedBy
	req.UpdatedAt = t.At

	r.requests[req.ID] = req

	return cloneRequest(req), nil
}

func (r *RequestRepository) SetAttachment(_ context.Context, id, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return entity.ErrNotFound
	}

	if req.Status != entity.StatusPending {
		return entity.ErrNotPending
	}

	req.AttachmentKey = &key
	r.requests[id] = req

	return nil
}

func cloneRequest(req entity.Request) entity.Request {
	if req.Period != nil {
		p := *req.Period
		req.Period = &p
	}

	if req.Amount != nil {
		a := *req.Amount
		req.Amount = &a
	}

	req.Comments = cloneString(req.Comments)
	req.DecidedBy = cloneString(req.DecidedBy)
	req.AttachmentKey = cloneString(req.AttachmentKey)

	return req
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
