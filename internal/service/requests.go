package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

// Requests drives leave and cash-advance requests from submission to a supervisor decision.
type Requests struct {
	repo       RequestRepository
	identities IdentityRepository
	stages     StageRepository
	publisher  Publisher
	storage    AttachmentStorage
	stageTTL   time.Duration
	now        func() time.Time
}

type RequestsOption func(*Requests)

func WithClock(now func() time.Time) RequestsOption {
	return func(r *Requests) {
		r.now = now
	}
}

// WithAttachments enables presigned uploads of supporting documents.
func WithAttachments(storage AttachmentStorage) RequestsOption {
	return func(r *Requests) {
		r.storage = storage
	}
}

func NewRequests(
	repo RequestRepository,
	identities IdentityRepository,
	stages StageRepository,
	publisher Publisher,
	stageTTL time.Duration,
	opts ...RequestsOption,
) *Requests {
	r := &Requests{
		repo:       repo,
		identities: identities,
		stages:     stages,
		publisher:  publisher,
		stageTTL:   stageTTL,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (s *Requests) Submit(ctx context.Context, in entity.NewRequest) (entity.Request, error) {
	owner, err := viewer(ctx)
	if err != nil {
		return entity.Request{}, err
	}

	in, err = ValidateNewRequest(in)
	if err != nil {
		slog.WarnContext(ctx, "invalid request submission", "kind", in.Kind, "error", err)
		return entity.Request{}, err
	}

	now := s.now().UTC()

	req := entity.Request{
		ID:         uuid.Must(uuid.NewV4()).String(),
		Kind:       in.Kind,
		EmployeeID: owner.ID,
		Period:     in.Period,
		Amount:     in.Amount,
		Reason:     in.Reason,
		Status:     entity.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if in.Kind == entity.KindLeave {
		req.LeaveType = in.LeaveType
	}

	err = s.repo.CreateRequest(ctx, req)
	if err != nil {
		return entity.Request{}, fmt.Errorf("create request: %w", err)
	}

	slog.InfoContext(ctx, "request submitted", "request_id", req.ID, "kind", req.Kind)

	s.publish(ctx, entity.EventRequestSubmitted, req, owner.ID, deref(owner.SupervisorID))

	return req, nil
}

// List returns the viewer's own requests or, for supervisors, the requests of their team.
// No match is an empty slice. A search term narrows the result to matching employee names and leave
// type labels.
func (s *Requests) List(ctx context.Context, f entity.RequestFilter) ([]entity.Request, error) {
	v, err := viewer(ctx)
	if err != nil {
		return nil, err
	}

	if f.Status == "" {
		f.Status = entity.StatusAll
	}

	if f.Scope == "" {
		f.Scope = entity.ScopeMine
	}

	switch {
	case !f.Status.Valid():
		return nil, validationErr("unknown status filter %q", f.Status)
	case f.Kind != "" && !f.Kind.Valid():
		return nil, validationErr("unknown request kind %q", f.Kind)
	case !f.Scope.Valid():
		return nil, validationErr("unknown scope %q", f.Scope)
	}

	q := entity.RequestQuery{Kind: f.Kind, Status: f.Status}
	names := make(map[string]string)

	if f.Scope == entity.ScopeMine {
		q.EmployeeIDs = []string{v.ID}
		names[v.ID] = v.Name
	} else {
		if !v.IsSupervisor() {
			return nil, entity.ErrForbidden
		}

		team, err := s.identities.Subordinates(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("subordinates: %w", err)
		}

		for _, member := range team {
			q.EmployeeIDs = append(q.EmployeeIDs, member.ID)
			names[member.ID] = member.Name
		}
	}

	if len(q.EmployeeIDs) == 0 {
		return []entity.Request{}, nil
	}

	requests, err := s.repo.RequestsByQuery(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("requests by query: %w", err)
	}

	term := normalizeTerm(f.Search)
	res := make([]entity.Request, 0, len(requests))

	for _, req := range requests {
		if containsTerm(term, names[req.EmployeeID], req.LeaveType.Label()) {
			res = append(res, req)
		}
	}

	return res, nil
}

// Get returns a request visible to its owner and to the owner's supervisor.
func (s *Requests) Get(ctx context.Context, id string) (entity.Request, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Request{}, err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.Request{}, fmt.Errorf("request by id: %w", err)
	}

	if req.EmployeeID == v.ID {
		return req, nil
	}

	err = s.checkSupervisor(ctx, v, req)
	if err != nil {
		return entity.Request{}, err
	}

	return req, nil
}

func (s *Requests) checkSupervisor(ctx context.Context, v entity.Identity, req entity.Request) error {
	if !v.IsSupervisor() {
		return entity.ErrForbidden
	}

	owner, err := s.identities.IdentityByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrForbidden
		}

		return fmt.Errorf("owner identity: %w", err)
	}

	if !v.Supervises(owner) {
		return entity.ErrForbidden
	}

	return nil
}

// decidable loads a request the viewer may decide on right now.
func (s *Requests) decidable(ctx context.Context, v entity.Identity, id string) (entity.Request, error) {
	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return entity.Request{}, fmt.Errorf("request by id: %w", err)
	}

	err = s.checkSupervisor(ctx, v, req)
	if err != nil {
		return entity.Request{}, err
	}

	if req.Status != entity.StatusPending {
		return entity.Request{}, entity.ErrNotPending
	}

	return req, nil
}

// Decide approves or rejects a pending request. A request that is no longer pending is left
// untouched and entity.ErrNotPending is returned.
func (s *Requests) Decide(ctx context.Context, id string, action entity.Action, comments *string) (entity.Request, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Request{}, err
	}

	comments, err = ValidateDecision(action, comments)
	if err != nil {
		return entity.Request{}, err
	}

	req, err := s.decidable(ctx, v, id)
	if err != nil {
		return entity.Request{}, err
	}

	at := s.now().UTC()
	if !at.After(req.UpdatedAt) {
		at = req.UpdatedAt.Add(time.Microsecond)
	}

	decided, err := s.repo.TransitionRequest(ctx, entity.Transition{
		RequestID: req.ID,
		To:        action.Status(),
		Comments:  comments,
		DecidedBy: v.ID,
		At:        at,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotPending) {
			slog.WarnContext(ctx, "request decided concurrently", "request_id", id)
			return entity.Request{}, err
		}

		return entity.Request{}, fmt.Errorf("transition request: %w", err)
	}

	slog.InfoContext(ctx, "request decided", "request_id", decided.ID, "status", decided.Status)

	s.publish(ctx, entity.EventRequestDecided, decided, decided.EmployeeID, v.ID)

	return decided, nil
}

// Stage records a decision without applying it. Nothing changes until Confirm.
func (s *Requests) Stage(ctx context.Context, id string, action entity.Action, comments *string) (entity.StagedDecision, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.StagedDecision{}, err
	}

	comments, err = ValidateDecision(action, comments)
	if err != nil {
		return entity.StagedDecision{}, err
	}

	req, err := s.decidable(ctx, v, id)
	if err != nil {
		return entity.StagedDecision{}, err
	}

	d := entity.StagedDecision{
		ID:        uuid.Must(uuid.NewV4()).String(),
		RequestID: req.ID,
		Action:    action,
		Comments:  comments,
		StagedBy:  v.ID,
		ExpiresAt: s.now().UTC().Add(s.stageTTL),
	}

	err = s.stages.SaveStage(ctx, d)
	if err != nil {
		return entity.StagedDecision{}, fmt.Errorf("save stage: %w", err)
	}

	slog.DebugContext(ctx, "decision staged", "stage_id", d.ID, "request_id", req.ID, "action", action)

	return d, nil
}

// ownStage returns a live staged decision of the viewer. Stages of other supervisors are not found.
func (s *Requests) ownStage(ctx context.Context, v entity.Identity, stageID string) (entity.StagedDecision, error) {
	d, err := s.stages.Stage(ctx, stageID)
	if err != nil {
		return entity.StagedDecision{}, fmt.Errorf("stage: %w", err)
	}

	if d.StagedBy != v.ID {
		return entity.StagedDecision{}, entity.ErrNotFound
	}

	if d.Expired(s.now()) {
		_, _ = s.stages.DeleteStage(ctx, stageID)
		return entity.StagedDecision{}, fmt.Errorf("%w: %w", entity.ErrNotFound, entity.ErrStageExpired)
	}

	return d, nil
}

func (s *Requests) Confirm(ctx context.Context, stageID string) (entity.Request, error) {
	v, err := viewer(ctx)
	if err != nil {
		return entity.Request{}, err
	}

	_, err = s.ownStage(ctx, v, stageID)
	if err != nil {
		return entity.Request{}, err
	}

	// consumed once even under concurrent confirms
	d, err := s.stages.DeleteStage(ctx, stageID)
	if err != nil {
		return entity.Request{}, fmt.Errorf("delete stage: %w", err)
	}

	return s.Decide(ctx, d.RequestID, d.Action, d.Comments)
}

// Cancel drops a staged decision. The request is not touched.
func (s *Requests) Cancel(ctx context.Context, stageID string) error {
	v, err := viewer(ctx)
	if err != nil {
		return err
	}

	_, err = s.ownStage(ctx, v, stageID)
	if err != nil {
		return err
	}

	_, err = s.stages.DeleteStage(ctx, stageID)
	if err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}

	slog.DebugContext(ctx, "staged decision cancelled", "stage_id", stageID)

	return nil
}

func (s *Requests) DeleteExpiredStages(ctx context.Context) error {
	removed, err := s.stages.DeleteExpiredStages(ctx, s.now())
	if err != nil {
		return fmt.Errorf("delete expired stages: %w", err)
	}

	if removed > 0 {
		slog.DebugContext(ctx, "expired staged decisions removed", "count", removed)
	}

	return nil
}

type Attachment struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AttachmentURL presigns the upload of a supporting document for a pending request of the viewer.
func (s *Requests) AttachmentURL(ctx context.Context, id, fileName string) (Attachment, error) {
	if s.storage == nil {
		return Attachment{}, entity.ErrAttachmentsDisabled
	}

	v, err := viewer(ctx)
	if err != nil {
		return Attachment{}, err
	}

	fileName, err = ValidateFileName(fileName)
	if err != nil {
		return Attachment{}, err
	}

	req, err := s.repo.RequestByID(ctx, id)
	if err != nil {
		return Attachment{}, fmt.Errorf("request by id: %w", err)
	}

	if req.EmployeeID != v.ID {
		return Attachment{}, entity.ErrForbidden
	}

	if req.Status != entity.StatusPending {
		return Attachment{}, entity.ErrNotPending
	}

	key := fmt.Sprintf("requests/%s/%s-%s", req.ID, uuid.Must(uuid.NewV4()), fileName)

	url, expiresAt, err := s.storage.PresignUpload(ctx, key)
	if err != nil {
		return Attachment{}, fmt.Errorf("presign upload: %w", err)
	}

	err = s.repo.SetAttachment(ctx, req.ID, key)
	if err != nil {
		return Attachment{}, fmt.Errorf("set attachment: %w", err)
	}

	return Attachment{URL: url, Key: key, ExpiresAt: expiresAt}, nil
}

func (s *Requests) publish(ctx context.Context, t entity.EventType, req entity.Request, audience ...string) {
	ids := make([]string, 0, len(audience))

	for _, id := range audience {
		if id != "" {
			ids = append(ids, id)
		}
	}

	s.publisher.Publish(ctx, entity.Event{
		Type:     t,
		Request:  &req,
		At:       s.now().UTC(),
		Audience: ids,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
