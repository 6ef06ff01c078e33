package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestKind string

const (
	KindLeave   RequestKind = "leave"
	KindAdvance RequestKind = "advance"
)

func (k RequestKind) Valid() bool {
	return k == KindLeave || k == KindAdvance
}

func (k RequestKind) Category() NotificationCategory {
	if k == KindAdvance {
		return CategoryAdvance
	}

	return CategoryLeave
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "VACATION"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypePersonal LeaveType = "PERSONAL"
	LeaveTypeOther    LeaveType = "OTHER"
)

var leaveTypeLabels = map[LeaveType]string{
	LeaveTypeVacation: "Congés payés",
	LeaveTypeSick:     "Congé maladie",
	LeaveTypePersonal: "Congé personnel",
	LeaveTypeOther:    "Autre",
}

func (t LeaveType) Valid() bool {
	_, ok := leaveTypeLabels[t]
	return ok
}

// Label is the name shown to employees.
func (t LeaveType) Label() string {
	return leaveTypeLabels[t]
}

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) Days() int {
	start := truncateDay(p.Start)
	end := truncateDay(p.End)

	if end.Before(start) {
		return 0
	}

	return int(end.Sub(start).Hours()/24) + 1 //nolint:mnd
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Request struct {
	ID            string           `json:"id"`
	Kind          RequestKind      `json:"kind"`
	EmployeeID    string           `json:"employeeId"`
	LeaveType     LeaveType        `json:"leaveType,omitempty"`
	Period        *Period          `json:"period,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Reason        string           `json:"reason"`
	Status        RequestStatus    `json:"status"`
	Comments      *string          `json:"comments,omitempty"`
	DecidedBy     *string          `json:"decidedBy,omitempty"`
	AttachmentKey *string          `json:"attachmentKey,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type NewRequest struct {
	Kind       RequestKind
	EmployeeID string
	LeaveType  LeaveType
	Period     *Period
	Amount     *decimal.Decimal
	Reason     string
}

type StatusFilter string

const (
	StatusAll      StatusFilter = "ALL"
	FilterPending  StatusFilter = StatusFilter(StatusPending)
	FilterApproved StatusFilter = StatusFilter(StatusApproved)
	FilterRejected StatusFilter = StatusFilter(StatusRejected)
)

func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, FilterPending, FilterApproved, FilterRejected:
		return true
	default:
		return false
	}
}

func (f StatusFilter) Match(s RequestStatus) bool {
	return f == StatusAll || f == "" || RequestStatus(f) == s
}

type Scope string

const (
	ScopeMine Scope = "mine"
	ScopeTeam Scope = "team"
)

func (s Scope) Valid() bool {
	return s == ScopeMine || s == ScopeTeam
}

type RequestFilter struct {
	Kind   RequestKind
	Status StatusFilter
	Scope  Scope
	// Search matches the employee name or the leave type label, case-insensitively.
	Search string
}

// RequestQuery is what storage understands: a resolved list of owners.
type RequestQuery struct {
	Kind        RequestKind
	Status      StatusFilter
	EmployeeIDs []string
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

func (a Action) Status() RequestStatus {
	if a == ActionApprove {
		return StatusApproved
	}

	return StatusRejected
}

// Transition is a compare-and-swap of a request status from PENDING.
type Transition struct {
	RequestID string
	To        RequestStatus
	Comments  *string
	DecidedBy string
	At        time.Time
}

type StagedDecision struct {
	ID        string    `json:"id"`
	RequestID string    `json:"requestId"`
	Action    Action    `json:"action"`
	Comments  *string   `json:"comments,omitempty"`
	StagedBy  string    `json:"stagedBy"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (d StagedDecision) Expired(now time.Time) bool {
	return !now.Before(d.ExpiresAt)
}
