package service

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/intranet/internal/entity"
)

const (
	EmailMaxLen     = 255
	ReasonMaxLen    = 500
	CommentsMaxLen  = 1000
	FileNameMaxLen  = 200
	MessageMaxLen   = 2000
	MaxLeaveDays    = 60
	amountMaxDigits = 2
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// MaxAdvanceAmount caps a single cash advance.
	MaxAdvanceAmount = decimal.NewFromInt(10000)
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrEmailInvalidFormat
	}

	if strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	err := ValidateEmail(normalized)
	if err != nil {
		return "", err
	}

	return normalized, nil
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", entity.ErrValidation, fmt.Sprintf(format, args...))
}

// ValidateNewRequest checks a submission and fills defaults. It never touches storage.
func ValidateNewRequest(in entity.NewRequest) (entity.NewRequest, error) {
	in.Reason = strings.TrimSpace(in.Reason)

	switch {
	case in.Reason == "":
		return in, validationErr("reason is required")
	case utf8.RuneCountInString(in.Reason) > ReasonMaxLen:
		return in, validationErr("reason exceeds %d characters", ReasonMaxLen)
	}

	switch in.Kind {
	case entity.KindLeave:
		return validateLeave(in)
	case entity.KindAdvance:
		return validateAdvance(in)
	default:
		return in, validationErr("unknown request kind %q", in.Kind)
	}
}

func validateLeave(in entity.NewRequest) (entity.NewRequest, error) {
	if in.Amount != nil {
		return in, validationErr("leave request cannot carry an amount")
	}

	if in.LeaveType == "" {
		in.LeaveType = entity.LeaveTypeVacation
	}

	if !in.LeaveType.Valid() {
		return in, validationErr("unknown leave type %q", in.LeaveType)
	}

	if in.Period == nil || in.Period.Start.IsZero() || in.Period.End.IsZero() {
		return in, validationErr("period start and end are required")
	}

	if in.Period.End.Before(in.Period.Start) {
		return in, validationErr("period ends before it starts")
	}

	if in.Period.Days() > MaxLeaveDays {
		return in, validationErr("period exceeds %d days", MaxLeaveDays)
	}

	return in, nil
}

func validateAdvance(in entity.NewRequest) (entity.NewRequest, error) {
	if in.Period != nil || in.LeaveType != "" {
		return in, validationErr("cash advance cannot carry a leave period")
	}

	if in.Amount == nil {
		return in, validationErr("amount is required")
	}

	amount := *in.Amount

	switch {
	case !amount.IsPositive():
		return in, validationErr("amount must be positive")
	case amount.GreaterThan(MaxAdvanceAmount):
		return in, validationErr("amount exceeds %s", MaxAdvanceAmount.String())
	case !amount.Equal(amount.Round(amountMaxDigits)):
		return in, validationErr("amount has more than %d decimal places", amountMaxDigits)
	}

	return in, nil
}

func ValidateDecision(action entity.Action, comments *string) (*string, error) {
	if !action.Valid() {
		return nil, validationErr("unknown action %q", action)
	}

	if comments == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*comments)

	switch {
	case trimmed == "":
		return nil, nil
	case utf8.RuneCountInString(trimmed) > CommentsMaxLen:
		return nil, validationErr("comments exceed %d characters", CommentsMaxLen)
	}

	return &trimmed, nil
}

// ValidateFileName accepts a bare file name, without directories.
func ValidateFileName(name string) (string, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return "", validationErr("file name is required")
	case utf8.RuneCountInString(name) > FileNameMaxLen:
		return "", validationErr("file name exceeds %d characters", FileNameMaxLen)
	case strings.ContainsAny(name, `/\`) || name != path.Base(name) || name == "." || name == "..":
		return "", validationErr("file name must not contain a path")
	}

	return name, nil
}

// ValidateNewMessage trims the content. An attachment must be a key presigned for the sender.
func ValidateNewMessage(senderID string, in entity.NewMessage) (entity.NewMessage, error) {
	in.ReceiverID = strings.TrimSpace(in.ReceiverID)
	in.Content = strings.TrimSpace(in.Content)

	switch {
	case in.ReceiverID == "":
		return in, validationErr("receiver is required")
	case in.ReceiverID == senderID:
		return in, validationErr("cannot send a message to yourself")
	case in.Content == "":
		return in, validationErr("message content is required")
	case utf8.RuneCountInString(in.Content) > MessageMaxLen:
		return in, validationErr("message exceeds %d characters", MessageMaxLen)
	}

	if in.Attachment != nil {
		key := strings.TrimSpace(*in.Attachment)

		switch {
		case key == "":
			in.Attachment = nil
		case !strings.HasPrefix(key, messageAttachmentPrefix(senderID)) || strings.Contains(key, ".."):
			return in, validationErr("unknown attachment")
		default:
			in.Attachment = &key
		}
	}

	return in, nil
}

func messageAttachmentPrefix(senderID string) string {
	return "messages/" + senderID + "/"
}
