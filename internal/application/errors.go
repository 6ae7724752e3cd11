package application

import "errors"

// Kind is the stable tag carried by every domain failure. Handlers map
// kinds to user-facing Portuguese strings through a single lookup table;
// the kinds themselves never reach chat output.
type Kind string

const (
	// Input format kinds.
	KindRegistrationError   Kind = "registration_error"
	KindEmailError          Kind = "email_error"
	KindDiscordIDError      Kind = "discord_id_error"
	KindSlashMissing        Kind = "slash_missing"
	KindNonNumericDateField Kind = "non_numeric_date_field"
	KindMonthOutOfRange     Kind = "month_out_of_range"
	KindDayInvalidForMonth  Kind = "day_invalid_for_month"
	KindYearNonPositive     Kind = "year_non_positive"
	KindInvalidDate         Kind = "invalid_date"
	KindInvalidTime         Kind = "invalid_time"
	KindInvalidTextLength   Kind = "invalid_text_length"

	// Domain rule kinds.
	KindDayOutOfRange             Kind = "day_out_of_range"
	KindTimeOutOfRange            Kind = "time_out_of_range"
	KindEntryTimeAfterExitTime    Kind = "entry_time_after_exit_time"
	KindDateOutOfRange            Kind = "date_out_of_range"
	KindOutOfRangeTerminationDate Kind = "out_of_range_termination_date"
	KindInvalidRequestPeriod      Kind = "invalid_request_period"
	KindMissingStartDate          Kind = "missing_start_date"

	// Reference kinds.
	KindMemberNotFound                Kind = "member_not_found"
	KindProjectNotFound               Kind = "project_not_found"
	KindCoordinatorNotFound           Kind = "coordinator_not_found"
	KindParticipationNotFound         Kind = "participation_not_found"
	KindParticipationNotFoundInServer Kind = "participation_not_found_in_server"
	KindParticipationClosed           Kind = "participation_closed"
	KindServerNotFound                Kind = "server_not_found"

	// Uniqueness kinds.
	KindCoordinatorAlreadyExists   Kind = "coordinator_already_exists"
	KindMemberAlreadyExists        Kind = "member_already_exists"
	KindProjectAlreadyExists       Kind = "project_already_exists"
	KindParticipationAlreadyExists Kind = "participation_already_exists"

	// Permission kind.
	KindNotAuthorized Kind = "not_authorized"
)

// Error is a domain failure tagged with a stable kind and, when the
// failure concerns a single input, the offending field name.
type Error struct {
	Kind  Kind
	Field string
}

// NewError builds a tagged error without field context.
func NewError(kind Kind) *Error {
	return &Error{Kind: kind}
}

// FieldError builds a tagged error naming the offending input field.
func FieldError(kind Kind, field string) *Error {
	return &Error{Kind: kind, Field: field}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return "application: " + string(e.Kind) + " (" + e.Field + ")"
	}
	return "application: " + string(e.Kind)
}

// Is matches any Error carrying the same kind, so errors.Is works against
// the sentinel values below regardless of field context.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e != nil && other != nil && e.Kind == other.Kind
}

// Sentinel instances for errors.Is comparisons.
var (
	ErrRegistration                = NewError(KindRegistrationError)
	ErrEmail                       = NewError(KindEmailError)
	ErrDiscordID                   = NewError(KindDiscordIDError)
	ErrSlashMissing                = NewError(KindSlashMissing)
	ErrNonNumericDateField         = NewError(KindNonNumericDateField)
	ErrMonthOutOfRange             = NewError(KindMonthOutOfRange)
	ErrDayInvalidForMonth          = NewError(KindDayInvalidForMonth)
	ErrYearNonPositive             = NewError(KindYearNonPositive)
	ErrInvalidDate                 = NewError(KindInvalidDate)
	ErrInvalidTime                 = NewError(KindInvalidTime)
	ErrInvalidTextLength           = NewError(KindInvalidTextLength)
	ErrDayOutOfRange               = NewError(KindDayOutOfRange)
	ErrTimeOutOfRange              = NewError(KindTimeOutOfRange)
	ErrEntryTimeAfterExitTime      = NewError(KindEntryTimeAfterExitTime)
	ErrDateOutOfRange              = NewError(KindDateOutOfRange)
	ErrOutOfRangeTerminationDate   = NewError(KindOutOfRangeTerminationDate)
	ErrInvalidRequestPeriod        = NewError(KindInvalidRequestPeriod)
	ErrMissingStartDate            = NewError(KindMissingStartDate)
	ErrMemberNotFound              = NewError(KindMemberNotFound)
	ErrProjectNotFound             = NewError(KindProjectNotFound)
	ErrCoordinatorNotFound         = NewError(KindCoordinatorNotFound)
	ErrParticipationNotFound       = NewError(KindParticipationNotFound)
	ErrParticipationNotInServer    = NewError(KindParticipationNotFoundInServer)
	ErrParticipationClosed         = NewError(KindParticipationClosed)
	ErrServerNotFound              = NewError(KindServerNotFound)
	ErrCoordinatorAlreadyExists    = NewError(KindCoordinatorAlreadyExists)
	ErrMemberAlreadyExists         = NewError(KindMemberAlreadyExists)
	ErrProjectAlreadyExists        = NewError(KindProjectAlreadyExists)
	ErrParticipationAlreadyExists  = NewError(KindParticipationAlreadyExists)
	ErrNotAuthorized               = NewError(KindNotAuthorized)
)
