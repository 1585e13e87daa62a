package apperrors

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the closed set of failure categories the API can report. Every
// kind maps to exactly one HTTP status in Status.
type Kind int

const (
	KindUnknown Kind = iota
	KindMalformedIdentifier
	KindMissingInput
	KindInvalidTopicInput
	KindInvalidArticleInput
	KindUnexpectedParameter
	KindInvalidSortColumn
	KindInvalidOrder
	KindInvalidLimit
	KindInvalidPage
	KindNotFound
	KindReferentialIntegrity
)

// pgForeignKeyViolation is the Postgres SQLSTATE for a foreign key
// violation, the storage-level fallback when an existence check was
// skipped or raced with a delete.
const pgForeignKeyViolation = "23503"

// Error is a tagged failure descriptor. Repositories return these instead
// of raw storage errors so handlers can forward them untouched.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func MissingInput() *Error {
	return &Error{Kind: KindMissingInput, Msg: "missing input"}
}

// BadRequest is the generic 400 for malformed path ids and unparseable
// request bodies.
func BadRequest() *Error {
	return &Error{Kind: KindMalformedIdentifier, Msg: "Bad request"}
}

// Status maps a kind to its HTTP status. Malformed-type errors are 400,
// allow-list value misses are 404, matching the convention recorded in
// DESIGN.md.
func (k Kind) Status() int {
	switch k {
	case KindMalformedIdentifier,
		KindMissingInput,
		KindInvalidTopicInput,
		KindInvalidArticleInput,
		KindUnexpectedParameter,
		KindInvalidLimit,
		KindInvalidPage:
		return http.StatusBadRequest
	case KindInvalidSortColumn,
		KindInvalidOrder,
		KindNotFound,
		KindReferentialIntegrity:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// From folds an arbitrary error into the taxonomy. Tagged errors pass
// through; record-not-found and foreign key violations from the storage
// layer become 404s; anything else is an unknown 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return &Error{Kind: KindReferentialIntegrity, Msg: "not found"}
	}
	return &Error{Kind: KindUnknown, Msg: "Internal server error"}
}
