package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers map them to 404, 400 and 409.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)

// WorkflowError carries a kind and a caller-facing message.
type WorkflowError struct {
	Kind error
	Msg  string
}

func (e *WorkflowError) Error() string {
	return e.Msg
}

func (e *WorkflowError) Is(target error) bool {
	return target == e.Kind
}

func notFound(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func badRequest(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...interface{}) error {
	return &WorkflowError{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// lookup converts a gorm miss into a NotFound naming the entity.
func lookup(err error, entity string, id interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("%s %v not found", entity, id)
	}
	return err
}
