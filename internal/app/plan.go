package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
)

// PlanRequest is a swap selection. Chassis, Engine and Transmission are
// required; an empty Use means street.
type PlanRequest struct {
	Chassis      string
	Engine       string
	Transmission string
	Use          string
	Now          *time.Time
}

func NewPlanRequest(chassis, engine, transmission string) PlanRequest {
	return PlanRequest{
		Chassis:      chassis,
		Engine:       engine,
		Transmission: transmission,
		Use:          string(domain.UseStreet),
	}
}

// Selection holds the labels the user picked, trimmed.
type Selection struct {
	Chassis      string
	Engine       string
	Transmission string
	Use          domain.UseCase
}

// PlanResponse is a generated swap plan.
type PlanResponse struct {
	Selection    Selection
	Chassis      *domain.Chassis
	Engine       *domain.Engine
	Transmission *domain.Transmission
	Config       *template.PlanTemplate
	HoursTotal   float64
	Overridden   bool
	GeneratedAt  time.Time
}

type PlanErrorCode string

const (
	PlanErrMissingSelection PlanErrorCode = "MISSING_SELECTION"
	PlanErrUnknownKey       PlanErrorCode = "UNKNOWN_KEY"
	PlanErrShapeMismatch    PlanErrorCode = "SHAPE_MISMATCH"
)

// PlanError is a user-facing generation failure. Field names the offending
// selection or template field.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Field   string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewMissingSelectionError reports every absent required field at once.
func NewMissingSelectionError(fields []string) *PlanError {
	return &PlanError{
		Code:    PlanErrMissingSelection,
		Message: "pick " + joinFields(fields),
		Field:   strings.Join(fields, ","),
	}
}

func NewUnknownKeyError(kind, value string) *PlanError {
	return &PlanError{
		Code:    PlanErrUnknownKey,
		Message: fmt.Sprintf("unknown %s %q", kind, value),
		Field:   kind,
	}
}

// NewShapeMismatchError wraps a template merge failure.
func NewShapeMismatchError(chassis string, err *template.ShapeMismatchError) *PlanError {
	return &PlanError{
		Code:    PlanErrShapeMismatch,
		Message: fmt.Sprintf("chassis %q override: %s", chassis, err.Error()),
		Field:   err.Field,
		Err:     err,
	}
}

// IsPlanError reports whether err carries a PlanError with the given code.
func IsPlanError(err error, code PlanErrorCode) bool {
	var pe *PlanError
	return errors.As(err, &pe) && pe.Code == code
}

func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
	}
}
