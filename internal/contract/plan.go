package contract

import "github.com/alexanderramin/swapplan/internal/app"

type PlanRequest = app.PlanRequest

func NewPlanRequest(chassis, engine, transmission string) PlanRequest {
	return app.NewPlanRequest(chassis, engine, transmission)
}

type Selection = app.Selection

type PlanResponse = app.PlanResponse

type PlanErrorCode = app.PlanErrorCode

const (
	PlanErrMissingSelection PlanErrorCode = app.PlanErrMissingSelection
	PlanErrUnknownKey       PlanErrorCode = app.PlanErrUnknownKey
	PlanErrShapeMismatch    PlanErrorCode = app.PlanErrShapeMismatch
)

type PlanError = app.PlanError

// IsPlanError reports whether err carries a PlanError with the given code.
func IsPlanError(err error, code PlanErrorCode) bool {
	return app.IsPlanError(err, code)
}
