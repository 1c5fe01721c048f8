package app

import "github.com/alexanderramin/swapplan/internal/domain"

// ChassisView is a catalog listing row.
type ChassisView struct {
	Name        string
	Aliases     []string
	HasOverride bool
	Defaults    domain.CoreSystems
	Notes       []string
}

type EngineView struct {
	Name        string
	Family      string
	ECU         string
	Accessories string
	Notes       []string
}

type TransmissionView struct {
	Name  string
	Notes []string
}

// PresetView is a preset library entry. Index is 1-based.
type PresetView struct {
	Index        int
	Title        string
	Chassis      string
	Engine       string
	Transmission string
	Use          domain.UseCase
}

// Request converts a preset into a plan request.
func (p PresetView) Request() PlanRequest {
	return PlanRequest{
		Chassis:      p.Chassis,
		Engine:       p.Engine,
		Transmission: p.Transmission,
		Use:          string(p.Use),
	}
}

// TemplateView is a template rendered for inspection.
type TemplateView struct {
	Key        string
	Name       string
	Chassis    string
	Overridden bool
	Body       string
	HoursTotal float64
}
