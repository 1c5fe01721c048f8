package domain

import "time"

// CoreSystems holds the per-chassis default approach for each major subsystem.
type CoreSystems struct {
	Mounts    string
	OilPan    string
	Wiring    string
	Cooling   string
	Fuel      string
	Exhaust   string
	Driveline string
}

// Chassis is a selectable vehicle platform. OverrideYAML holds the optional
// partial template applied on top of the baseline; empty means no override.
type Chassis struct {
	ID           string
	Name         string
	Aliases      []string
	Position     int
	Defaults     CoreSystems
	Notes        []string
	OverrideYAML string
	CreatedAt    time.Time
}

// HasOverride reports whether the chassis adjusts the baseline template.
func (c *Chassis) HasOverride() bool {
	return c.OverrideYAML != ""
}

type Engine struct {
	ID          string
	Name        string
	Family      string
	Position    int
	ECU         string
	Accessories string
	Notes       []string
	CreatedAt   time.Time
}

type Transmission struct {
	ID        string
	Name      string
	Position  int
	Notes     []string
	CreatedAt time.Time
}

// Preset is a saved selection offered in the preset library.
type Preset struct {
	ID           string
	Seq          int
	Title        string
	Chassis      string
	Engine       string
	Transmission string
	Use          UseCase
	CreatedAt    time.Time
}

// Template is a stored plan template body.
type Template struct {
	ID         string
	Key        string
	Name       string
	IsBaseline bool
	BodyYAML   string
	CreatedAt  time.Time
}
