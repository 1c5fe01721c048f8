package domain

import "strings"

type UseCase string

const (
	UseStreet  UseCase = "street"
	UseOffroad UseCase = "offroad"
	UseTrack   UseCase = "track"
)

// UseCases lists the accepted use cases in display order.
var UseCases = []UseCase{UseStreet, UseOffroad, UseTrack}

// ParseUseCase normalizes s and reports whether it names a known use case.
func ParseUseCase(s string) (UseCase, bool) {
	u := UseCase(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range UseCases {
		if u == known {
			return u, true
		}
	}
	return "", false
}

// Catalog entity kinds, used in lookup errors.
const (
	KindChassis      = "chassis"
	KindEngine       = "engine"
	KindTransmission = "transmission"
	KindUseCase      = "use case"
	KindPreset       = "preset"
)
