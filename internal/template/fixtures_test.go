package template

// baselineRecord mirrors the shape of the general swap template.
func baselineRecord() Record {
	return Record{
		"id":   "general",
		"name": "General Swap",
		"decisions": []any{
			"Throttle: Drive-by-wire (DBW) or cable?",
			"Accessories: keep PS/AC or delete?",
		},
		"phases": []any{
			map[string]any{"name": "Phase 1 — Planning", "bullets": []any{"Confirm engine generation."}},
			map[string]any{"name": "Phase 2 — Fitment", "bullets": []any{"Test-fit engine."}},
		},
		"subsystem_checks": map[string]any{
			"Mounts & Fitment": []any{"A", "B"},
			"Cooling":          []any{"Radiator mounted solid"},
		},
		"hours": map[string]any{
			"planning":   6,
			"fitment":    14,
			"plumbing":   10,
			"wiring":     16,
			"firstStart": 4,
			"shakedown":  6,
		},
	}
}

// chassisOverride mirrors the 4Runner detail block.
func chassisOverride() Record {
	return Record{
		"warnings": []any{"Rack/crossmember clearance: plan pan + headers together."},
		"hours":    map[string]any{"fitment": 18, "plumbing": 12},
		"subsystem_checks": map[string]any{
			"Mounts & Fitment": []any{"C"},
		},
	}
}
