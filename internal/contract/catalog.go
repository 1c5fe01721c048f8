package contract

import "github.com/alexanderramin/swapplan/internal/app"

type ChassisView = app.ChassisView

type EngineView = app.EngineView

type TransmissionView = app.TransmissionView

type PresetView = app.PresetView

type TemplateView = app.TemplateView
