package api

import (
	"github.com/healthbuddy/health-tracker-core/internal/calendar"
	"github.com/healthbuddy/health-tracker-core/internal/record"
)

type GoToRequest struct {
	Screen string `json:"screen"`
}

type MonthAgendaResponse struct {
	Month string                      `json:"month"` // YYYY-MM
	Label string                      `json:"label"` // "February 2026"
	Days  map[string][]calendar.Entry `json:"days"`
}

type DayAgendaResponse struct {
	Date    string           `json:"date"`
	Label   string           `json:"label"` // "February 7, 2026"
	Entries []calendar.Entry `json:"entries"`
	Dots    []record.Kind    `json:"dots"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
