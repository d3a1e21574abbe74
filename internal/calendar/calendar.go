// Package calendar computes per-day agendas from the current record sets.
// All functions are pure reads over snapshots; the engine never mutates
// records.
package calendar

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/healthbuddy/health-tracker-core/internal/datekey"
	"github.com/healthbuddy/health-tracker-core/internal/record"
)

// Entry pairs one date with one occurring event for agenda rendering.
// Exactly one of Appointment/Medication is set, matching Kind; both are
// shared read-only views of the stored record.
type Entry struct {
	ID          string              `json:"id"`
	Kind        record.Kind         `json:"type"`
	Time        string              `json:"time"`
	Appointment *record.Appointment `json:"appointment,omitempty"`
	Medication  *record.Medication  `json:"medication,omitempty"`
}

// MonthAnchor names a visible month. Only year and month participate in
// agenda computation.
type MonthAnchor struct {
	Year  int
	Month time.Month
}

// Days returns the number of calendar days in the anchored month.
func (a MonthAnchor) Days() int {
	return time.Date(a.Year, a.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Key builds the date key for a day of the anchored month.
func (a MonthAnchor) Key(day int) string {
	return datekey.Make(a.Year, a.Month, day)
}

// Label renders the month bar heading, e.g. "February 2026".
func (a MonthAnchor) Label() string {
	return time.Date(a.Year, a.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// EventsForDate returns the ordered agenda for one date: appointments whose
// date matches exactly, plus every daily-recurring medication. Ordering is
// appointments before medications, then by clock time, stable on ties;
// entries with missing or unparsable times sort last.
func EventsForDate(dateKey string, appointments []record.Appointment, medications []record.Medication) []Entry {
	var entries []Entry

	for i := range appointments {
		a := &appointments[i]
		if a.Date != dateKey {
			continue
		}
		entries = append(entries, Entry{
			ID:          a.ID,
			Kind:        record.KindAppointment,
			Time:        a.Time,
			Appointment: a,
		})
	}

	for i := range medications {
		m := &medications[i]
		if !m.IsDaily() {
			continue
		}
		entries = append(entries, Entry{
			// Per-date id: the same medication occurs on every day.
			ID:         m.ID + "-" + dateKey,
			Kind:       record.KindMedication,
			Time:       m.Time,
			Medication: m,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := kindRank(entries[i].Kind), kindRank(entries[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return clockMinutes(entries[i].Time) < clockMinutes(entries[j].Time)
	})

	return entries
}

// BuildMonthAgenda materializes the agenda for every day of the month.
// The result is a full recomputation; callers cache and invalidate it
// wholesale when the record sets or the visible month change.
func BuildMonthAgenda(anchor MonthAnchor, appointments []record.Appointment, medications []record.Medication) map[string][]Entry {
	agenda := make(map[string][]Entry, anchor.Days())
	for day := 1; day <= anchor.Days(); day++ {
		key := anchor.Key(day)
		agenda[key] = EventsForDate(key, appointments, medications)
	}
	return agenda
}

// dotCap limits the day-density indicator, not the underlying agenda.
const dotCap = 3

// DotsForDay reduces a day's entries to at most three type tags,
// appointment tags first.
func DotsForDay(entries []Entry) []record.Kind {
	dots := make([]record.Kind, 0, dotCap)
	for _, e := range entries {
		if e.Kind == record.KindAppointment {
			dots = append(dots, record.KindAppointment)
		}
	}
	for _, e := range entries {
		if e.Kind == record.KindMedication {
			dots = append(dots, record.KindMedication)
		}
	}
	if len(dots) > dotCap {
		dots = dots[:dotCap]
	}
	return dots
}

func kindRank(k record.Kind) int {
	switch k {
	case record.KindAppointment:
		return 0
	case record.KindMedication:
		return 1
	default:
		return 99
	}
}

// clockMinutes parses HH:MM into minutes since midnight. Unparsable values
// sort as infinitely late.
func clockMinutes(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return math.MaxInt
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return math.MaxInt
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return math.MaxInt
	}
	return hours*60 + minutes
}
