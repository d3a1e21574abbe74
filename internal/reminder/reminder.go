// Package reminder derives the outstanding-alert feed from the current
// record sets. The feed is ephemeral: recomputed from scratch on every read,
// never persisted or deduplicated across calls.
package reminder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/healthbuddy/health-tracker-core/internal/datekey"
	"github.com/healthbuddy/health-tracker-core/internal/record"
)

// Reminder is one time-labeled alert derived from an outstanding record.
type Reminder struct {
	ID        string      `json:"id"`
	Kind      record.Kind `json:"type"`
	Title     string      `json:"title"`
	Body      string      `json:"body"`
	TimeLabel string      `json:"timeLabel"`
}

// Derive emits one reminder per appointment not yet attended and per
// medication not yet taken. Appointment reminders precede medication
// reminders; within each group, source-collection order is preserved.
func Derive(now time.Time, appointments []record.Appointment, medications []record.Medication) []Reminder {
	var out []Reminder

	for _, a := range appointments {
		if strings.EqualFold(string(a.Status), "attended") {
			continue
		}
		out = append(out, Reminder{
			ID:        "push-appt-" + a.ID,
			Kind:      record.KindAppointment,
			Title:     "Appointment reminder",
			Body:      fmt.Sprintf("%s with %s at %s.", a.Title, a.Doctor, a.Location),
			TimeLabel: RelativeLabel(now, a.Date, a.Time),
		})
	}

	for _, m := range medications {
		if strings.EqualFold(string(m.Status), "taken") {
			continue
		}
		label := m.NextDose
		if label == "" {
			label = RelativeLabel(now, "", m.Time)
		}
		out = append(out, Reminder{
			ID:        "push-med-" + m.ID,
			Kind:      record.KindMedication,
			Title:     "Medication alarm",
			Body:      fmt.Sprintf("%s (%s) at %s.", m.Name, m.Dose, m.Time),
			TimeLabel: label,
		})
	}

	return out
}

// RelativeLabel turns a date key and clock time into a human label relative
// to now, at local calendar-day granularity: "Today, 17:00", "Tomorrow",
// "Feb 16, 11:00", or "Soon" when neither part is known. Unparsable date
// keys degrade to the clock time alone.
func RelativeLabel(now time.Time, dateKey, clock string) string {
	if dateKey == "" {
		if clock != "" {
			return "Today, " + clock
		}
		return "Soon"
	}

	d, err := datekey.Parse(dateKey)
	if err != nil {
		return clock
	}

	eventDay := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	// Round so a DST-shortened or -lengthened day still counts as one day.
	diffDays := int(math.Round(eventDay.Sub(today).Hours() / 24))

	switch diffDays {
	case 0:
		return withClock("Today", clock)
	case 1:
		return withClock("Tomorrow", clock)
	default:
		return withClock(datekey.FormatDisplay(dateKey), clock)
	}
}

// badgeCap is the largest count shown exactly; anything above renders "99+".
const badgeCap = 99

// BadgeLabel formats the notification badge value.
func BadgeLabel(count int) string {
	if count > badgeCap {
		return "99+"
	}
	return strconv.Itoa(count)
}

func withClock(day, clock string) string {
	if clock == "" {
		return day
	}
	return day + ", " + clock
}
