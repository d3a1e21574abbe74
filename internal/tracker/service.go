// Package tracker is the service facade the UI boundary talks to. It owns
// the record store, the navigation stack, the active detail selection and
// the month-agenda cache, and serializes every operation so the engines
// always see a consistent snapshot.
package tracker

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthbuddy/health-tracker-core/internal/calendar"
	"github.com/healthbuddy/health-tracker-core/internal/conversation"
	"github.com/healthbuddy/health-tracker-core/internal/nav"
	"github.com/healthbuddy/health-tracker-core/internal/record"
	"github.com/healthbuddy/health-tracker-core/internal/reminder"
)

const (
	EventRecordCreated   = "RECORD_CREATED"
	EventRecordUpdated   = "RECORD_UPDATED"
	EventRecordDeleted   = "RECORD_DELETED"
	EventRecordCompleted = "RECORD_COMPLETED"
)

// Service wires the engines to the record store. All exported methods are
// atomic under one mutex, preserving the single-writer model while staying
// safe under a concurrent HTTP server.
type Service struct {
	mu       sync.Mutex
	repo     record.Repository
	nav      *nav.Stack
	selected *record.DetailEvent
	clock    func() time.Time

	// Month-agenda cache: invalidated and fully rebuilt whenever the
	// record sets or the visible month change. Never updated in place.
	agenda       map[string][]calendar.Entry
	agendaAnchor calendar.MonthAnchor
	agendaValid  bool
}

func NewService(repo record.Repository, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:  repo,
		nav:   nav.NewStack(),
		clock: clock,
	}
}

// CreateMedicationInput carries the new-event form fields. Blank fields get
// defaults; the form never fails.
type CreateMedicationInput struct {
	Name      string `json:"name"`
	Dose      string `json:"dose"`
	Time      string `json:"time"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
}

// CreateMedication applies form defaults, appends the medication and
// returns its detail view. The new record becomes the active selection and
// navigation moves to the details screen.
func (s *Service) CreateMedication(in CreateMedicationInput) record.DetailEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := trimOrDefault(in.Name, "New Medication")
	dose := trimOrDefault(in.Dose, "1 dose")
	clock := trimOrDefault(in.Time, "10:00")
	frequency := trimOrDefault(in.Frequency, "Daily")
	notes := trimOrDefault(in.Notes, "No extra notes.")

	m := record.Medication{
		ID:        "med-" + uuid.NewString(),
		Name:      name,
		Frequency: frequency,
		Time:      clock,
		Status:    record.MedicationPending,
		Dose:      dose,
		NextDose:  "Today, " + clock,
		Notes:     notes,
	}
	m.SyncSchedule()

	if err := s.repo.InsertMedication(m); err != nil {
		// The in-memory store cannot fail an insert; log and carry on.
		log.Printf("insert medication %s: %v", m.ID, err)
	}
	s.logEvent(m.ID, record.KindMedication, EventRecordCreated, map[string]any{
		"name": m.Name, "schedule": m.Schedule,
	})
	s.invalidateAgenda()

	detail := m.Detail()
	s.selected = &detail
	s.nav.GoTo("event-details")

	return detail
}

// SaveEditedEvent routes the edited form by the stored record's kind and
// merges only the fields relevant to that kind back into the one matching
// record. The record's status is never changed by an edit and the record
// kind never flips. An unmatched id leaves both collections untouched and
// reports record.ErrRecordNotFound.
func (s *Service) SaveEditedEvent(id string, form record.EditForm) (record.DetailEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, err := s.repo.GetMedicationByID(id); err == nil {
		updated := record.ApplyEditForm(m.Detail(), form)

		m.Name = updated.EventName
		m.Dose = updated.MedicationDose
		m.Time = updated.MedicationTime
		m.Frequency = updated.MedicationFrequency
		m.Schedule = updated.Schedule
		m.NextDose = updated.DetailTime
		m.Instructions = updated.DetailInstructions
		m.Notes = updated.Notes

		if err := s.repo.UpdateMedication(*m); err != nil {
			return record.DetailEvent{}, err
		}
		s.logEvent(m.ID, record.KindMedication, EventRecordUpdated, map[string]any{"schedule": m.Schedule})
		s.invalidateAgenda()
		s.selected = &updated
		return updated, nil
	}

	a, err := s.repo.GetAppointmentByID(id)
	if err != nil {
		return record.DetailEvent{}, err
	}
	updated := record.ApplyEditForm(a.Detail(), form)

	a.Title = updated.EventName
	a.Doctor = updated.Doctor
	a.Specialty = updated.Specialty
	a.Date = updated.DetailDate
	a.Time = updated.DetailTime
	a.Location = updated.DetailLocation
	a.Instructions = updated.DetailInstructions
	a.Notes = updated.Notes

	if err := s.repo.UpdateAppointment(*a); err != nil {
		return record.DetailEvent{}, err
	}
	s.logEvent(a.ID, record.KindAppointment, EventRecordUpdated, map[string]any{"date": a.Date, "time": a.Time})
	s.invalidateAgenda()
	s.selected = &updated
	return updated, nil
}

// DeleteEvent removes the record with the given id from whichever
// collection holds it, clears the active selection and navigates home.
// An unknown id changes nothing and reports record.ErrRecordNotFound.
func (s *Service) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind := record.KindMedication
	err := s.repo.DeleteMedication(id)
	if errors.Is(err, record.ErrRecordNotFound) {
		kind = record.KindAppointment
		err = s.repo.DeleteAppointment(id)
	}
	if err != nil {
		return err
	}

	s.logEvent(id, kind, EventRecordDeleted, nil)
	s.invalidateAgenda()
	s.selected = nil
	s.nav.GoTo(nav.ScreenHome)
	return nil
}

// CompleteRecord marks a medication as taken or an appointment as attended.
// This is the only status mutation outside record creation.
func (s *Service) CompleteRecord(id string) (record.DetailEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var detail record.DetailEvent
	if m, err := s.repo.GetMedicationByID(id); err == nil {
		m.Status = record.MedicationTaken
		if err := s.repo.UpdateMedication(*m); err != nil {
			return record.DetailEvent{}, err
		}
		detail = m.Detail()
		s.logEvent(id, record.KindMedication, EventRecordCompleted, nil)
	} else {
		a, err := s.repo.GetAppointmentByID(id)
		if err != nil {
			return record.DetailEvent{}, err
		}
		a.Status = record.AppointmentAttended
		if err := s.repo.UpdateAppointment(*a); err != nil {
			return record.DetailEvent{}, err
		}
		detail = a.Detail()
		s.logEvent(id, record.KindAppointment, EventRecordCompleted, nil)
	}
	s.invalidateAgenda()

	if s.selected != nil && s.selected.ID == id {
		s.selected = &detail
	}
	return detail, nil
}

// ListUpcoming returns a read-only snapshot of the appointment collection.
func (s *Service) ListUpcoming() []record.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListAppointments()
}

// ListMedications returns a read-only snapshot of the medication collection.
func (s *Service) ListMedications() []record.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListMedications()
}

// OpenDetails selects the record and navigates to the details screen.
func (s *Service) OpenDetails(id string) (record.DetailEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var detail record.DetailEvent
	if m, err := s.repo.GetMedicationByID(id); err == nil {
		detail = m.Detail()
	} else {
		a, err := s.repo.GetAppointmentByID(id)
		if err != nil {
			return record.DetailEvent{}, err
		}
		detail = a.Detail()
	}

	s.selected = &detail
	s.nav.GoTo("event-details")
	return detail, nil
}

// OpenEdit navigates to the edit screen and returns the flattened form for
// the active selection, or blank defaults when nothing is selected.
func (s *Service) OpenEdit() record.EditForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.GoTo("edit-event")
	return record.NewEditForm(s.selected)
}

// NavigationState is the view of the navigation machine exposed upward.
type NavigationState struct {
	Screen  string   `json:"screen"`
	Title   string   `json:"title"`
	History []string `json:"history"`
}

func (s *Service) GoTo(screen string) NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.GoTo(screen)
	return s.navigationState()
}

func (s *Service) GoBack() NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nav.GoBack()
	return s.navigationState()
}

func (s *Service) Navigation() NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.navigationState()
}

func (s *Service) navigationState() NavigationState {
	return NavigationState{
		Screen:  s.nav.Current(),
		Title:   nav.Title(s.nav.Current()),
		History: s.nav.History(),
	}
}

// MonthAgenda returns the materialized per-day agenda for the anchored
// month. The cache is rebuilt in full whenever the anchor differs or any
// mutation has invalidated it; it is never patched incrementally.
func (s *Service) MonthAgenda(anchor calendar.MonthAnchor) map[string][]calendar.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.agendaValid || s.agendaAnchor != anchor {
		s.agenda = calendar.BuildMonthAgenda(anchor, s.repo.ListAppointments(), s.repo.ListMedications())
		s.agendaAnchor = anchor
		s.agendaValid = true
	}
	return s.agenda
}

// EventsForDate computes one day's ordered agenda. Selecting a day is
// idempotent and has no side effect on the store.
func (s *Service) EventsForDate(dateKey string) []calendar.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calendar.EventsForDate(dateKey, s.repo.ListAppointments(), s.repo.ListMedications())
}

// RemindersView is the reminder feed plus the derived notification badge.
type RemindersView struct {
	Reminders []reminder.Reminder `json:"reminders"`
	Unread    int                 `json:"unreadMessages"`
	Total     int                 `json:"total"`
	Badge     string              `json:"badge"`
}

// Reminders recomputes the outstanding-alert feed from the current record
// sets. Nothing is cached between calls.
func (s *Service) Reminders() RemindersView {
	s.mu.Lock()
	defer s.mu.Unlock()

	feed := reminder.Derive(s.clock(), s.repo.ListAppointments(), s.repo.ListMedications())
	unread := conversation.UnreadTotal()
	total := len(feed) + unread

	return RemindersView{
		Reminders: feed,
		Unread:    unread,
		Total:     total,
		Badge:     reminder.BadgeLabel(total),
	}
}

// EventLogs returns the audit trail of store mutations.
func (s *Service) EventLogs() []record.EventLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.ListEvents()
}

// Counts reports collection sizes for health reporting.
func (s *Service) Counts() (appointments, medications int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Counts()
}

func (s *Service) invalidateAgenda() {
	s.agendaValid = false
}

func (s *Service) logEvent(recordID string, kind record.Kind, eventType string, payload map[string]any) {
	var data []byte
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			log.Printf("failed to marshal event payload for %s: %v", eventType, err)
			data = nil
		}
	}

	s.repo.InsertEvent(record.EventLog{
		EventType: eventType,
		RecordID:  recordID,
		Kind:      kind,
		Payload:   data,
		CreatedAt: s.clock(),
	})
}

// trimOrDefault trims form input before storing it, unlike the display-side
// defaulting in record, which keeps stored values verbatim.
func trimOrDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}
