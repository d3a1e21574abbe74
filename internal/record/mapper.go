package record

import (
	"strings"

	"github.com/healthbuddy/health-tracker-core/internal/datekey"
)

// This file is the single conversion boundary between stored records and the
// canonical detail view. No other package branches on record fields.

const (
	defaultNotes    = "No extra notes."
	defaultLocation = "Home"
)

// Detail projects an appointment into its canonical detail view.
func (a Appointment) Detail() DetailEvent {
	return DetailEvent{
		ID:                 a.ID,
		Kind:               KindAppointment,
		TypeLabel:          "Appointment",
		EventName:          a.Title,
		Summary:            a.Doctor + " | " + datekey.FormatDisplay(a.Date) + ", " + a.Time,
		Status:             string(a.Status),
		Doctor:             a.Doctor,
		Specialty:          a.Specialty,
		DetailDate:         a.Date,
		DetailTime:         a.Time,
		DetailLocation:     a.Location,
		DetailInstructions: a.Instructions,
		Notes:              orDefault(a.Notes, defaultNotes),
	}
}

// Detail projects a medication into its canonical detail view. Blank optional
// fields are substituted with display defaults rather than failing.
func (m Medication) Detail() DetailEvent {
	medTime := m.Time
	if medTime == "" {
		medTime = m.NextDose
	}
	frequency := m.Frequency
	if frequency == "" {
		frequency = m.Schedule
	}
	schedule := m.Schedule
	if schedule == "" {
		schedule = orDefault(m.Frequency, "Daily") + ", " + m.Time
	}

	return DetailEvent{
		ID:                  m.ID,
		Kind:                KindMedication,
		TypeLabel:           "Medication",
		EventName:           m.Name,
		Summary:             m.Dose + " | " + medTime,
		Status:              string(m.Status),
		MedicationDose:      m.Dose,
		MedicationTime:      medTime,
		MedicationFrequency: frequency,
		Schedule:            schedule,
		DetailTime:          m.NextDose,
		DetailLocation:      defaultLocation,
		DetailInstructions:  m.Instructions,
		Notes:               orDefault(m.Notes, defaultNotes),
	}
}

// NewEditForm flattens a detail event into the shared edit-form shape.
// A nil event yields blank defaults so one form state serves both layouts.
func NewEditForm(ev *DetailEvent) EditForm {
	if ev == nil {
		return EditForm{}
	}
	return EditForm{
		EventName:           ev.EventName,
		Schedule:            ev.Schedule,
		MedicationDose:      ev.MedicationDose,
		MedicationTime:      ev.MedicationTime,
		MedicationFrequency: ev.MedicationFrequency,
		Doctor:              ev.Doctor,
		Specialty:           ev.Specialty,
		DetailDate:          ev.DetailDate,
		DetailTime:          ev.DetailTime,
		DetailLocation:      ev.DetailLocation,
		DetailInstructions:  ev.DetailInstructions,
		Notes:               ev.Notes,
	}
}

// ApplyEditForm folds an edited form back into a detail event, re-deriving
// the computed fields. The output kind always equals the input kind, and the
// original status is preserved unconditionally: edit forms never change
// status and never convert between record kinds.
func ApplyEditForm(ev DetailEvent, form EditForm) DetailEvent {
	if ev.Kind == KindMedication {
		out := ev
		out.EventName = form.EventName
		out.MedicationDose = form.MedicationDose
		out.MedicationTime = form.MedicationTime
		out.MedicationFrequency = form.MedicationFrequency
		out.Schedule = form.MedicationFrequency + ", " + form.MedicationTime
		out.DetailTime = "Today, " + form.MedicationTime
		out.DetailLocation = orDefault(ev.DetailLocation, defaultLocation)
		out.Notes = form.Notes
		out.Summary = form.MedicationDose + " | " + form.MedicationTime
		return out
	}

	out := ev
	out.EventName = form.EventName
	out.Doctor = form.Doctor
	out.Specialty = form.Specialty
	out.DetailDate = form.DetailDate
	out.DetailTime = form.DetailTime
	out.DetailLocation = form.DetailLocation
	out.DetailInstructions = form.DetailInstructions
	out.Notes = form.Notes
	out.Summary = form.Doctor + " | " + datekey.FormatDisplay(form.DetailDate) + ", " + form.DetailTime
	return out
}

// IsDaily reports whether the medication recurs every calendar day.
func (m Medication) IsDaily() bool {
	return strings.Contains(strings.ToLower(m.Frequency), "daily")
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
