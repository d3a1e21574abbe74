package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleAppointment() Appointment {
	return Appointment{
		ID:           "appt-1",
		Title:        "Arthritis Follow-up",
		Doctor:       "Dr. Neil",
		Specialty:    "Rheumatology",
		Date:         "2026-02-16",
		Time:         "11:00",
		Location:     "Downtown Clinic",
		Status:       AppointmentUpcoming,
		Instructions: "Arrive 15 minutes early.",
		Notes:        "Bring medication list.",
	}
}

func sampleMedication() Medication {
	m := Medication{
		ID:        "med-1",
		Name:      "Cortisone Pills",
		Dose:      "1 tablet (20mg)",
		Frequency: "Daily",
		Time:      "10:00",
		Status:    MedicationPending,
		NextDose:  "Today, 10:00",
	}
	m.SyncSchedule()
	return m
}

func TestAppointmentDetail(t *testing.T) {
	detail := sampleAppointment().Detail()

	assert.Equal(t, KindAppointment, detail.Kind)
	assert.Equal(t, "Appointment", detail.TypeLabel)
	assert.Equal(t, "Arthritis Follow-up", detail.EventName)
	assert.Equal(t, "Dr. Neil | Feb 16, 11:00", detail.Summary)
	assert.Equal(t, "2026-02-16", detail.DetailDate)
	assert.Equal(t, "11:00", detail.DetailTime)
	assert.Equal(t, "Downtown Clinic", detail.DetailLocation)
	assert.Equal(t, "Arrive 15 minutes early.", detail.DetailInstructions)
	assert.Equal(t, "Bring medication list.", detail.Notes)
}

func TestAppointmentDetailDefaultsBlankNotes(t *testing.T) {
	a := sampleAppointment()
	a.Notes = ""

	assert.Equal(t, "No extra notes.", a.Detail().Notes)
}

func TestMedicationDetail(t *testing.T) {
	detail := sampleMedication().Detail()

	assert.Equal(t, KindMedication, detail.Kind)
	assert.Equal(t, "Medication", detail.TypeLabel)
	assert.Equal(t, "Cortisone Pills", detail.EventName)
	assert.Equal(t, "1 tablet (20mg) | 10:00", detail.Summary)
	assert.Equal(t, "10:00", detail.MedicationTime)
	assert.Equal(t, "Daily", detail.MedicationFrequency)
	assert.Equal(t, "Daily, 10:00", detail.Schedule)
	assert.Equal(t, "Today, 10:00", detail.DetailTime)
	assert.Equal(t, "Home", detail.DetailLocation)
	assert.Equal(t, "No extra notes.", detail.Notes)
}

func TestMedicationDetailFallsBackToNextDose(t *testing.T) {
	m := sampleMedication()
	m.Time = ""
	m.NextDose = "Tomorrow, 10:00"

	detail := m.Detail()
	assert.Equal(t, "Tomorrow, 10:00", detail.MedicationTime)
	assert.Equal(t, "1 tablet (20mg) | Tomorrow, 10:00", detail.Summary)
}

func TestNewEditFormNilYieldsBlankDefaults(t *testing.T) {
	assert.Equal(t, EditForm{}, NewEditForm(nil))
}

func TestNewEditFormFlattensBothKinds(t *testing.T) {
	med := sampleMedication().Detail()
	form := NewEditForm(&med)
	assert.Equal(t, "Cortisone Pills", form.EventName)
	assert.Equal(t, "1 tablet (20mg)", form.MedicationDose)
	assert.Equal(t, "", form.Doctor) // unused fields carry empty strings

	appt := sampleAppointment().Detail()
	form = NewEditForm(&appt)
	assert.Equal(t, "Dr. Neil", form.Doctor)
	assert.Equal(t, "", form.MedicationDose)
}

func TestApplyEditFormMedication(t *testing.T) {
	detail := sampleMedication().Detail()
	form := NewEditForm(&detail)
	form.EventName = "Cortisone Forte"
	form.MedicationDose = "2 tablets (10mg)"
	form.MedicationTime = "17:30"
	form.MedicationFrequency = "Twice daily"
	form.Notes = "After dinner."

	updated := ApplyEditForm(detail, form)

	assert.Equal(t, KindMedication, updated.Kind)
	assert.Equal(t, "Twice daily, 17:30", updated.Schedule)
	assert.Equal(t, "Today, 17:30", updated.DetailTime)
	assert.Equal(t, "2 tablets (10mg) | 17:30", updated.Summary)
	assert.Equal(t, "After dinner.", updated.Notes)
	// Edit forms never change status.
	assert.Equal(t, string(MedicationPending), updated.Status)
}

func TestApplyEditFormPreservesStatusAndKind(t *testing.T) {
	detail := sampleMedication().Detail()
	detail.Status = string(MedicationTaken)

	form := NewEditForm(&detail)
	form.MedicationTime = "09:00"
	// A form can carry appointment fields; they must not flip the kind.
	form.Doctor = "Dr. Mallory"
	form.DetailDate = "2026-03-01"

	updated := ApplyEditForm(detail, form)
	assert.Equal(t, KindMedication, updated.Kind)
	assert.Equal(t, string(MedicationTaken), updated.Status)
	assert.Equal(t, "Daily, 09:00", updated.Schedule)
}

func TestApplyEditFormAppointment(t *testing.T) {
	detail := sampleAppointment().Detail()
	form := NewEditForm(&detail)
	form.EventName = "Cardiology Check"
	form.Doctor = "Dr. Choi"
	form.DetailDate = "2026-03-02"
	form.DetailTime = "09:15"
	form.DetailLocation = "Heart Center"

	updated := ApplyEditForm(detail, form)

	assert.Equal(t, KindAppointment, updated.Kind)
	assert.Equal(t, "Dr. Choi | Mar 2, 09:15", updated.Summary)
	assert.Equal(t, "2026-03-02", updated.DetailDate)
	assert.Equal(t, string(AppointmentUpcoming), updated.Status)
}

func TestIsDaily(t *testing.T) {
	m := sampleMedication()
	assert.True(t, m.IsDaily())

	m.Frequency = "Twice DAILY with meals"
	assert.True(t, m.IsDaily())

	m.Frequency = "Weekly"
	assert.False(t, m.IsDaily())

	m.Frequency = ""
	assert.False(t, m.IsDaily())
}

func TestSyncScheduleInvariant(t *testing.T) {
	m := sampleMedication()
	m.Frequency = "Weekly"
	m.Time = "08:45"
	m.SyncSchedule()
	assert.Equal(t, "Weekly, 08:45", m.Schedule)
}
