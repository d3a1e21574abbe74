package record

import "time"

// Kind discriminates the two stored record kinds. It is the only tag
// downstream consumers branch on.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindMedication  Kind = "medication"
)

// AppointmentStatus is an open string enum; the values below are the ones the
// tracker produces itself, but edits may carry arbitrary labels.
type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "Upcoming"
	AppointmentAttended  AppointmentStatus = "Attended"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// MedicationStatus is binary: a medication is either pending or taken.
// It is a flag, not a dose history.
type MedicationStatus string

const (
	MedicationPending MedicationStatus = "Pending"
	MedicationTaken   MedicationStatus = "Taken"
)

// Appointment is a one-off clinical visit pinned to a single date key.
type Appointment struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	Doctor       string            `json:"doctor" yaml:"doctor"`
	Specialty    string            `json:"specialty" yaml:"specialty"`
	Date         string            `json:"date" yaml:"date"` // YYYY-MM-DD
	Time         string            `json:"time" yaml:"time"` // HH:MM
	Location     string            `json:"location" yaml:"location"`
	Status       AppointmentStatus `json:"status" yaml:"status"`
	Instructions string            `json:"instructions" yaml:"instructions"`
	Notes        string            `json:"notes" yaml:"notes"`
}

// Medication is a recurring dosing schedule. Recurrence is signalled solely
// by the word "daily" appearing in Frequency, case-insensitively.
type Medication struct {
	ID           string           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Dose         string           `json:"dose" yaml:"dose"`
	Frequency    string           `json:"frequency" yaml:"frequency"`
	Time         string           `json:"time" yaml:"time"` // HH:MM
	Schedule     string           `json:"schedule" yaml:"schedule"`
	Status       MedicationStatus `json:"status" yaml:"status"`
	NextDose     string           `json:"nextDose" yaml:"next_dose"`
	Instructions string           `json:"instructions" yaml:"instructions"`
	Notes        string           `json:"notes" yaml:"notes"`
}

// SyncSchedule re-derives the display schedule. Schedule must always equal
// "{frequency}, {time}" after any mutation of Frequency or Time.
func (m *Medication) SyncSchedule() {
	m.Schedule = m.Frequency + ", " + m.Time
}

// DetailEvent is the canonical, discriminant-tagged projection of exactly one
// Appointment or Medication. It is a transient view model: saving one always
// translates back into a patch on the originating record.
type DetailEvent struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"type"`
	TypeLabel string `json:"typeLabel"`
	EventName string `json:"eventName"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`

	// Appointment-only fields.
	Doctor    string `json:"doctor,omitempty"`
	Specialty string `json:"specialty,omitempty"`

	// Medication-only fields.
	MedicationDose      string `json:"medicationDose,omitempty"`
	MedicationTime      string `json:"medicationTime,omitempty"`
	MedicationFrequency string `json:"medicationFrequency,omitempty"`
	Schedule            string `json:"schedule,omitempty"`

	// Shared detail bindings.
	DetailDate         string `json:"detailDate,omitempty"`
	DetailTime         string `json:"detailTime,omitempty"`
	DetailLocation     string `json:"detailLocation,omitempty"`
	DetailInstructions string `json:"detailInstructions,omitempty"`
	Notes              string `json:"notes"`
}

// EditForm is the single flattened form shape serving both edit layouts.
// Fields that do not apply to the active kind simply carry empty strings.
type EditForm struct {
	EventName           string `json:"eventName"`
	Schedule            string `json:"schedule"`
	MedicationDose      string `json:"medicationDose"`
	MedicationTime      string `json:"medicationTime"`
	MedicationFrequency string `json:"medicationFrequency"`
	Doctor              string `json:"doctor"`
	Specialty           string `json:"specialty"`
	DetailDate          string `json:"detailDate"`
	DetailTime          string `json:"detailTime"`
	DetailLocation      string `json:"detailLocation"`
	DetailInstructions  string `json:"detailInstructions"`
	Notes               string `json:"notes"`
}

// EventLog is one entry in the in-process audit trail of store mutations.
type EventLog struct {
	ID        int64     `json:"id"`
	EventType string    `json:"eventType"`
	RecordID  string    `json:"recordId"`
	Kind      Kind      `json:"kind"`
	Payload   []byte    `json:"payload,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
