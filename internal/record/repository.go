package record

import "errors"

var ErrRecordNotFound = errors.New("record not found")

// Repository owns the two record collections. All methods are synchronous
// and non-blocking; mutations are atomic replace-the-collection operations,
// so no partial write is ever observable.
type Repository interface {
	ListAppointments() []Appointment
	ListMedications() []Medication

	GetAppointmentByID(id string) (*Appointment, error)
	GetMedicationByID(id string) (*Medication, error)

	InsertAppointment(a Appointment) error
	InsertMedication(m Medication) error
	UpdateAppointment(a Appointment) error
	UpdateMedication(m Medication) error
	DeleteAppointment(id string) error
	DeleteMedication(id string) error

	// Audit trail
	InsertEvent(ev EventLog)
	ListEvents() []EventLog

	Counts() (appointments, medications int)
}
