package record

import (
	"fmt"
	"sync"
)

// MemoryRepository keeps both collections in process memory. The tracker is
// a client-local system: records never outlive the process, so there is no
// durable backend behind this.
type MemoryRepository struct {
	mu           sync.RWMutex
	appointments []Appointment
	medications  []Medication
	events       []EventLog
	nextEventID  int64
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextEventID: 1}
}

// ListAppointments returns a snapshot copy in insertion order.
func (r *MemoryRepository) ListAppointments() []Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

// ListMedications returns a snapshot copy in insertion order.
func (r *MemoryRepository) ListMedications() []Medication {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Medication, len(r.medications))
	copy(out, r.medications)
	return out
}

func (r *MemoryRepository) GetAppointmentByID(id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appointments {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("appointment %s: %w", id, ErrRecordNotFound)
}

func (r *MemoryRepository) GetMedicationByID(id string) (*Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.medications {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, fmt.Errorf("medication %s: %w", id, ErrRecordNotFound)
}

// InsertAppointment appends an appointment. Used by fixture loading; the
// event-creation form only produces medications in the current scope.
func (r *MemoryRepository) InsertAppointment(a Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append(r.appointments, a)
	return nil
}

func (r *MemoryRepository) InsertMedication(m Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.medications = append(r.medications, m)
	return nil
}

// UpdateAppointment replaces the stored appointment with a matching id.
// All other records are untouched; an unmatched id changes nothing.
func (r *MemoryRepository) UpdateAppointment(a Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == a.ID {
			next := make([]Appointment, len(r.appointments))
			copy(next, r.appointments)
			next[i] = a
			r.appointments = next
			return nil
		}
	}
	return fmt.Errorf("appointment %s: %w", a.ID, ErrRecordNotFound)
}

func (r *MemoryRepository) UpdateMedication(m Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.medications {
		if r.medications[i].ID == m.ID {
			next := make([]Medication, len(r.medications))
			copy(next, r.medications)
			next[i] = m
			r.medications = next
			return nil
		}
	}
	return fmt.Errorf("medication %s: %w", m.ID, ErrRecordNotFound)
}

func (r *MemoryRepository) DeleteAppointment(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			next := make([]Appointment, 0, len(r.appointments)-1)
			next = append(next, r.appointments[:i]...)
			next = append(next, r.appointments[i+1:]...)
			r.appointments = next
			return nil
		}
	}
	return fmt.Errorf("appointment %s: %w", id, ErrRecordNotFound)
}

func (r *MemoryRepository) DeleteMedication(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.medications {
		if r.medications[i].ID == id {
			next := make([]Medication, 0, len(r.medications)-1)
			next = append(next, r.medications[:i]...)
			next = append(next, r.medications[i+1:]...)
			r.medications = next
			return nil
		}
	}
	return fmt.Errorf("medication %s: %w", id, ErrRecordNotFound)
}

func (r *MemoryRepository) InsertEvent(ev EventLog) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev.ID = r.nextEventID
	r.nextEventID++
	r.events = append(r.events, ev)
}

func (r *MemoryRepository) ListEvents() []EventLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]EventLog, len(r.events))
	copy(out, r.events)
	return out
}

func (r *MemoryRepository) Counts() (appointments, medications int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appointments), len(r.medications)
}
