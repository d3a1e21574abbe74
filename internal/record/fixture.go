package record

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML seed-file shape produced by cmd/seed and loaded at
// startup when FIXTURE_PATH is set.
type Fixture struct {
	Appointments []Appointment `yaml:"appointments"`
	Medications  []Medication  `yaml:"medications"`
}

// LoadFixture reads and normalizes a YAML fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	f.Normalize()

	return &f, nil
}

// Save writes the fixture as YAML with owner-only permissions.
func (f *Fixture) Save(path string) error {
	f.Normalize()

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// Normalize fills in missing statuses and re-derives medication schedules so
// hand-edited fixtures still satisfy the schedule invariant.
func (f *Fixture) Normalize() {
	for i := range f.Appointments {
		if f.Appointments[i].Status == "" {
			f.Appointments[i].Status = AppointmentUpcoming
		}
	}
	for i := range f.Medications {
		m := &f.Medications[i]
		if m.Status == "" {
			m.Status = MedicationPending
		}
		if m.Frequency == "" {
			m.Frequency = "Daily"
		}
		m.SyncSchedule()
		if m.NextDose == "" {
			m.NextDose = "Today, " + m.Time
		}
	}
}

// Populate inserts every fixture record into the repository.
func (f *Fixture) Populate(repo Repository) error {
	for _, a := range f.Appointments {
		if err := repo.InsertAppointment(a); err != nil {
			return fmt.Errorf("insert appointment %s: %w", a.ID, err)
		}
	}
	for _, m := range f.Medications {
		if err := repo.InsertMedication(m); err != nil {
			return fmt.Errorf("insert medication %s: %w", m.ID, err)
		}
	}
	return nil
}

// DemoFixture is the built-in dataset used when no fixture file is
// configured. It mirrors the sample data the product ships with.
func DemoFixture() *Fixture {
	f := &Fixture{
		Appointments: []Appointment{
			{
				ID:           "appt-1",
				Title:        "Arthritis Follow-up",
				Doctor:       "Dr. Neil",
				Specialty:    "Rheumatology",
				Date:         "2026-02-16",
				Time:         "11:00",
				Location:     "Downtown Clinic",
				Instructions: "Arrive 15 minutes early with your health card.",
				Status:       AppointmentUpcoming,
				Notes:        "Bring your current medication list and blood pressure notes.",
			},
		},
		Medications: []Medication{
			{
				ID:           "med-1",
				Name:         "Cortisone Pills",
				Frequency:    "Daily",
				Time:         "10:00",
				Status:       MedicationTaken,
				Dose:         "1 tablet (20mg)",
				Instructions: "Take after breakfast with water.",
				NextDose:     "Tomorrow, 10:00",
				Notes:        "No grapefruit juice within 2 hours of dose.",
			},
			{
				ID:           "med-2",
				Name:         "Hypertension Pills",
				Frequency:    "Daily",
				Time:         "17:00",
				Status:       MedicationPending,
				Dose:         "1 tablet (10mg)",
				Instructions: "Take in the evening. Avoid skipping doses.",
				NextDose:     "Today, 17:00",
				Notes:        "Record blood pressure before taking medication.",
			},
		},
	}
	f.Normalize()
	return f
}
