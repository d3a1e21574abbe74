// Command seed writes a YAML fixture of fake appointments and medications
// for api-server to load via FIXTURE_PATH.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/healthbuddy/health-tracker-core/internal/datekey"
	"github.com/healthbuddy/health-tracker-core/internal/record"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		out          = flag.String("out", "fixture.yaml", "output fixture path")
		appointments = flag.Int("appointments", 5, "number of appointments to generate")
		medications  = flag.Int("medications", 4, "number of medications to generate")
	)
	flag.Parse()

	log.Printf("seeding %d appointments and %d medications", *appointments, *medications)

	gofakeit.Seed(time.Now().UnixNano())

	fixture := &record.Fixture{
		Appointments: seedAppointments(*appointments),
		Medications:  seedMedications(*medications),
	}

	if err := fixture.Save(*out); err != nil {
		log.Fatalf("save fixture: %v", err)
	}

	log.Printf("fixture written to %s", *out)
}

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var frequencies = []string{"Daily", "Twice daily", "Weekly", "Daily with meals"}

var medicationNames = []string{
	"Cortisone Pills",
	"Hypertension Pills",
	"Iron Supplement",
	"Vitamin D Drops",
	"Cholesterol Tablets",
	"Allergy Relief",
	"Thyroid Tablets",
	"Pain Relief Gel Caps",
}

func seedAppointments(count int) []record.Appointment {
	now := time.Now()

	out := make([]record.Appointment, 0, count)
	for i := 0; i < count; i++ {
		day := now.AddDate(0, 0, gofakeit.Number(0, 30))
		spec := specialties[gofakeit.Number(0, len(specialties)-1)]

		out = append(out, record.Appointment{
			ID:           "appt-" + uuid.NewString(),
			Title:        spec + " Follow-up",
			Doctor:       "Dr. " + gofakeit.LastName(),
			Specialty:    spec,
			Date:         datekey.Make(day.Year(), day.Month(), day.Day()),
			Time:         fmt.Sprintf("%02d:%02d", gofakeit.Number(8, 17), gofakeit.Number(0, 3)*15),
			Location:     gofakeit.City() + " Clinic",
			Status:       record.AppointmentUpcoming,
			Instructions: "Arrive 15 minutes early with your health card.",
			Notes:        gofakeit.Sentence(8),
		})
	}
	return out
}

func seedMedications(count int) []record.Medication {
	out := make([]record.Medication, 0, count)
	for i := 0; i < count; i++ {
		clock := fmt.Sprintf("%02d:00", gofakeit.Number(7, 21))

		m := record.Medication{
			ID:           "med-" + uuid.NewString(),
			Name:         medicationNames[gofakeit.Number(0, len(medicationNames)-1)],
			Dose:         fmt.Sprintf("1 tablet (%dmg)", gofakeit.Number(1, 8)*5),
			Frequency:    frequencies[gofakeit.Number(0, len(frequencies)-1)],
			Time:         clock,
			Status:       record.MedicationPending,
			NextDose:     "Today, " + clock,
			Instructions: "Take with water.",
			Notes:        gofakeit.Sentence(6),
		}
		m.SyncSchedule()
		out = append(out, m)
	}
	return out
}
