package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/healthbuddy/health-tracker-core/internal/calendar"
	"github.com/healthbuddy/health-tracker-core/internal/conversation"
	"github.com/healthbuddy/health-tracker-core/internal/datekey"
	"github.com/healthbuddy/health-tracker-core/internal/record"
	"github.com/healthbuddy/health-tracker-core/internal/tracker"
)

func createMedicationHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in tracker.CreateMedicationInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		// Blank fields are legal; the service substitutes defaults.
		detail := svc.CreateMedication(in)
		writeJSON(w, http.StatusCreated, detail)
	}
}

func listAppointmentsHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ListUpcoming())
	}
}

func listMedicationsHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ListMedications())
	}
}

func saveEventHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var form record.EditForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		detail, err := svc.SaveEditedEvent(id, form)
		if err != nil {
			handleRecordError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func deleteEventHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.DeleteEvent(id); err != nil {
			handleRecordError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func completeRecordHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		detail, err := svc.CompleteRecord(id)
		if err != nil {
			handleRecordError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func recordDetailHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		detail, err := svc.OpenDetails(id)
		if err != nil {
			handleRecordError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

func openEditHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.OpenEdit())
	}
}

func monthAgendaHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(chi.URLParam(r, "year"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_year", "year must be numeric")
			return
		}
		month, err := strconv.Atoi(chi.URLParam(r, "month"))
		if err != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "invalid_month", "month must be 1-12")
			return
		}

		anchor := calendar.MonthAnchor{Year: year, Month: time.Month(month)}
		resp := MonthAgendaResponse{
			Month: anchor.Key(1)[:7],
			Label: anchor.Label(),
			Days:  svc.MonthAgenda(anchor),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func dayAgendaHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		// Malformed keys are not rejected: they yield an empty agenda and a
		// blank label, matching the soft-failure contract of the codec.
		entries := svc.EventsForDate(date)
		resp := DayAgendaResponse{
			Date:    date,
			Label:   datekey.FormatReadable(date),
			Entries: entries,
			Dots:    calendar.DotsForDay(entries),
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func remindersHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Reminders())
	}
}

func conversationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, conversation.Threads())
	}
}

func conversationMessagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		msgs := conversation.Messages(id)
		if msgs == nil {
			writeError(w, http.StatusNotFound, "thread_not_found", "unknown conversation id")
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func navigationHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Navigation())
	}
}

func goToHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoToRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		writeJSON(w, http.StatusOK, svc.GoTo(req.Screen))
	}
}

func goBackHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.GoBack())
	}
}

func eventLogHandler(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.EventLogs())
	}
}

func handleRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
