package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/healthbuddy/health-tracker-core/internal/record"
	"github.com/healthbuddy/health-tracker-core/internal/tracker"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := record.NewMemoryRepository()
	assert.NoError(t, record.DemoFixture().Populate(repo))

	fixed := func() time.Time {
		return time.Date(2026, time.February, 7, 14, 0, 0, 0, time.Local)
	}
	return NewRouter(RouterConfig{
		Service: tracker.NewService(repo, fixed),
		Clock:   NewClock(),
		Env:     "test",
		Version: "test",
	})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestCreateMedicationEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/medications", map[string]string{})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	detail := decode[record.DetailEvent](t, rec)
	assert.Equal(t, "New Medication", detail.EventName)
	assert.Equal(t, "Daily, 10:00", detail.Schedule)
	assert.Equal(t, string(record.MedicationPending), detail.Status)

	// The new record shows up in the collection listing.
	rec = doRequest(t, router, http.MethodGet, "/medications", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]record.Medication](t, rec), 3)
}

func TestCreateMedicationRejectsBadJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/medications", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request_body", decode[ErrorResponse](t, rec).Error)
}

func TestSaveEventEndpoint(t *testing.T) {
	router := newTestRouter(t)

	form := record.EditForm{
		EventName:           "Cortisone Forte",
		MedicationDose:      "2 tablets",
		MedicationTime:      "12:00",
		MedicationFrequency: "Daily",
	}
	rec := doRequest(t, router, http.MethodPut, "/events/med-1", form)
	assert.Equal(t, http.StatusOK, rec.Code)

	detail := decode[record.DetailEvent](t, rec)
	assert.Equal(t, "Cortisone Forte", detail.EventName)
	assert.Equal(t, "Daily, 12:00", detail.Schedule)
	// Edits never touch status.
	assert.Equal(t, string(record.MedicationTaken), detail.Status)
}

func TestSaveEventUnknownIDIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/events/ghost", record.EditForm{EventName: "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "record_not_found", decode[ErrorResponse](t, rec).Error)
}

func TestDeleteEventEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/events/med-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/events/med-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/medications", nil)
	assert.Len(t, decode[[]record.Medication](t, rec), 1)
}

func TestCompleteRecordEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/records/med-2/complete", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(record.MedicationTaken), decode[record.DetailEvent](t, rec).Status)

	rec = doRequest(t, router, http.MethodPost, "/records/appt-1/complete", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, string(record.AppointmentAttended), decode[record.DetailEvent](t, rec).Status)
}

func TestRecordDetailAndEditFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/records/appt-1/detail", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	detail := decode[record.DetailEvent](t, rec)
	assert.Equal(t, "Arthritis Follow-up", detail.EventName)
	assert.Equal(t, "Dr. Neil | Feb 16, 11:00", detail.Summary)

	rec = doRequest(t, router, http.MethodPost, "/selection/edit", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	form := decode[record.EditForm](t, rec)
	assert.Equal(t, "Arthritis Follow-up", form.EventName)
	assert.Equal(t, "2026-02-16", form.DetailDate)

	rec = doRequest(t, router, http.MethodGet, "/navigation", nil)
	assert.Equal(t, "edit-event", decode[tracker.NavigationState](t, rec).Screen)
}

func TestMonthAgendaEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/calendar/2026/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[MonthAgendaResponse](t, rec)
	assert.Equal(t, "2026-02", resp.Month)
	assert.Equal(t, "February 2026", resp.Label)
	assert.Len(t, resp.Days, 28)
	assert.Len(t, resp.Days["2026-02-16"], 3)
}

func TestMonthAgendaRejectsBadMonth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/calendar/2026/13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_month", decode[ErrorResponse](t, rec).Error)

	rec = doRequest(t, router, http.MethodGet, "/calendar/abcd/2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDayAgendaEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/calendar/day/2026-02-16", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[DayAgendaResponse](t, rec)
	assert.Equal(t, "February 16, 2026", resp.Label)
	assert.Len(t, resp.Entries, 3)
	assert.Equal(t, record.KindAppointment, resp.Entries[0].Kind)
	assert.Len(t, resp.Dots, 3)
}

func TestDayAgendaMalformedKeyIsSoft(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/calendar/day/garbage", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[DayAgendaResponse](t, rec)
	assert.Empty(t, resp.Label)
	assert.Empty(t, resp.Entries)
}

func TestRemindersEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/reminders", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	view := decode[tracker.RemindersView](t, rec)
	assert.Len(t, view.Reminders, 2)
	assert.Equal(t, 3, view.Unread)
	assert.Equal(t, "5", view.Badge)
}

func TestConversationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/conversations", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/conversations/thread-neil/messages", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/conversations/thread-missing/messages", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "thread_not_found", decode[ErrorResponse](t, rec).Error)
}

func TestNavigationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/navigation/goto", GoToRequest{Screen: "calendar"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "calendar", decode[tracker.NavigationState](t, rec).Screen)

	rec = doRequest(t, router, http.MethodPost, "/navigation/goto", GoToRequest{Screen: "event-details"})
	state := decode[tracker.NavigationState](t, rec)
	assert.Equal(t, []string{"home", "calendar"}, state.History)

	rec = doRequest(t, router, http.MethodPost, "/navigation/back", nil)
	assert.Equal(t, "calendar", decode[tracker.NavigationState](t, rec).Screen)
}

func TestEventLogEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doRequest(t, router, http.MethodPost, "/medications", map[string]string{"name": "Iron Supplement"})

	rec := doRequest(t, router, http.MethodGet, "/events/log", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	events := decode[[]record.EventLog](t, rec)
	assert.Len(t, events, 1)
	assert.Equal(t, tracker.EventRecordCreated, events[0].EventType)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	live := decode[LivenessResponse](t, rec)
	assert.Equal(t, "ok", live.Status)

	rec = doRequest(t, router, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	ready := decode[ReadinessResponse](t, rec)
	assert.Equal(t, 1, ready.Appointments)
	assert.Equal(t, 2, ready.Medications)
}
