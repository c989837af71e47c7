package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func createRecordViaAPI(t *testing.T, app *fiber.App, token string, habitID string, payload map[string]any) recordView {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/habits/"+habitID+"/records/", token, payload)
	response.expect(t, fiber.StatusCreated, "")
	record := recordView{}
	response.decode(t, &record)
	return record
}

func TestCreateRecordDefaults(t *testing.T) {
	app, handler, _ := newTestApp(t)
	user, token := newHabitTestUser(t, app, handler, "owner@example.com")
	habit := createHabitViaAPI(t, app, token, map[string]any{"name": "Push-ups", "habit_type": "quantitative"})
	before := time.Now().UTC().Add(-time.Second)

	record := createRecordViaAPI(t, app, token, habit.ID.String(), map[string]any{})
	if !record.Completed || record.Value != 0 {
		t.Fatalf("expected completed=true value=0, got %#v", record)
	}
	if record.HabitID != habit.ID || record.OwnerID != user.ID {
		t.Fatalf("expected record to belong to habit owner, got %#v", record)
	}
	if record.CompletedAt.Before(before) {
		t.Fatalf("expected completed_at to default to now, got %s", record.CompletedAt)
	}

	explicit := createRecordViaAPI(t, app, token, habit.ID.String(), map[string]any{
		"completed":    false,
		"value":        25,
		"completed_at": "2026-03-01T06:30:00Z",
	})
	if explicit.Completed || explicit.Value != 25 {
		t.Fatalf("unexpected explicit record: %#v", explicit)
	}
	if !explicit.CompletedAt.Equal(time.Date(2026, time.March, 1, 6, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected completed_at %s", explicit.CompletedAt)
	}
}

func TestCreateRecordRejectsNegativeValue(t *testing.T) {
	app, handler, _ := newTestApp(t)
	_, token := newHabitTestUser(t, app, handler, "owner@example.com")
	habit := createHabitViaAPI(t, app, token, map[string]any{"name": "Pages"})

	doJSON(t, app, http.MethodPost, "/habits/"+habit.ID.String()+"/records/", token, map[string]any{"value": -1}).
		expect(t, fiber.StatusBadRequest, "value must be greater than or equal to 0")
}

func TestListRecordsOrderedByCompletion(t *testing.T) {
	app, handler, _ := newTestApp(t)
	_, token := newHabitTestUser(t, app, handler, "owner@example.com")
	habit := createHabitViaAPI(t, app, token, map[string]any{"name": "Walk"})
	other := createHabitViaAPI(t, app, token, map[string]any{"name": "Swim"})

	for _, completedAt := range []string{"2026-03-03T08:00:00Z", "2026-03-01T08:00:00Z", "2026-03-02T08:00:00Z"} {
		createRecordViaAPI(t, app, token, habit.ID.String(), map[string]any{"completed_at": completedAt})
	}
	createRecordViaAPI(t, app, token, other.ID.String(), map[string]any{})

	response := doJSON(t, app, http.MethodGet, "/habits/"+habit.ID.String()+"/records/?limit=2", token, nil)
	response.expect(t, fiber.StatusOK, "")
	page := pageView[recordView]{}
	response.decode(t, &page)
	if page.Count != 3 || len(page.Data) != 2 {
		t.Fatalf("expected count 3 with 2 rows, got count=%d rows=%d", page.Count, len(page.Data))
	}
	if page.Data[0].CompletedAt.Day() != 1 || page.Data[1].CompletedAt.Day() != 2 {
		t.Fatalf("expected records ordered by completed_at, got %s then %s", page.Data[0].CompletedAt, page.Data[1].CompletedAt)
	}
}

func TestRecordMustBelongToPathHabit(t *testing.T) {
	app, handler, _ := newTestApp(t)
	_, token := newHabitTestUser(t, app, handler, "owner@example.com")
	_, strangerToken := newHabitTestUser(t, app, handler, "stranger@example.com")
	habit := createHabitViaAPI(t, app, token, map[string]any{"name": "Walk"})
	other := createHabitViaAPI(t, app, token, map[string]any{"name": "Swim"})
	record := createRecordViaAPI(t, app, token, habit.ID.String(), map[string]any{})

	doJSON(t, app, http.MethodGet, "/habits/"+other.ID.String()+"/records/"+record.ID.String(), token, nil).
		expect(t, fiber.StatusNotFound, "Record not found")
	doJSON(t, app, http.MethodGet, "/habits/"+habit.ID.String()+"/records/"+uuid.NewString(), token, nil).
		expect(t, fiber.StatusNotFound, "Record not found")
	doJSON(t, app, http.MethodGet, "/habits/"+habit.ID.String()+"/records/"+record.ID.String(), strangerToken, nil).
		expect(t, fiber.StatusNotFound, "Habit not found")
	doJSON(t, app, http.MethodGet, "/habits/"+habit.ID.String()+"/records/oops", token, nil).
		expect(t, fiber.StatusBadRequest, "invalid record id")
}

func TestUpdateAndDeleteRecord(t *testing.T) {
	app, handler, _ := newTestApp(t)
	_, token := newHabitTestUser(t, app, handler, "owner@example.com")
	habit := createHabitViaAPI(t, app, token, map[string]any{"name": "Pages", "habit_type": "quantitative"})
	record := createRecordViaAPI(t, app, token, habit.ID.String(), map[string]any{"value": 10})
	path := "/habits/" + habit.ID.String() + "/records/" + record.ID.String()

	response := doJSON(t, app, http.MethodPut, path, token, map[string]any{"completed": false})
	response.expect(t, fiber.StatusOK, "")
	updated := recordView{}
	response.decode(t, &updated)
	if updated.Completed || updated.Value != 10 || !updated.CompletedAt.Equal(record.CompletedAt) {
		t.Fatalf("expected only completed to change, got %#v", updated)
	}

	doJSON(t, app, http.MethodPut, path, token, map[string]any{"value": -3}).
		expect(t, fiber.StatusBadRequest, "value must be greater than or equal to 0")

	doJSON(t, app, http.MethodDelete, path, token, nil).expect(t, fiber.StatusOK, "")
	doJSON(t, app, http.MethodGet, path, token, nil).expect(t, fiber.StatusNotFound, "Record not found")
}
