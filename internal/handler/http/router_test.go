package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-dashboard/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/sse"
	attendanceService "github.com/cmlabs-hris/attendance-dashboard/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-dashboard/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/attendance-dashboard/internal/service/employee"
	reportService "github.com/cmlabs-hris/attendance-dashboard/internal/service/report"
	"github.com/cmlabs-hris/attendance-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	handler http.Handler
	store   *store.Store
	clock   *clock.Fixed
	hub     *sse.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	initial := store.Initial()
	initial.Employees = []employee.Employee{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Department: "Engineering", HireDate: "2023-01-15", Status: employee.StatusActive},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Department: "Marketing", HireDate: "2022-06-01", Status: employee.StatusActive},
	}
	initial.AttendanceRecords = []attendance.Record{
		{ID: "r1", EmployeeID: "2", Date: "2024-03-11", Status: attendance.StatusLeave},
	}

	st := store.NewWithState(initial, nil)
	clk := clock.At("2024-03-12", "09:00:00")
	hub := sse.NewHub(10)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	router := NewRouter(RouterOptions{Logger: logger, AllowedOrigins: []string{"*"}}, Handlers{
		State:      NewStateHandler(st),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(st, clk)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(st, clk, 8)),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(st, clk)),
		Report:     NewReportHandler(reportService.NewReportService(st, clk)),
		Events:     NewEventsHandler(hub, clk, time.Hour),
	})

	return &testServer{handler: router, store: st, clock: clk, hub: hub}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestEmployeeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(t, http.MethodGet, "/api/v1/employees?search=jane", nil)
	require.Equal(t, http.StatusOK, code)
	var list employee.ListEmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.TotalItems)
	assert.Equal(t, []string{"Engineering", "Marketing"}, list.Departments)

	code, env = srv.do(t, http.MethodPost, "/api/v1/employees", map[string]string{
		"name":       "Alice Wong",
		"email":      "alice@example.com",
		"department": "Sales",
	})
	require.Equal(t, http.StatusCreated, code)
	var created employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "2024-03-12", created.HireDate)

	code, env = srv.do(t, http.MethodPut, "/api/v1/employees/"+created.ID, map[string]string{
		"name":       "Alice Wong",
		"email":      "alice@example.com",
		"department": "Operations",
		"hire_date":  "2024-03-12",
		"status":     "inactive",
	})
	require.Equal(t, http.StatusOK, code)
	var updated employee.Employee
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Operations", updated.Department)
	assert.Equal(t, created.ID, updated.ID)

	code, _ = srv.do(t, http.MethodGet, "/api/v1/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = srv.do(t, http.MethodGet, "/api/v1/employees/2/attendance", nil)
	require.Equal(t, http.StatusOK, code)
	var history []attendance.Record
	require.NoError(t, json.Unmarshal(env.Data, &history))
	assert.Len(t, history, 1)

	code, _ = srv.do(t, http.MethodDelete, "/api/v1/employees/2", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, srv.store.Snapshot().AttendanceRecords)

	code, env = srv.do(t, http.MethodGet, "/api/v1/employees/2", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestEmployeeEndpoints_Validation(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(t, http.MethodPost, "/api/v1/employees", map[string]string{"email": "bad"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")

	code, env = srv.do(t, http.MethodGet, "/api/v1/employees?status=retired", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "status")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceFlow(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "1"})
	require.Equal(t, http.StatusOK, code)
	var rec attendance.Record
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "09:00:00", *rec.CheckIn)

	code, env = srv.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "1"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	srv.clock.Set(srv.clock.Now().Add(8*time.Hour + 30*time.Minute))
	code, env = srv.do(t, http.MethodPost, "/api/v1/attendance/check-out", map[string]string{"employee_id": "1"})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, 8.5, rec.WorkHours)
	assert.Equal(t, 0.5, rec.OvertimeHours)

	code, _ = srv.do(t, http.MethodPost, "/api/v1/attendance/check-out", map[string]string{"employee_id": "2"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = srv.do(t, http.MethodPut, "/api/v1/attendance/status", map[string]string{
		"employee_id": "2", "status": "half-day",
	})
	require.Equal(t, http.StatusOK, code)

	code, env = srv.do(t, http.MethodGet, "/api/v1/attendance/today", nil)
	require.Equal(t, http.StatusOK, code)
	var today attendance.ListAttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &today))
	assert.Equal(t, "2024-03-12", today.Date)
	assert.Len(t, today.Records, 2)

	code, env = srv.do(t, http.MethodGet, "/api/v1/attendance?date=2024-03-11", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &today))
	assert.Len(t, today.Records, 1)

	code, _ = srv.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "nobody"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDashboardAndState(t *testing.T) {
	srv := newTestServer(t)

	code, _ := srv.do(t, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"employee_id": "1"})
	require.Equal(t, http.StatusOK, code)

	code, env := srv.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	var dash struct {
		Date           string `json:"date"`
		AttendanceRate int    `json:"attendance_rate"`
		TodayRecords   []struct {
			EmployeeName string `json:"employee_name"`
		} `json:"today_records"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, "2024-03-12", dash.Date)
	assert.Equal(t, 50, dash.AttendanceRate)
	require.Len(t, dash.TodayRecords, 1)
	assert.Equal(t, "John Doe", dash.TodayRecords[0].EmployeeName)

	code, env = srv.do(t, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, code)
	var state store.State
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Len(t, state.Employees, 2)
	assert.Len(t, state.AttendanceRecords, 2)
}

func TestReportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(t, http.MethodGet, "/api/v1/reports?period=week", nil)
	require.Equal(t, http.StatusOK, code)
	var rep struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Trend     []json.RawMessage
	}
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	assert.Equal(t, "2024-03-10", rep.StartDate)
	assert.Equal(t, "2024-03-16", rep.EndDate)
	assert.Len(t, rep.Trend, 7)

	for _, path := range []string{
		"/api/v1/reports/trend?start_date=2024-03-01&end_date=2024-03-05",
		"/api/v1/reports/departments?period=month&department=Marketing",
		"/api/v1/reports/top-performers?limit=1",
	} {
		code, _ := srv.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, code, path)
	}

	code, _ = srv.do(t, http.MethodGet, "/api/v1/reports?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = srv.do(t, http.MethodGet, "/api/v1/reports/trend?start_date=0001-01-01&end_date=9999-12-31", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, env = srv.do(t, http.MethodGet, "/api/v1/reports?period=decade", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Error.Details, "period")
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(t, http.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)

	code, _ = srv.do(t, http.MethodPatch, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestEventsStream(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.handler)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, `"date":"2024-03-12"`)

	require.Eventually(t, func() bool { return srv.hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)
	srv.hub.Publish(sse.Event{Event: sse.EventClock, Data: map[string]string{"time": "09:00:01"}})

	var got []string
	for len(got) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimSpace(line); line != "" {
			got = append(got, line)
		}
	}
	assert.Equal(t, "event: clock", got[0])
	assert.Equal(t, `data: {"time":"09:00:01"}`, got[1])
}

func TestPublishStateChanges(t *testing.T) {
	srv := newTestServer(t)
	srv.store.Subscribe(PublishStateChanges(srv.hub))

	events, cleanup := srv.hub.Subscribe()
	defer cleanup()

	code, _ := srv.do(t, http.MethodDelete, "/api/v1/employees/2", nil)
	require.Equal(t, http.StatusOK, code)

	select {
	case ev := <-events:
		assert.Equal(t, sse.EventStateChanged, ev.Event)
		assert.Equal(t, StateChange{
			Action:            store.ActionDeleteEmployee,
			Employees:         1,
			AttendanceRecords: 0,
		}, ev.Data)
	case <-time.After(time.Second):
		t.Fatal("no state_changed event published")
	}
}
