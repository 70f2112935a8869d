package month_view

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendar/models"
)

type fakeService struct {
	view *models.MonthView
	err  error

	gotYear  int
	gotMonth time.Month
}

func (f *fakeService) MonthView(_ context.Context, year int, month time.Month) (*models.MonthView, error) {
	f.gotYear = year
	f.gotMonth = month
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, path string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, &fakeLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/calendar/{year}/{month}", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}

func decemberView() *models.MonthView {
	blocked := func(dayKey string) *models.AllocationView {
		return &models.AllocationView{
			DayKey:     dayKey,
			OwnerID:    nil,
			RangeStart: "2025-12-24",
			RangeEnd:   "2025-12-26",
			Kind:       "blocked",
		}
	}

	view := &models.MonthView{
		Year:        2025,
		Month:       12,
		Allocations: []*models.AllocationView{blocked("2025-12-24"), blocked("2025-12-25")},
	}

	for dayNum := 1; dayNum <= 31; dayNum++ {
		date := time.Date(2025, time.December, dayNum, 0, 0, 0, 0, time.Local)
		dayKey := date.Format("2006-01-02")

		day := models.DayView{Date: dayKey, Status: models.StatusAvailable}
		if dayKey == "2025-12-24" || dayKey == "2025-12-25" {
			day.Status = models.StatusBlocked
			day.Allocation = blocked(dayKey)
		}
		view.Days = append(view.Days, day)
	}

	return view
}

func TestHandle_ZeroIndexedMonth(t *testing.T) {
	// Месяц 11 в URL - это декабрь
	svc := &fakeService{view: decemberView()}

	rec := doRequest(t, svc, "/api/v1/calendar/2025/11")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, svc.gotYear)
	assert.Equal(t, time.December, svc.gotMonth)

	var resp MonthViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// В ответе месяц тоже нумеруется с нуля
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 11, resp.Month)
	require.Len(t, resp.Days, 31)

	require.Len(t, resp.Allocations, 2)
	for _, alloc := range resp.Allocations {
		assert.Equal(t, "blocked", alloc.Kind)
		assert.Nil(t, alloc.OwnerID)
	}
	assert.Equal(t, "2025-12-24", resp.Allocations[0].Date)
	assert.Equal(t, "2025-12-25", resp.Allocations[1].Date)
}

func TestHandle_JanuaryIsMonthZero(t *testing.T) {
	svc := &fakeService{view: &models.MonthView{Year: 2025, Month: 1}}

	rec := doRequest(t, svc, "/api/v1/calendar/2025/0")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.January, svc.gotMonth)
}

func TestHandle_MonthOutOfRange(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/api/v1/calendar/2025/12")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.gotYear)
}

func TestHandle_InvalidYear(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "/api/v1/calendar/abcd/5")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
