package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/alexndrfrd/programatorultau/internal/domain"
)

type fakeBookingService struct {
	createCalls int
	createErr   error
	created     domain.Booking

	byDate  []domain.Booking
	slots   []string
	listErr error

	all        []domain.Booking
	lastLimit  int
	lastOffset int
}

func (f *fakeBookingService) Create(_ context.Context, date, timeSlot, name, email, phone string) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = domain.Booking{ID: "b-1", Date: date, Time: timeSlot, Name: name, Email: email, Phone: phone}
	return &f.created, nil
}

func (f *fakeBookingService) GetByDate(_ context.Context, date string) ([]domain.Booking, []string, error) {
	return f.byDate, f.slots, f.listErr
}

func (f *fakeBookingService) BookedSlots(_ context.Context, date string) ([]string, error) {
	return f.slots, f.listErr
}

func (f *fakeBookingService) ListAll(_ context.Context, limit, offset int) ([]domain.Booking, error) {
	f.lastLimit, f.lastOffset = limit, offset
	return f.all, nil
}

func newBookingRouter(svc BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.GetByDate)
	r.GET("/api/bookings/slots", h.Slots)
	r.GET("/api/bookings/all", h.ListAll)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"date":"2024-12-20","time":"10:00","name":"Ion Popescu","email":"ion@example.com","phone":"+40 123 456 789"}`

func TestCreateBooking_Created(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{}
	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", validBody)

	req.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Success bool           `json:"success"`
		Data    domain.Booking `json:"data"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	req.True(resp.Success)
	req.Equal("b-1", resp.Data.ID)
	req.Equal("10:00", resp.Data.Time)
	req.Equal(1, svc.createCalls)
}

func TestCreateBooking_ValidationNeverReachesService(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"invalid calendar date", `{"date":"2024-13-40","time":"10:00","name":"Ion Popescu","email":"ion@example.com","phone":"12345"}`, "date"},
		{"invalid time", `{"date":"2024-12-20","time":"25:99","name":"Ion Popescu","email":"ion@example.com","phone":"12345"}`, "time"},
		{"invalid email", `{"date":"2024-12-20","time":"10:00","name":"Ion Popescu","email":"not-an-email","phone":"12345"}`, "email"},
		{"name too short", `{"date":"2024-12-20","time":"10:00","name":"I","email":"ion@example.com","phone":"12345"}`, "name"},
		{"phone too short", `{"date":"2024-12-20","time":"10:00","name":"Ion Popescu","email":"ion@example.com","phone":"123"}`, "phone"},
		{"missing date", `{"time":"10:00","name":"Ion Popescu","email":"ion@example.com","phone":"12345"}`, "date"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			svc := &fakeBookingService{}
			w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", tc.body)

			req.Equal(http.StatusBadRequest, w.Code)
			req.Zero(svc.createCalls, "service must not be called on invalid input")

			var resp struct {
				Code   string `json:"code"`
				Errors []struct {
					Field string `json:"field"`
				} `json:"errors"`
			}
			req.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			req.Equal(codeValidationFailed, resp.Code)
			var fields []string
			for _, e := range resp.Errors {
				fields = append(fields, e.Field)
			}
			req.Contains(fields, tc.field)
		})
	}
}

func TestCreateBooking_MalformedJSON(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{}
	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", `{"date":`)

	req.Equal(http.StatusBadRequest, w.Code)
	req.Zero(svc.createCalls)
}

func TestCreateBooking_Conflict(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{createErr: domain.ErrSlotTaken}
	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", validBody)

	req.Equal(http.StatusConflict, w.Code)
	req.Contains(w.Body.String(), codeSlotTaken)
}

func TestCreateBooking_UnknownSlot(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{createErr: domain.ErrUnknownSlot}
	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", validBody)

	req.Equal(http.StatusBadRequest, w.Code)
	req.Contains(w.Body.String(), codeUnknownSlot)
}

func TestCreateBooking_InternalError(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{createErr: context.DeadlineExceeded}
	w := doJSON(t, newBookingRouter(svc), http.MethodPost, "/api/bookings", validBody)

	req.Equal(http.StatusInternalServerError, w.Code)
	req.Contains(w.Body.String(), codeInternalError)
	// internal detail is not leaked
	req.NotContains(w.Body.String(), "deadline")
}

func TestGetBookings_DateParam(t *testing.T) {
	req := require.New(t)
	r := newBookingRouter(&fakeBookingService{})

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	req.Equal(http.StatusBadRequest, w.Code)
	req.Contains(w.Body.String(), codeMissingDate)

	w = doJSON(t, r, http.MethodGet, "/api/bookings?date=20-12-2024", "")
	req.Equal(http.StatusBadRequest, w.Code)
	req.Contains(w.Body.String(), codeInvalidDate)
}

func TestGetBookings_EmptyDateReturnsEmptyArrays(t *testing.T) {
	req := require.New(t)
	w := doJSON(t, newBookingRouter(&fakeBookingService{}), http.MethodGet, "/api/bookings?date=2030-01-01", "")

	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), `"bookedSlots":[]`)
	req.Contains(w.Body.String(), `"bookings":[]`)
}

func TestGetBookings_ReturnsSlotsAndBookings(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{
		byDate: []domain.Booking{{ID: "b-1", Date: "2024-12-20", Time: "10:00", Name: "Ion Popescu"}},
		slots:  []string{"10:00"},
	}
	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/api/bookings?date=2024-12-20", "")

	req.Equal(http.StatusOK, w.Code)
	var resp struct {
		Date        string           `json:"date"`
		BookedSlots []string         `json:"bookedSlots"`
		Bookings    []domain.Booking `json:"bookings"`
	}
	req.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	req.Equal("2024-12-20", resp.Date)
	req.Equal([]string{"10:00"}, resp.BookedSlots)
	req.Len(resp.Bookings, 1)
}

func TestListAll_PassesPagingAndCounts(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{all: []domain.Booking{{ID: "b-1"}, {ID: "b-2"}}}
	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/api/bookings/all?limit=50&offset=100", "")

	req.Equal(http.StatusOK, w.Code)
	req.Equal(50, svc.lastLimit)
	req.Equal(100, svc.lastOffset)
	req.Contains(w.Body.String(), `"count":2`)
}

func TestListAll_DefaultsPaging(t *testing.T) {
	req := require.New(t)
	svc := &fakeBookingService{}
	w := doJSON(t, newBookingRouter(svc), http.MethodGet, "/api/bookings/all", "")

	req.Equal(http.StatusOK, w.Code)
	req.Equal(100, svc.lastLimit)
	req.Equal(0, svc.lastOffset)
	req.Contains(w.Body.String(), `"data":[]`)
}
