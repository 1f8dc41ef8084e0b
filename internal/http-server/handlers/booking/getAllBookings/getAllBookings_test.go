package getAllBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketbooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"ticketbooker/internal/lib/logger/handlers/slogdiscard"
	"ticketbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testBookings := []models.Booking{
		{
			ID:          1,
			UserName:    "Alice",
			UserEmail:   "alice@example.com",
			EventID:     1,
			SeatsBooked: 5,
			BookingTime: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.BookingsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(mock *mocks.BookingsLister) {
				mock.On("ListBookings").Return(testBookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 1)
				assert.Equal(t, "Alice", resp.Bookings[0].UserName)
			},
		},
		{
			name: "Success with empty list",
			mockSetup: func(mock *mocks.BookingsLister) {
				mock.On("ListBookings").Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Bookings)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.BookingsLister) {
				mock.On("ListBookings").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/bookings", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockLister.AssertExpectations(t)
		})
	}
}
