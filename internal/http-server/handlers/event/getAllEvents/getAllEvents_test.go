package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketbooker/internal/http-server/handlers/event/getAllEvents/mocks"
	"ticketbooker/internal/lib/logger/handlers/slogdiscard"
	"ticketbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvents := []models.Event{
		{
			ID:             1,
			Name:           "Concert A",
			Venue:          "Hall 1",
			Date:           "2025-01-01",
			TotalSeats:     50,
			SeatsAvailable: 45,
		},
		{
			ID:             2,
			Name:           "Concert B",
			Venue:          "Hall 2",
			Date:           "2025-02-01",
			TotalSeats:     100,
			SeatsAvailable: 100,
		},
	}

	testCases := []struct {
		name           string
		mockSetup      func(mock *mocks.EventsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with events",
			mockSetup: func(mock *mocks.EventsLister) {
				mock.On("ListEvents").Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, "Concert A", resp.Events[0].Name)
				assert.Equal(t, "Concert B", resp.Events[1].Name)
			},
		},
		{
			name: "Success with empty list",
			mockSetup: func(mock *mocks.EventsLister) {
				mock.On("ListEvents").Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Events)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(mock *mocks.EventsLister) {
				mock.On("ListEvents").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/events", nil)
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
