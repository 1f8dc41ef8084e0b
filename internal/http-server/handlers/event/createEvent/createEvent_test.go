package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketbooker/internal/http-server/handlers/event/createEvent/mocks"
	"ticketbooker/internal/lib/logger/handlers/slogdiscard"
	"ticketbooker/internal/models"
	"ticketbooker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvent := &models.Event{
		ID:             123,
		Name:           "Concert A",
		Venue:          "Hall 1",
		Date:           "2025-01-01",
		TotalSeats:     50,
		SeatsAvailable: 50,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventAdder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"event_name": "Concert A",
				"venue": "Hall 1",
				"date": "2025-01-01",
				"total_seats": 50
			}`,
			mockSetup: func(mock *mocks.EventAdder) {
				mock.On("AddEvent", "Concert A", "Hall 1", "2025-01-01", 50).Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Event)
				assert.Equal(t, 123, resp.Event.ID)
				assert.Equal(t, 50, resp.Event.SeatsAvailable)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing event name",
			requestBody: `{
				"venue": "Hall 1",
				"date": "2025-01-01",
				"total_seats": 50
			}`,
			mockSetup:      func(mock *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Missing venue",
			requestBody: `{
				"event_name": "Concert A",
				"date": "2025-01-01",
				"total_seats": 50
			}`,
			mockSetup:      func(mock *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Venue")
			},
		},
		{
			name: "Zero total seats",
			requestBody: `{
				"event_name": "Concert A",
				"venue": "Hall 1",
				"date": "2025-01-01",
				"total_seats": 0
			}`,
			mockSetup:      func(mock *mocks.EventAdder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "TotalSeats")
			},
		},
		{
			name: "Manager validation error",
			requestBody: `{
				"event_name": " ",
				"venue": "Hall 1",
				"date": "2025-01-01",
				"total_seats": 50
			}`,
			mockSetup: func(mock *mocks.EventAdder) {
				mock.On("AddEvent", " ", "Hall 1", "2025-01-01", 50).
					Return(nil, service.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
			},
		},
		{
			name: "Internal server error",
			requestBody: `{
				"event_name": "Concert A",
				"venue": "Hall 1",
				"date": "2025-01-01",
				"total_seats": 50
			}`,
			mockSetup: func(mock *mocks.EventAdder) {
				mock.On("AddEvent", "Concert A", "Hall 1", "2025-01-01", 50).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewEventAdder(t)
			tc.mockSetup(mockAdder)

			handler := New(logger, mockAdder)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockAdder.AssertExpectations(t)
		})
	}
}
