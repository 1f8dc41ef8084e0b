package deleteEvent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketbooker/internal/http-server/handlers/event/deleteEvent/mocks"
	"ticketbooker/internal/lib/logger/handlers/slogdiscard"
	"ticketbooker/internal/models"
	"ticketbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvent := &models.Event{
		ID:             1,
		Name:           "Concert A",
		Venue:          "Hall 1",
		Date:           "2025-01-01",
		TotalSeats:     50,
		SeatsAvailable: 45,
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success returns removed record",
			url:  "/events/1",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 1).Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp DeleteResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Event)
				assert.Equal(t, "Concert A", resp.Event.Name)
			},
		},
		{
			name: "Not found",
			url:  "/events/42",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 42).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid id format",
			url:            "/events/abc",
			mockSetup:      func(mock *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name: "Internal server error",
			url:  "/events/1",
			mockSetup: func(mock *mocks.EventDeleter) {
				mock.On("DeleteEvent", 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/events/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockDeleter.AssertExpectations(t)
		})
	}
}
