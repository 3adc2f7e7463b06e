package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/panelmart/internal/dto"
	"github.com/GlebRadaev/panelmart/internal/panelapi"
	"github.com/GlebRadaev/panelmart/internal/service/syncservice"
	"github.com/GlebRadaev/panelmart/pkg/auth"
)

func NewMock(t *testing.T) (*SyncHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func syncRequest(panelID string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/panels/"+panelID+"/sync", nil)
	r = r.WithContext(context.WithValue(context.Background(), auth.ResellerIDKey, 1))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", panelID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSyncPanelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		panelID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful sync",
			panelID: "2",
			prepareMock: func() {
				service.EXPECT().
					SyncPanel(gomock.Any(), 1, 2).
					Return(&syncservice.Summary{
						PanelID:      2,
						ResellerID:   1,
						TotalFromAPI: 5,
						NewlyAdded:   2,
						Updated:      3,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid panel id",
			panelID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "No access to panel",
			panelID: "2",
			prepareMock: func() {
				service.EXPECT().
					SyncPanel(gomock.Any(), 1, 2).
					Return(nil, syncservice.ErrAccessDenied)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Unknown panel",
			panelID: "404",
			prepareMock: func() {
				service.EXPECT().
					SyncPanel(gomock.Any(), 1, 404).
					Return(nil, syncservice.ErrPanelNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Panel unreachable",
			panelID: "2",
			prepareMock: func() {
				service.EXPECT().
					SyncPanel(gomock.Any(), 1, 2).
					Return(nil, panelapi.ErrAuthFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.SyncPanel(w, syncRequest(tt.panelID))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SyncResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 2, body.PanelID)
				assert.Equal(t, 5, body.TotalFromAPI)
				assert.Equal(t, 2, body.NewlyAdded)
				assert.Equal(t, 3, body.Updated)
			}
		})
	}
}
