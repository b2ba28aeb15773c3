package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/investment-club/internal/http/middlewarectx"
	"github.com/magabrotheeeer/investment-club/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyCreateInvestment) (*models.Investment, error) {
	args := m.Called(ctx, userUID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Investment), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := models.DummyCreateInvestment{PlanID: "vip0", Option: "50", BankName: "BAI"}
	created := &models.Investment{ID: "inv-1", UserUID: "uid-1", PlanID: "vip0",
		Option: "50", Amount: 10000, ExpectedGain: 15000, Status: models.StatusPending}

	tests := []struct {
		name           string
		requestBody    interface{}
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное создание вложения",
			requestBody: validBody,
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", validBody).Return(created, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"inv-1"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "недопустимый вариант доходности",
			requestBody:    models.DummyCreateInvestment{PlanID: "vip0", Option: "60", BankName: "BAI"},
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Option must be one of the allowed values`,
		},
		{
			name:           "отсутствует авторизация",
			requestBody:    validBody,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "достигнут лимит вложений",
			requestBody: validBody,
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", validBody).
					Return(nil, models.ErrConcurrentLimit)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"concurrent investments limit reached"}`,
		},
		{
			name:        "неизвестный план",
			requestBody: validBody,
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", validBody).
					Return(nil, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"unknown plan or bank"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validBody,
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", validBody).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create investment"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/investments", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
