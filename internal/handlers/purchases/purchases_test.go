package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dmoralesf/clinicore/internal/domain"
	"github.com/dmoralesf/clinicore/internal/dto"
	"github.com/dmoralesf/clinicore/internal/service/purchaseservice"
)

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPurchaseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase",
			body: `{"userId":1,"productId":5,"quantity":3,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 5, 3, decimal.NewFromFloat(15)).
					Return(41, decimal.NewFromInt(55), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Zero quantity rejected",
			body:         `{"userId":1,"productId":5,"quantity":0,"price":15}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Doctor cannot purchase",
			body: `{"userId":3,"productId":5,"quantity":1,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 3, 5, 1, decimal.NewFromFloat(15)).
					Return(0, decimal.Zero, purchaseservice.ErrInvalidBuyer)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Product discontinued",
			body: `{"userId":1,"productId":9,"quantity":1,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 9, 1, decimal.NewFromFloat(15)).
					Return(0, decimal.Zero, purchaseservice.ErrProductUnavailable)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Insufficient stock",
			body: `{"userId":1,"productId":5,"quantity":40,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 5, 40, decimal.NewFromFloat(15)).
					Return(0, decimal.Zero, domain.ErrInsufficientStock)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient balance",
			body: `{"userId":1,"productId":5,"quantity":3,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 5, 3, decimal.NewFromFloat(15)).
					Return(0, decimal.Zero, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"userId":1,"productId":5,"quantity":3,"price":15}`,
			prepareMock: func() {
				service.EXPECT().Purchase(gomock.Any(), 1, 5, 3, decimal.NewFromFloat(15)).
					Return(0, decimal.Zero, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/purchases", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Purchase(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PurchaseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 41, body.SaleID)
				assert.Equal(t, 55.0, body.NewBalance)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	orderDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "History returned",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().History(gomock.Any(), 1).Return([]domain.PurchaseRecord{
					{
						SaleID: 41, OrderDate: orderDate, PatientID: 1,
						ProductID: 5, Quantity: 3, UnitPrice: decimal.NewFromInt(15),
						ProductName: "Oximetro",
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().History(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/purchases/user/"+tt.userID, nil)
			r = withURLParam(r, "userID", tt.userID)
			w := httptest.NewRecorder()
			handler.GetHistory(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PurchaseRecordDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 1)
				assert.Equal(t, orderDate.Format(time.RFC3339), body[0].OrderDate)
			}
		})
	}
}

func TestGetDetailsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		saleID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Details returned",
			saleID: "41",
			prepareMock: func() {
				service.EXPECT().Details(gomock.Any(), 41).Return([]domain.PurchaseRecord{
					{SaleID: 41, ProductID: 5, Quantity: 3, UnitPrice: decimal.NewFromInt(15), ProductName: "Oximetro"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown sale",
			saleID: "99",
			prepareMock: func() {
				service.EXPECT().Details(gomock.Any(), 99).Return(nil, purchaseservice.ErrPurchaseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid sale id",
			saleID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/purchases/"+tt.saleID, nil)
			r = withURLParam(r, "id", tt.saleID)
			w := httptest.NewRecorder()
			handler.GetDetails(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
