package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/dmoralesf/clinicore/docs"
	assignmenthandlers "github.com/dmoralesf/clinicore/internal/handlers/assignments"
	authhandlers "github.com/dmoralesf/clinicore/internal/handlers/auth"
	balancehandlers "github.com/dmoralesf/clinicore/internal/handlers/balances"
	messagehandlers "github.com/dmoralesf/clinicore/internal/handlers/messages"
	producthandlers "github.com/dmoralesf/clinicore/internal/handlers/products"
	purchasehandlers "github.com/dmoralesf/clinicore/internal/handlers/purchases"
	userhandlers "github.com/dmoralesf/clinicore/internal/handlers/users"
	"github.com/dmoralesf/clinicore/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		UserService:       userhandlers.NewMockService(ctrl),
		ProductService:    producthandlers.NewMockService(ctrl),
		BalanceService:    balancehandlers.NewMockService(ctrl),
		PurchaseService:   purchasehandlers.NewMockService(ctrl),
		AssignmentService: assignmenthandlers.NewMockService(ctrl),
		MessageService:    messagehandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)
	mockProductHandler := NewMockProductHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockPurchaseHandler := NewMockPurchaseHandler(ctrl)
	mockAssignmentHandler := NewMockAssignmentHandler(ctrl)
	mockMessageHandler := NewMockMessageHandler(ctrl)

	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().RegisterPatient(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().RegisterDoctor(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetPatients(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetDoctors(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().ToggleStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().GetProducts(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().GetProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).AnyTimes()
	mockProductHandler.EXPECT().ToggleStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalances(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetAdminBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetPatientBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Grant(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().AdminAdd(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().AdminSubtract(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().SelfTopUp(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().Purchase(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().GetDetails(gomock.Any(), gomock.Any()).AnyTimes()
	mockAssignmentHandler.EXPECT().GetPatientDoctors(gomock.Any(), gomock.Any()).AnyTimes()
	mockAssignmentHandler.EXPECT().GetDoctorPatients(gomock.Any(), gomock.Any()).AnyTimes()
	mockAssignmentHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockAssignmentHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().GetContacts(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().GetConversation(gomock.Any(), gomock.Any()).AnyTimes()
	mockMessageHandler.EXPECT().Send(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		UserHandler:       mockUserHandler,
		ProductHandler:    mockProductHandler,
		BalanceHandler:    mockBalanceHandler,
		PurchaseHandler:   mockPurchaseHandler,
		AssignmentHandler: mockAssignmentHandler,
		MessageHandler:    mockMessageHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/users/register", http.StatusOK},
		{"GET", "/api/users/patients", http.StatusUnauthorized},
		{"GET", "/api/users/patients/1", http.StatusUnauthorized},
		{"PUT", "/api/users/patients/1", http.StatusUnauthorized},
		{"PATCH", "/api/users/patients/1/toggle-status", http.StatusUnauthorized},
		{"GET", "/api/doctors", http.StatusUnauthorized},
		{"POST", "/api/doctors", http.StatusUnauthorized},
		{"GET", "/api/doctors/3", http.StatusUnauthorized},
		{"GET", "/api/products", http.StatusUnauthorized},
		{"POST", "/api/products", http.StatusUnauthorized},
		{"GET", "/api/products/5", http.StatusUnauthorized},
		{"PATCH", "/api/products/5/toggle-status", http.StatusUnauthorized},
		{"GET", "/api/balances", http.StatusUnauthorized},
		{"GET", "/api/balances/admin/1", http.StatusUnauthorized},
		{"GET", "/api/balances/patient/1", http.StatusUnauthorized},
		{"POST", "/api/balances/add", http.StatusUnauthorized},
		{"POST", "/api/balances/admin/add", http.StatusUnauthorized},
		{"POST", "/api/balances/admin/subtract", http.StatusUnauthorized},
		{"POST", "/api/balances/add-self", http.StatusUnauthorized},
		{"POST", "/api/purchases", http.StatusUnauthorized},
		{"GET", "/api/purchases/user/1", http.StatusUnauthorized},
		{"GET", "/api/purchases/41", http.StatusUnauthorized},
		{"GET", "/api/assignments/patient/1", http.StatusUnauthorized},
		{"GET", "/api/assignments/doctor/3", http.StatusUnauthorized},
		{"POST", "/api/assignments", http.StatusUnauthorized},
		{"DELETE", "/api/assignments/12_1", http.StatusUnauthorized},
		{"GET", "/api/messages/contacts/1", http.StatusUnauthorized},
		{"GET", "/api/messages/1/2", http.StatusUnauthorized},
		{"POST", "/api/messages", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
