package handlers

import (
	"net/http"

	_ "github.com/dmoralesf/clinicore/docs"
	assignmenthandlers "github.com/dmoralesf/clinicore/internal/handlers/assignments"
	authhandlers "github.com/dmoralesf/clinicore/internal/handlers/auth"
	balancehandlers "github.com/dmoralesf/clinicore/internal/handlers/balances"
	messagehandlers "github.com/dmoralesf/clinicore/internal/handlers/messages"
	producthandlers "github.com/dmoralesf/clinicore/internal/handlers/products"
	purchasehandlers "github.com/dmoralesf/clinicore/internal/handlers/purchases"
	userhandlers "github.com/dmoralesf/clinicore/internal/handlers/users"
	"github.com/dmoralesf/clinicore/internal/service"
	"github.com/dmoralesf/clinicore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	RegisterPatient(w http.ResponseWriter, r *http.Request)
	RegisterDoctor(w http.ResponseWriter, r *http.Request)
	GetPatients(w http.ResponseWriter, r *http.Request)
	GetDoctors(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	GetProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalances(w http.ResponseWriter, r *http.Request)
	GetAdminBalance(w http.ResponseWriter, r *http.Request)
	GetPatientBalance(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
	AdminAdd(w http.ResponseWriter, r *http.Request)
	AdminSubtract(w http.ResponseWriter, r *http.Request)
	SelfTopUp(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetDetails(w http.ResponseWriter, r *http.Request)
}

type AssignmentHandler interface {
	GetPatientDoctors(w http.ResponseWriter, r *http.Request)
	GetDoctorPatients(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	GetContacts(w http.ResponseWriter, r *http.Request)
	GetConversation(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	UserHandler       UserHandler
	ProductHandler    ProductHandler
	BalanceHandler    BalanceHandler
	PurchaseHandler   PurchaseHandler
	AssignmentHandler AssignmentHandler
	MessageHandler    MessageHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		UserHandler:       userhandlers.New(s.UserService),
		ProductHandler:    producthandlers.New(s.ProductService),
		BalanceHandler:    balancehandlers.New(s.BalanceService),
		PurchaseHandler:   purchasehandlers.New(s.PurchaseService),
		AssignmentHandler: assignmenthandlers.New(s.AssignmentService),
		MessageHandler:    messagehandlers.New(s.MessageService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)
		r.Post("/users/register", h.UserHandler.RegisterPatient)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/patients", h.UserHandler.GetPatients)
				r.Route("/patients/{id}", func(r chi.Router) {
					r.Get("/", h.UserHandler.GetUser)
					r.Put("/", h.UserHandler.UpdateUser)
					r.Patch("/toggle-status", h.UserHandler.ToggleStatus)
				})
			})
			r.Route("/doctors", func(r chi.Router) {
				r.Get("/", h.UserHandler.GetDoctors)
				r.Post("/", h.UserHandler.RegisterDoctor)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.UserHandler.GetUser)
					r.Put("/", h.UserHandler.UpdateUser)
					r.Patch("/toggle-status", h.UserHandler.ToggleStatus)
				})
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ProductHandler.GetProducts)
				r.Post("/", h.ProductHandler.CreateProduct)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.ProductHandler.GetProduct)
					r.Put("/", h.ProductHandler.UpdateProduct)
					r.Patch("/toggle-status", h.ProductHandler.ToggleStatus)
				})
			})
			r.Route("/balances", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalances)
				r.Get("/admin/{adminID}", h.BalanceHandler.GetAdminBalance)
				r.Get("/patient/{patientID}", h.BalanceHandler.GetPatientBalance)
				r.Post("/add", h.BalanceHandler.Grant)
				r.Post("/admin/add", h.BalanceHandler.AdminAdd)
				r.Post("/admin/subtract", h.BalanceHandler.AdminSubtract)
				r.Post("/add-self", h.BalanceHandler.SelfTopUp)
			})
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.Purchase)
				r.Get("/user/{userID}", h.PurchaseHandler.GetHistory)
				r.Get("/{id}", h.PurchaseHandler.GetDetails)
			})
			r.Route("/assignments", func(r chi.Router) {
				r.Get("/patient/{id}", h.AssignmentHandler.GetPatientDoctors)
				r.Get("/doctor/{id}", h.AssignmentHandler.GetDoctorPatients)
				r.Post("/", h.AssignmentHandler.Create)
				r.Delete("/{id}", h.AssignmentHandler.Delete)
			})
			r.Route("/messages", func(r chi.Router) {
				r.Get("/contacts/{userID}", h.MessageHandler.GetContacts)
				r.Get("/{userID}/{contactID}", h.MessageHandler.GetConversation)
				r.Post("/", h.MessageHandler.Send)
			})
		})
	})

	return r
}
