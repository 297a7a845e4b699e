package service

import (
	"github.com/dmoralesf/clinicore/internal/handlers/assignments"
	"github.com/dmoralesf/clinicore/internal/handlers/auth"
	"github.com/dmoralesf/clinicore/internal/handlers/balances"
	"github.com/dmoralesf/clinicore/internal/handlers/messages"
	"github.com/dmoralesf/clinicore/internal/handlers/products"
	"github.com/dmoralesf/clinicore/internal/handlers/purchases"
	"github.com/dmoralesf/clinicore/internal/handlers/users"

	pkgauth "github.com/dmoralesf/clinicore/pkg/auth"

	"github.com/dmoralesf/clinicore/internal/pg"
	"github.com/dmoralesf/clinicore/internal/repo"
	"github.com/dmoralesf/clinicore/internal/service/assignmentservice"
	"github.com/dmoralesf/clinicore/internal/service/authservice"
	"github.com/dmoralesf/clinicore/internal/service/balanceservice"
	"github.com/dmoralesf/clinicore/internal/service/messageservice"
	"github.com/dmoralesf/clinicore/internal/service/productservice"
	"github.com/dmoralesf/clinicore/internal/service/purchaseservice"
	"github.com/dmoralesf/clinicore/internal/service/userservice"
)

type Services struct {
	AuthService       auth.Service
	UserService       users.Service
	ProductService    products.Service
	BalanceService    balances.Service
	PurchaseService   purchases.Service
	AssignmentService assignments.Service
	MessageService    messages.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	balanceService := balanceservice.New(repo.BalanceRepo, repo.UserRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo, balanceService, &pkgauth.HashService{}, txManager)
	productService := productservice.New(repo.ProductRepo)
	purchaseService := purchaseservice.New(repo.UserRepo, repo.ProductRepo, repo.BalanceRepo, repo.SaleRepo)
	assignmentService := assignmentservice.New(repo.AssignmentRepo)
	messageService := messageservice.New(repo.MessageRepo, repo.UserRepo)

	return &Services{
		AuthService:       authService,
		UserService:       userService,
		ProductService:    productService,
		BalanceService:    balanceService,
		PurchaseService:   purchaseService,
		AssignmentService: assignmentService,
		MessageService:    messageService,
	}
}
