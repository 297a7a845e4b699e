package repo

import (
	"github.com/dmoralesf/clinicore/internal/pg"
	assignmentrepo "github.com/dmoralesf/clinicore/internal/repo/assignment-repo"
	balancerepo "github.com/dmoralesf/clinicore/internal/repo/balance-repo"
	messagerepo "github.com/dmoralesf/clinicore/internal/repo/message-repo"
	productrepo "github.com/dmoralesf/clinicore/internal/repo/product-repo"
	salerepo "github.com/dmoralesf/clinicore/internal/repo/sale-repo"
	userrepo "github.com/dmoralesf/clinicore/internal/repo/user-repo"
	"github.com/dmoralesf/clinicore/internal/service/assignmentservice"
	"github.com/dmoralesf/clinicore/internal/service/balanceservice"
	"github.com/dmoralesf/clinicore/internal/service/messageservice"
	"github.com/dmoralesf/clinicore/internal/service/productservice"
	"github.com/dmoralesf/clinicore/internal/service/purchaseservice"
	"github.com/dmoralesf/clinicore/internal/service/userservice"
)

type Repositories struct {
	UserRepo       userservice.Repo
	ProductRepo    productservice.Repo
	BalanceRepo    balanceservice.BalanceRepo
	SaleRepo       purchaseservice.SaleRepo
	AssignmentRepo assignmentservice.Repo
	MessageRepo    messageservice.MessageRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	productRepo := productrepo.New(conn)
	balanceRepo := balancerepo.New(conn)
	saleRepo := salerepo.New(conn, txManager)
	assignmentRepo := assignmentrepo.New(conn)
	messageRepo := messagerepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		ProductRepo:    productRepo,
		BalanceRepo:    balanceRepo,
		SaleRepo:       saleRepo,
		AssignmentRepo: assignmentRepo,
		MessageRepo:    messageRepo,
	}
}
