package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/person"
	"github.com/amirasaad/ledger/pkg/service/transaction"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Locker   lock.Locker
	Logger   *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	PersonService      *person.Service
	AccountService     *account.Service
	TransactionService *transaction.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	if cfg.Auth != nil && cfg.Auth.Jwt != nil {
		app.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	} else {
		app.AuthService = auth.NewWithBasic(deps.Uow, deps.Logger)
	}
	app.PersonService = person.New(deps.Uow, deps.Logger)
	app.AccountService = account.New(deps.Uow, deps.Logger)

	opts := []transaction.Option{transaction.WithLocker(deps.Locker)}
	if cfg.Ledger != nil {
		opts = append(opts, transaction.WithAtomicWrites(cfg.Ledger.AtomicWrites))
	}
	app.TransactionService = transaction.New(deps.Uow, deps.EventBus, deps.Logger, opts...)
	return app
}
