// Package testutils runs the HTTP API against a real Postgres started with
// Testcontainers.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/lock"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	App         *fiber.App
	Cfg         *config.App
	Bus         *infraeventbus.MemoryEventBus
}

// TestPerson is a registered person with a token and one account.
type TestPerson struct {
	ID        string
	Document  string
	Password  string
	Token     string
	AccountID string
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite starts Postgres, migrates it and builds the Fiber app. The suite
// is skipped under -short and when Docker is not available.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping e2e tests in short mode")
	}
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pg, err := s.startPostgresContainer(ctx)
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = &config.App{
		Env:    "test",
		DB:     &config.DB{Url: dsn, Migrate: true},
		Auth:   &config.Auth{Jwt: &config.Jwt{Secret: "e2e-secret", Expiry: time.Hour}},
		Ledger: &config.Ledger{AtomicWrites: true, Lock: "local"},
	}

	var dialect infra.Dialect
	s.db, dialect, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.db, dialect, logger))

	s.Bus = infraeventbus.NewWithMemory(logger)
	deps := &app.Deps{
		Uow:      infra.NewUoW(s.db),
		EventBus: s.Bus,
		Locker:   lock.NewKeyedMutex(),
		Logger:   logger,
	}
	s.App = webapi.SetupApp(app.New(deps, s.Cfg))
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest sends a JSON request and decodes a JSON object response into
// out when out is non-nil.
func (s *E2ETestSuite) MakeRequest(method, path, token string, body, out any) *http.Response {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	if out != nil {
		defer resp.Body.Close() //nolint:errcheck
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// CreateTestPerson registers a person with a random document, logs in and
// opens one account.
func (s *E2ETestSuite) CreateTestPerson() *TestPerson {
	p := &TestPerson{
		Document: fmt.Sprintf("%011d", uuid.New().ID()),
		Password: "password123",
	}

	var created struct {
		ID string `json:"id"`
	}
	resp := s.MakeRequest(fiber.MethodPost, "/people", "", map[string]string{
		"name": "E2E Person", "document": p.Document, "password": p.Password,
	}, &created)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	p.ID = created.ID

	var login struct {
		Token string `json:"token"`
	}
	resp = s.MakeRequest(fiber.MethodPost, "/login", "", map[string]string{
		"document": p.Document, "password": p.Password,
	}, &login)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	p.Token = login.Token

	var acc struct {
		ID string `json:"id"`
	}
	resp = s.MakeRequest(fiber.MethodPost, "/people/"+p.ID+"/accounts", p.Token, map[string]string{
		"branch": "0001", "account": p.Document,
	}, &acc)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	p.AccountID = acc.ID
	return p
}
