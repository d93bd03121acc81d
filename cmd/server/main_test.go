package main_test

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestRootRoute() {
	resp := s.MakeRequest(fiber.MethodGet, "/", "", nil, nil)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestTransferAndRevert() {
	sender := s.CreateTestPerson()
	receiver := s.CreateTestPerson()
	base := "/accounts/" + sender.AccountID

	var deposit struct {
		ID    string  `json:"id"`
		Value float64 `json:"value"`
	}
	resp := s.MakeRequest(fiber.MethodPost, base+"/transactions", sender.Token,
		map[string]any{"value": 50, "description": "Initial"}, &deposit)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, base+"/transfer", sender.Token, map[string]any{
		"receiverAccountId": receiver.AccountID, "value": 35.53, "description": "Split",
	}, nil)
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPost, base+"/transfer", sender.Token, map[string]any{
		"receiverAccountId": receiver.AccountID, "value": 14.48, "description": "Too much",
	}, nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	var balance struct {
		Balance float64 `json:"balance"`
	}
	s.MakeRequest(fiber.MethodGet, base+"/balance", sender.Token, nil, &balance)
	s.InDelta(14.47, balance.Balance, 0.001)
	s.MakeRequest(fiber.MethodGet, "/accounts/"+receiver.AccountID+"/balance", receiver.Token, nil, &balance)
	s.InDelta(35.53, balance.Balance, 0.001)

	// Reverting the deposit would leave the sender negative.
	resp = s.MakeRequest(fiber.MethodPost, base+"/transactions/"+deposit.ID+"/revert", sender.Token, nil, nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *MainTestSuite) TestEventsArePublished() {
	p := s.CreateTestPerson()
	s.Bus.ClearPublished()

	resp := s.MakeRequest(fiber.MethodPost, "/accounts/"+p.AccountID+"/transactions", p.Token,
		map[string]any{"value": 10, "description": "Tip"}, nil)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	published := s.Bus.Published()
	s.Require().Len(published, 1)
	s.Equal(ledger.EventTransactionCreated, published[0].Type())
}

func (s *MainTestSuite) TestForeignAccountIsRejected() {
	owner := s.CreateTestPerson()
	other := s.CreateTestPerson()

	resp := s.MakeRequest(fiber.MethodGet, "/accounts/"+owner.AccountID+"/transactions", other.Token, nil, nil)
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}
