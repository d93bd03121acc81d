package transaction

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	txsvc "github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const accountIDKey = "account_id"

// Routes registers the ledger endpoints. Every route requires a bearer token
// whose person owns :accountId.
//
//   - POST /accounts/:accountId/transactions                         : append an entry
//   - GET  /accounts/:accountId/transactions                         : list entries
//   - GET  /accounts/:accountId/balance                              : current balance
//   - POST /accounts/:accountId/transfer                             : move value to another account
//   - POST /accounts/:accountId/transactions/:transactionId/revert   : revert an entry
func Routes(
	app *fiber.App,
	txSvc *txsvc.Service,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	protected := func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{
			middleware.JwtProtected(cfg.Auth.Jwt),
			middleware.RequirePerson(authSvc),
			ownsAccount(accountSvc),
			h,
		}
	}
	app.Post("/accounts/:accountId/transactions", protected(CreateTransaction(txSvc))...)
	app.Get("/accounts/:accountId/transactions", protected(ListTransactions(txSvc))...)
	app.Get("/accounts/:accountId/balance", protected(GetBalance(txSvc))...)
	app.Post("/accounts/:accountId/transfer", protected(Transfer(txSvc))...)
	app.Post("/accounts/:accountId/transactions/:transactionId/revert", protected(Revert(txSvc))...)
}

func ownsAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		personID, ok := middleware.PersonID(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		if err := accountSvc.Authorize(c.UserContext(), personID, accountID); err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		c.Locals(accountIDKey, accountID)
		return c.Next()
	}
}

func accountID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(accountIDKey).(uuid.UUID)
	return id
}

// CreateTransaction appends an entry to the account's log.
// @Summary Create a transaction
// @Description Appends a signed entry. Negative values are debits and must be covered by the balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param request body CreateTransactionRequest true "Entry"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} common.ProblemDetails "All input is required"
// @Failure 401 {object} common.ProblemDetails "Insufficient funds or unknown account"
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{accountId}/transactions [post]
// @Security Bearer
func CreateTransaction(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		tx, err := txSvc.CreateOne(c.UserContext(), accountID(c), input.Value, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(tx))
	}
}

// ListTransactions returns the account's entries in creation order.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Param page query int false "Page number, starting at 1"
// @Param perPage query int false "Entries per page"
// @Success 200 {object} ListTransactionsResponse
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{accountId}/transactions [get]
// @Security Bearer
func ListTransactions(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := txSvc.FetchAll(c.UserContext(), accountID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		page, pagination := common.Paginate(c, txs)
		return c.JSON(ListTransactionsResponse{
			Transactions: toResponses(page),
			Pagination:   pagination,
		})
	}
}

// GetBalance returns the account balance.
// @Summary Get balance
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{accountId}/balance [get]
// @Security Bearer
func GetBalance(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		balance, err := txSvc.FetchBalance(c.UserContext(), accountID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch balance", err)
		}
		return c.JSON(BalanceResponse{Balance: balance.InexactFloat64()})
	}
}

// Transfer moves value from the account to receiverAccountId.
// @Summary Transfer between accounts
// @Description Debits the account and credits the receiver with the same description. Returns the receiver's entry.
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountId path string true "Sender account ID"
// @Param request body TransferRequest true "Transfer"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails "Insufficient funds or unknown account"
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{accountId}/transfer [post]
// @Security Bearer
func Transfer(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		receiverID := uuid.Nil
		if input.ReceiverAccountID != "" {
			receiverID, err = uuid.Parse(input.ReceiverAccountID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid receiver account ID", err, "Receiver account ID must be a valid UUID", fiber.StatusBadRequest)
			}
		}
		tx, err := txSvc.ExecTransfer(c.UserContext(), accountID(c), receiverID, input.Value, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(tx))
	}
}

// Revert cancels a transaction with a compensating entry.
// @Summary Revert a transaction
// @Description Stamps the transaction reversed and appends a refund. The response carries the refund's id and timestamps with the original value.
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Param transactionId path string true "Transaction ID"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails "Already reversed or negative balance"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Failure 500 {object} common.ProblemDetails
// @Router /accounts/{accountId}/transactions/{transactionId}/revert [post]
// @Security Bearer
func Revert(txSvc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactionID, err := uuid.Parse(c.Params("transactionId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		rev, err := txSvc.ExecRevert(c.UserContext(), accountID(c), transactionID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to revert transaction", err)
		}
		resp := toResponse(rev.Refund)
		resp.Value = ledger.Round(rev.OriginalValue).InexactFloat64()
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}
