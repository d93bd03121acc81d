package account

import (
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers account endpoints. A person can only manage their own
// accounts.
//
//   - POST /people/:personId/accounts : open an account
//   - GET  /people/:personId/accounts : list accounts
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	jwt := middleware.JwtProtected(cfg.Auth.Jwt)
	person := middleware.RequirePerson(authSvc)
	app.Post("/people/:personId/accounts", jwt, person, CreateAccount(accountSvc))
	app.Get("/people/:personId/accounts", jwt, person, ListAccounts(accountSvc))
}

// samePerson parses :personId and checks it against the token.
func samePerson(c *fiber.Ctx) (uuid.UUID, error) {
	personID, err := uuid.Parse(c.Params("personId"))
	if err != nil {
		return uuid.Nil, common.ProblemDetailsJSON(c, "Invalid person ID", err, "Person ID must be a valid UUID", fiber.StatusBadRequest)
	}
	current, ok := middleware.PersonID(c)
	if !ok || current != personID {
		return uuid.Nil, common.ProblemDetailsJSON(c, "Forbidden", nil, "You are not allowed to access these accounts", fiber.StatusUnauthorized)
	}
	return personID, nil
}

// CreateAccount opens an account for the person.
// @Summary Open an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param personId path string true "Person ID"
// @Param request body CreateAccountRequest true "Account"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails "Branch and account already registered"
// @Failure 500 {object} common.ProblemDetails
// @Router /people/{personId}/accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		personID, err := samePerson(c)
		if personID == uuid.Nil {
			return err
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.Create(c.UserContext(), personID, input.Branch, input.Account)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(a))
	}
}

// ListAccounts lists the person's accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param personId path string true "Person ID"
// @Success 200 {array} AccountResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /people/{personId}/accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		personID, err := samePerson(c)
		if personID == uuid.Nil {
			return err
		}
		accounts, err := accountSvc.List(c.UserContext(), personID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		out := make([]AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, toResponse(a))
		}
		return c.JSON(out)
	}
}
