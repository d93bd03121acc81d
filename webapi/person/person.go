package person

import (
	personsvc "github.com/amirasaad/ledger/pkg/service/person"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, personSvc *personsvc.Service) {
	app.Post("/people", CreatePerson(personSvc))
}

// CreatePerson registers an account owner.
// @Summary Register a person
// @Description The document is stored digits-only and must be unique.
// @Tags people
// @Accept json
// @Produce json
// @Param request body CreatePersonRequest true "Person"
// @Success 201 {object} PersonResponse
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails "Document already registered"
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /people [post]
func CreatePerson(personSvc *personsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreatePersonRequest](c)
		if input == nil {
			return err
		}
		p, err := personSvc.Create(c.UserContext(), input.Name, input.Document, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create person", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}
