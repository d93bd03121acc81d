package middleware

import (
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const personContextKey = "person_id"

// RequirePerson resolves the authenticated person from the token stored by
// JwtProtected. It must run after JwtProtected.
func RequirePerson(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := Token(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		personID, err := authSvc.CurrentPersonID(token)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		c.Locals(personContextKey, personID)
		return c.Next()
	}
}

// PersonID returns the person stored by RequirePerson.
func PersonID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(personContextKey).(uuid.UUID)
	return id, ok
}
