package middleware

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserContextKey is the fiber local holding the verified *jwt.Token.
const UserContextKey = "user"

// JwtProtected verifies the bearer token and stores it under UserContextKey.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   UserContextKey,
		ErrorHandler: jwtError,
	})
}

// Token returns the verified token stored by JwtProtected.
func Token(c *fiber.Ctx) (*jwt.Token, bool) {
	token, ok := c.Locals(UserContextKey).(*jwt.Token)
	return token, ok && token != nil
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return common.ProblemDetailsJSON(c, "Unauthorized", err, "Missing or malformed JWT", fiber.StatusUnauthorized)
	}
	return common.ProblemDetailsJSON(c, "Unauthorized", err, "Invalid or expired JWT", fiber.StatusUnauthorized)
}
