package middleware

import (
	"strings"

	"grammarlab/internal/logger"
	"grammarlab/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionIDKey        = "sessionID" // Key for storing the session ID in fiber.Ctx locals
)

// RequireSession protects hint routes: the caller must present the bearer
// token issued when the hint session was opened, and the token's session
// must match the one addressed in the path.
func RequireSession(tokens service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "MISSING_AUTH_HEADER",
				Message: "Authorization header is missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_AUTH_SCHEME",
				Message: "Authorization scheme is not Bearer",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		sessionID, err := tokens.ValidateSessionToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Session token is invalid or expired",
				Status:  fiber.StatusUnauthorized,
			})
		}

		if pathID := c.Params("id"); pathID != "" && pathID != sessionID {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "SESSION_MISMATCH",
				Message: "Token does not belong to this session",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// OptionalSession resolves a session ID from the bearer token when one is
// presented, and proceeds anonymously otherwise. Evaluation works either
// way; the session ID only enriches attempt records.
func OptionalSession(tokens service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokens == nil {
			return c.Next()
		}

		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerSchema) {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return c.Next()
		}

		sessionID, err := tokens.ValidateSessionToken(tokenString)
		if err != nil {
			logger.Get().Debug("OptionalSession: token validation failed, proceeding as anonymous", zap.Error(err))
			return c.Next()
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}
