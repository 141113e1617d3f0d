package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/schilling3003/shelflife-sales-app/internal/model"
	"github.com/schilling3003/shelflife-sales-app/internal/repository"
	"github.com/schilling3003/shelflife-sales-app/pkg/jwt"
)

// UserKey is the fiber.Ctx locals key holding the authenticated user.
const UserKey = "current_user"

// RequireAuth validates the bearer token and loads the current user
// into the request context for downstream handlers.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "User not found"})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// RequireAdmin gates a route behind the elevated capability flag. The
// flag is read from the freshly loaded user record, not the token, so
// revocation takes effect without waiting for token expiry.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires admin capability"})
		}
		return c.Next()
	}
}

// CurrentUser returns the user loaded by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(UserKey).(*model.User)
	return user
}
