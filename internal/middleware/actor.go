package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/models"
)

const actorKey = "actor"

// LoadActor resolves the JWT subject to a live user row and stores an
// authz.Actor in the request locals. The role comes from the database,
// not the token, so a revoked admin loses access as soon as the row
// changes. Must run after JWTProtected.
func LoadActor(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid subject claim",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Account no longer exists",
			})
		}

		role, ok := authz.ParseRole(user.Role)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unknown role",
			})
		}

		c.Locals(actorKey, &authz.Actor{ID: user.ID, Role: role})
		return c.Next()
	}
}

// ActorFromCtx returns the actor resolved by LoadActor, or nil when the
// request is unauthenticated.
func ActorFromCtx(c *fiber.Ctx) *authz.Actor {
	if actor, ok := c.Locals(actorKey).(*authz.Actor); ok {
		return actor
	}
	return nil
}
