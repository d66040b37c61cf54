package serverutils

import (
	"os"

	"proofly-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JwtMiddleware is the opaque current-user-id provider for owner-facing
// routes. Session issuance lives outside this service; we only verify the
// bearer token and stash the subject id.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid claims"))
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// CurrentUserId extracts the authenticated user id placed by JwtMiddleware.
func CurrentUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Unauthenticated("Unauthorized")
	}
	return id, nil
}
