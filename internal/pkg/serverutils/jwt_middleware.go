package serverutils

import (
	"github.com/shreyansh1410/aiNotes/internal/cache"
	"github.com/shreyansh1410/aiNotes/internal/token"

	"github.com/gofiber/fiber/v2"
)

// JwtMiddleware resolves the bearer credential to a user id and stores it
// in ctx.Locals("user_id"). Every failure is a bare 401: the caller
// cannot tell a missing token from a malformed or expired one.
// tokenCache may be nil, in which case every request pays a full verify.
func JwtMiddleware(tokenService *token.Service, tokenCache *cache.TokenCache) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}
		tokenStr := authHeader[7:]

		if tokenCache != nil {
			if userID, ok := tokenCache.Get(ctx.Context(), tokenStr); ok {
				ctx.Locals("user_id", userID.String())
				return ctx.Next()
			}
		}

		claims, err := tokenService.Verify(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		if tokenCache != nil {
			tokenCache.Set(ctx.Context(), tokenStr, claims.UserID, claims.ExpiresAt)
		}

		ctx.Locals("user_id", claims.UserID.String())
		return ctx.Next()
	}
}
