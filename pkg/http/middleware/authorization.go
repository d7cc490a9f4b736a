package middleware

import (
	"errors"
	"strings"

	"github.com/go-pathway/pathway/pkg/http"
	"github.com/go-pathway/pathway/pkg/http/jwt"
	"github.com/go-pathway/pathway/pkg/log"
	"github.com/gofiber/fiber/v2"
	goJwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// AuthorizationMiddleware resolves the caller's identity from a Bearer token.
// The token must also still be present in redis, where the auth service keeps
// issued sessions. Claims end up in c.Locals("claims").
func AuthorizationMiddleware(secretKey, redisKeyPrefix string, client *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		aToken := c.Get("Authorization")
		if aToken == "" {
			return http.WithRepErr(c, http.AuthorizationEmpty, c.Path())
		}

		parts := strings.SplitN(aToken, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return http.WithRepErr(c, http.AuthorizationEmpty, c.Path())
		}

		claims, err := jwt.ParseToken(parts[1], secretKey)
		if err != nil {
			if errors.Is(err, goJwt.ErrTokenExpired) {
				return http.WithRepErr(c, http.TokenExpired, c.Path())
			}
			log.Errorf("parse token failed: %v", err)
			return http.WithRepErr(c, http.InvalidToken, c.Path())
		}

		if client != nil {
			tokenKey := redisKeyPrefix + claims.UserId
			exists, err := client.Exists(c.Context(), tokenKey).Result()
			if err != nil {
				log.Errorf("redis check token exists failed: %v", err)
				return http.WithRepErr(c, http.InternalError, c.Path())
			}
			if exists == 0 {
				return http.WithRepErr(c, http.TokenExpired, c.Path())
			}
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

// UserId returns the authenticated user id attached by AuthorizationMiddleware.
func UserId(c *fiber.Ctx) string {
	claims, ok := c.Locals("claims").(*jwt.AuthClaims)
	if !ok || claims == nil {
		return ""
	}
	return claims.UserId
}
