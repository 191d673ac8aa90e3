package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/govportal/citizen_services_backend/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// issued to citizen accounts.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return requireRole(jwtSecret, utils.RoleCitizen, userIDKey)
}

// AdminAuthMiddleware validates JWT tokens issued to administrator accounts.
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return requireRole(jwtSecret, utils.RoleAdmin, adminIDKey)
}

// OptionalAuthMiddleware attaches the citizen identity when a valid bearer
// token is present but never rejects the request. Used for routes that accept
// anonymous submissions.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &utils.PortalClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(*utils.PortalClaims)
		if !ok || claims.Role != utils.RoleCitizen {
			c.Next()
			return
		}
		accountID, err := strconv.ParseInt(claims.ID, 10, 64)
		if err != nil || accountID == 0 {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, accountID)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requireRole(jwtSecret, requiredRole string, idKey contextKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &utils.PortalClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Check the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*utils.PortalClaims)
		if !ok || !token.Valid {
			logger.Warn("Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if claims.Role != requiredRole {
			logger.Warn("Token role not permitted for this route", "role", claims.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges"})
			return
		}

		accountID, err := strconv.ParseInt(claims.ID, 10, 64)
		if err != nil || accountID == 0 {
			logger.Error("Account ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Store the account ID in the context (using standard context)
		ctxWithID := context.WithValue(c.Request.Context(), idKey, accountID)
		ctxWithID = context.WithValue(ctxWithID, roleKey, claims.Role)

		// Add account ID to the logger
		enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(
			slog.Int64("account_id", accountID),
			slog.String("role", claims.Role),
		)

		// Store the *enriched* logger back into the standard context
		ctxWithLogger := context.WithValue(ctxWithID, loggerCtxKey, enrichedLogger)

		// Update the request context
		c.Request = c.Request.WithContext(ctxWithLogger)

		c.Next()
	}
}
