package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	apperrors "statusping/internal/errors"
)

const (
	JWTClaimsContextKey = "JWTClaimsContextKey"
	AccountIDContextKey = "AccountIDContextKey"
)

// Tokens are issued by the external identity service; this middleware only
// verifies them and exposes the account id and scopes to handlers.
type AuthMiddleware interface {
	ValidateAndExtractJwt() gin.HandlerFunc
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
	secretKey string
}

func (a *authMiddleware) verifyToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("AuthMiddleware.verifyToken: %w", apperrors.ErrInvalidToken)
		}
		return []byte(a.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("AuthMiddleware.verifyToken: %w", apperrors.ErrInvalidToken)
	}
	if !parsedToken.Valid {
		return nil, fmt.Errorf("AuthMiddleware.verifyToken: %w", apperrors.ErrInvalidToken)
	}
	return claims, nil
}

func (a *authMiddleware) ValidateAndExtractJwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is empty"})
			return
		}
		header := strings.Fields(authHeader)
		if len(header) != 2 || header[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is invalid"})
			return
		}
		claims, err := a.verifyToken(header[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}
		accountID, _ := claims["account_id"].(string)
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}
		c.Set(JWTClaimsContextKey, claims)
		c.Set(AccountIDContextKey, accountID)
		c.Next()
	}
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.Value(JWTClaimsContextKey).(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Permission denied"})
			return
		}
		scopesList, _ := claims["scopes"].([]interface{})
		scopes := make([]string, 0, len(scopesList))
		for _, scope := range scopesList {
			if s, ok := scope.(string); ok {
				scopes = append(scopes, s)
			}
		}
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Permission denied"})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(secretKey string) AuthMiddleware {
	return &authMiddleware{secretKey: secretKey}
}
