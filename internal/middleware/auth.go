package middleware

import (
	"net/http"
	"strings"

	"github.com/Italzenergy/AlzConnect-app/internal/apierror"
	"github.com/Italzenergy/AlzConnect-app/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const claimsKey = "jwt_claims"

// JWTClaims is the authenticated identity extracted from the access token.
type JWTClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// JWTAuth validates the Bearer token and stores the claims in the context.
// Requests without a valid token are rejected with 401.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token requerido"))
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		mapClaims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		idStr, _ := mapClaims["user_id"].(string)
		userID, err := uuid.Parse(idStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}
		email, _ := mapClaims["email"].(string)
		role, _ := mapClaims["role"].(string)

		c.Set(claimsKey, &JWTClaims{UserID: userID, Email: email, Role: role})
		c.Next()
	}
}

// RequireRole rejects with 403 unless the token's role is one of the allowed
// roles. Fine-grained capability checks still live in the services; this is
// the coarse route-level cut.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token requerido"))
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims returns the authenticated claims, or nil when the request never
// passed JWTAuth.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// CallerFrom builds the per-call identity services expect from the claims.
func CallerFrom(claims *JWTClaims) authz.Caller {
	return authz.Caller{ID: claims.UserID, Role: claims.Role}
}
