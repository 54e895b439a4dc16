package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/salahapp/salah-server/internal/db"
	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/redis"
)

const tokenTTL = 72 * time.Hour

// GenerateJWT signs a token embedding the admin ID in the “sub” claim.
func GenerateJWT(adminID int, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// parseToken verifies the JWT and returns the admin ID and expiry.
func parseToken(tokenString, secret string) (int, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, time.Time{}, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, time.Time{}, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, time.Time{}, errors.New("invalid sub claim")
	}
	exp := time.Time{}
	if expClaim, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(expClaim), 0)
	}
	return int(sub), exp, nil
}

// JWTMiddleware checks “Authorization: Bearer <token>”, rejects blacklisted
// tokens, loads the admin, and sets “currentAdmin” in context.
func JWTMiddleware(secret string, store db.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth header"})
			return
		}

		if redis.IsTokenBlacklisted(c.Request.Context(), parts[1]) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
			return
		}

		adminID, _, err := parseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		admin, err := store.GetAdminByID(adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}
		c.Set("currentAdmin", admin)
		c.Next()
	}
}

// GetCurrentAdmin pulls the authenticated admin out of gin context.
func GetCurrentAdmin(c *gin.Context) (*model.Admin, bool) {
	v, ok := c.Get("currentAdmin")
	if !ok {
		return nil, false
	}
	admin, ok := v.(*model.Admin)
	return admin, ok
}

// RevokeToken blacklists a bearer token until its natural expiry.
func RevokeToken(c *gin.Context, secret string) error {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return errors.New("no bearer token to revoke")
	}
	_, exp, err := parseToken(parts[1], secret)
	if err != nil {
		return err
	}
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	return redis.BlacklistToken(c.Request.Context(), parts[1], ttl)
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt hash against a plaintext candidate.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
