package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"paisa/internal/config"
	"paisa/internal/logger"
	"paisa/internal/models"
	"paisa/internal/services"
)

// deviceIDKey is the context key under which the authenticated device ID is stored.
const deviceIDKey = "deviceID"

// getTokenKey returns the token signing key from configuration
func getTokenKey() []byte {
	return []byte(config.Get().TokenSecret)
}

// DeviceClaims represents the claims in a device token
type DeviceClaims struct {
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
	jwt.RegisteredClaims
}

// GenerateDeviceToken generates a signed bearer token for a registered device.
func GenerateDeviceToken(device *models.Device) (string, error) {
	claims := &DeviceClaims{
		DeviceID: device.ID,
		Platform: device.Platform,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().TokenExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "paisa-api",
			Subject:   device.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getTokenKey())
}

// AuthMiddleware verifies the device token and sets the device ID in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Check if the header is in the correct format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Parse the token
		tokenString := parts[1]
		claims := &DeviceClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getTokenKey(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(deviceIDKey, claims.DeviceID)
		c.Next()
	}
}

// DeviceID returns the authenticated device ID, or "" on unauthenticated
// requests.
func DeviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}

// TouchDevice records the device's last-seen timestamp on every
// authenticated request. Failures are best effort: a stale or deleted
// device must not break the request.
func TouchDevice(devices services.DeviceServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := DeviceID(c); id != "" {
			if err := devices.Touch(id); err != nil {
				logger.Get().Debugw("device touch failed", "device_id", id, "error", err)
			}
		}
		c.Next()
	}
}
