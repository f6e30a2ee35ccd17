package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kinesia-app/kinesia/config"
)

// SessionClaims carries the authenticated practitioner through request
// contexts and cache-key owner prefixes.
type SessionClaims struct {
	PractitionerID   string `json:"pid"`
	PractitionerName string `json:"pname,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a session JWT for the practitioner.
func GenerateToken(practitionerID, practitionerName string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &SessionClaims{
		PractitionerID:   practitionerID,
		PractitionerName: practitionerName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "kinesia",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppSecretKey))
}

// ValidateToken parses and validates a session JWT.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppSecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// HashPassword encrypts the password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash verifies if the password matches the hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
