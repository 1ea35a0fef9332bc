package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/streamhub/streamhub/internal/shared"
)

// Claims is the signed claim set: the registered claims plus the subject's
// user id in hex form.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs an HS256 token carrying userID, valid for
// validityDuration from now.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token signature and expiry and returns the
// embedded user id. Malformed, forged, and expired tokens all fail with
// shared.ErrInvalidToken; callers must not relay the distinction outward.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", shared.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", shared.ErrInvalidToken
	}

	return claims.UserID, nil
}
