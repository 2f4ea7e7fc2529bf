package session

import (
	"time"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the signed session payload: the standard claims plus the
// user ID the session belongs to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func generateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func userIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrNotFound
	}

	return claims.UserID, nil
}
