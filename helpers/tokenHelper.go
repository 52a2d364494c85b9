package helpers

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SignedDetails are the claims embedded in an access token. The role claim is
// informational only: authorization re-reads the user's current role on every
// request, so a role change takes effect before the token expires.
type SignedDetails struct {
	Uid      string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// TokenHelper signs and verifies access tokens. Constructed once in main with
// the configured secret and expiry.
type TokenHelper struct {
	secret []byte
	expiry time.Duration
}

func NewTokenHelper(secret string, expiry time.Duration) *TokenHelper {
	return &TokenHelper{secret: []byte(secret), expiry: expiry}
}

func (t *TokenHelper) GenerateToken(userID primitive.ObjectID, username string, role string) (string, error) {
	claims := SignedDetails{
		Uid:      userID.Hex(),
		Username: username,
		Role:     role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(t.expiry).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// ValidateToken parses and verifies a signed token, distinguishing an expired
// token from an otherwise invalid one.
func (t *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, *AppError) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
	)
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, Unauthorized("token expired")
		}
		return nil, Unauthorized("invalid token")
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, Unauthorized("invalid token")
	}
	return claims, nil
}
