package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const LoginTokenDuration = 7 * 24 * time.Hour

type LoginClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(viper.GetString("security.jwt_secret"))
}

// SignLoginToken issues the bearer credential for an account.
// Remember-me stretches the expiry tenfold, same as the web client expects.
func SignLoginToken(userID uint, rememberMe bool) (string, error) {
	duration := LoginTokenDuration
	if rememberMe {
		duration *= 10
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, LoginClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	})

	return token.SignedString(jwtSecret())
}

// VerifyLoginToken decodes a bearer credential back into its claims.
// Expired, malformed and wrongly signed tokens all come back as errors;
// callers decide whether that means denial or an anonymous fallback.
func VerifyLoginToken(tokenStr string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &LoginClaims{}, func(t *jwt.Token) (any, error) {
		return jwtSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenMalformed
	}

	return claims, nil
}
