package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken est retourné quand le token est invalide
	ErrInvalidToken = errors.New("token invalide")
	// ErrExpiredToken est retourné quand le token est expiré
	ErrExpiredToken = errors.New("token expiré")
)

// Claims représente les claims du token JWT
type Claims struct {
	CaissierCode string `json:"caissier_code"`
	CaissierNom  string `json:"caissier_nom"`
	Role         string `json:"role"`
	Terminal     string `json:"terminal"`
	ExpiresAt    int64  `json:"exp"`
	IssuedAt     int64  `json:"iat"`
}

// GetExpirationTime implémente jwt.Claims
func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

// GetIssuedAt implémente jwt.Claims
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

// GetNotBefore implémente jwt.Claims
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

// GetIssuer implémente jwt.Claims
func (c Claims) GetIssuer() (string, error) {
	return "", nil
}

// GetSubject implémente jwt.Claims
func (c Claims) GetSubject() (string, error) {
	return "", nil
}

// GetAudience implémente jwt.Claims
func (c Claims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

// GenerateToken génère un nouveau token JWT pour un caissier sur un terminal
func GenerateToken(caissierCode, caissierNom, role, terminal string, expiresIn time.Duration) (string, error) {
	claims := Claims{
		CaissierCode: caissierCode,
		CaissierNom:  caissierNom,
		Role:         role,
		Terminal:     terminal,
		ExpiresAt:    time.Now().Add(expiresIn).Unix(),
		IssuedAt:     time.Now().Unix(),
	}

	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("clé secrète JWT non configurée")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken valide un token JWT
func ValidateToken(tokenString string) (*Claims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("clé secrète JWT non configurée")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshToken génère un nouveau token JWT à partir d'un token existant
func RefreshToken(tokenString string) (string, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	return GenerateToken(claims.CaissierCode, claims.CaissierNom, claims.Role, claims.Terminal, 12*time.Hour)
}
