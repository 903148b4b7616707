package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de sessão do admin.
type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// Tempo de vida do token de acesso.
const TTLAcesso = 12 * time.Hour

var ErrTokenInvalido = errors.New("token inválido")

func segredo() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	// Somente para desenvolvimento local; em produção defina JWT_SECRET.
	return []byte("api-crm-dev")
}

// GerarToken emite um JWT HS256 para a sessão do admin.
func GerarToken(usuario string) (string, error) {
	agora := time.Now()
	claims := &Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario,
			ExpiresAt: jwt.NewNumericDate(agora.Add(TTLAcesso)),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora.Add(-1 * time.Minute)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(segredo())
}

// ValidarToken confere assinatura e validade e devolve os claims.
func ValidarToken(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return segredo(), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
