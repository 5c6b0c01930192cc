package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações carregadas no token de acesso à API
type Claims struct {
	Role     string   `json:"role"`
	Accounts []string `json:"accounts,omitempty"` // vazio libera todas as contas
	jwt.RegisteredClaims
}

// CanAccessAccount informa se o token libera a conta informada
func (c *Claims) CanAccessAccount(accountID string) bool {
	if len(c.Accounts) == 0 {
		return true
	}
	for _, id := range c.Accounts {
		if id == accountID {
			return true
		}
	}
	return false
}
