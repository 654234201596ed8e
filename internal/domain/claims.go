package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o cliente MCP que acessa o transporte HTTP
type Claims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}
