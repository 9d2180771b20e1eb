// internal/app/features/auth/handler.go
package auth

import (
	userstore "github.com/circuitshop/circuitshop/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler serves signup and login.
//
// Login issues no session or token: it returns a bare identity payload and
// later calls simply trust a client-supplied user_id. Passwords are stored
// and compared in plaintext (hashed_password holds the raw password); both
// are known weaknesses of the current system, not design features.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}
