// internal/app/features/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleLogin processes POST /auth/login.
//
// "Invalid credentials" deliberately covers both unknown email and wrong
// password so the two cases cannot be told apart from the response.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webutil.DecodeJSON(w, r, &req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := webutil.Validate(req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			webutil.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		webutil.StoreError(w, h.Log, "login: user lookup failed", err)
		return
	}
	if user.HashedPassword != req.Password {
		webutil.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	webutil.JSON(w, http.StatusOK, loginResponse{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
	})
}
