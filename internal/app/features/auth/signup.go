// internal/app/features/auth/signup.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/circuitshop/circuitshop/internal/app/system/normalize"
	"github.com/circuitshop/circuitshop/internal/app/system/timeouts"
	"github.com/circuitshop/circuitshop/internal/app/system/webutil"
	"github.com/circuitshop/circuitshop/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleSignup processes POST /auth/signup.
//
// Duplicate emails are rejected by a read-then-write check with no atomicity
// guarantee: two concurrent signups for the same email can both pass the
// lookup and both insert. Accepted risk; see DESIGN.md.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := webutil.DecodeJSON(w, r, &req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := webutil.Validate(req); err != nil {
		webutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	email := normalize.Email(req.Email)

	if _, err := h.Users.GetByEmail(ctx, email); err == nil {
		webutil.Error(w, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		webutil.StoreError(w, h.Log, "signup: user lookup failed", err)
		return
	}

	user := models.User{
		Name:           normalize.Name(req.Name),
		Email:          email,
		HashedPassword: req.Password, // raw password, no hashing
	}
	userID, err := h.Users.Create(ctx, user)
	if err != nil {
		webutil.StoreError(w, h.Log, "signup: user create failed", err)
		return
	}

	h.Log.Info("user signed up", zap.String("user_id", userID), zap.String("email", email))
	webutil.JSON(w, http.StatusOK, signupResponse{UserID: userID, Email: email})
}
