// Package webutil holds the JSON request/response plumbing shared by every
// handler: body decoding, payload validation, and response encoding.
//
// Validation uses go-playground/validator tags attached to the per-endpoint
// request structs, so each endpoint's constraints live next to its payload
// type and run before any store access.
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/circuitshop/circuitshop/internal/app/store/docs"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; payloads here are small JSON objects.
const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON reads the request body into dst. Returns an error on malformed
// JSON or an oversized body.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// Validate checks v against its validation tags and returns a client-facing
// error naming the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%s is required", fe.Field())
		case "email":
			return fmt.Errorf("%s must be a valid email address", fe.Field())
		case "min":
			return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
		case "gte":
			return fmt.Errorf("%s must be at least %s", fe.Field(), fe.Param())
		default:
			return fmt.Errorf("%s is invalid", fe.Field())
		}
	}
	return err
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// Error writes a JSON error envelope with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// StoreError maps a store-layer failure to the uniform server error. An
// unconfigured store always reads "Database not configured" regardless of
// which operation hit it; anything else is logged and reported generically.
func StoreError(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if errors.Is(err, docs.ErrUnavailable) {
		Error(w, http.StatusInternalServerError, "Database not configured")
		return
	}
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "A database error occurred")
}
