// Package httpx provides the JSON response helpers shared by the storefront
// handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/georgemunganga/printa-storefront/internal/resource"
)

// Sentinel errors handlers map to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// StatusCoder is implemented by errors that know their HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// ProblemDetail follows RFC7807.
type ProblemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

var validate = validator.New()

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Problem sends an RFC7807 problem details response.
func Problem(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ProblemDetail{Title: http.StatusText(status), Status: status, Detail: detail})
}

// Decode reads a JSON body into target and runs its validate tags.
func Decode(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := validate.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field()+" "+fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// StatusFor maps an error to the status code a client should see.
func StatusFor(err error) int {
	var coder StatusCoder
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &coder):
		return coder.HTTPStatus()
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a problem response.
func RespondError(w http.ResponseWriter, err error) {
	Problem(w, StatusFor(err), err.Error())
}

// Resource writes a terminal Resource as its JSON envelope.
func Resource[T any](w http.ResponseWriter, res resource.Resource[T]) {
	JSON(w, StatusFor(res.Err()), res)
}
