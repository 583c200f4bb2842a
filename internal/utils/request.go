package utils

import (
	"errors"
	"net/http"

	apperrors "github.com/katana-forge/storefront/internal/errors"
	"github.com/katana-forge/storefront/internal/utils/response"

	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON request body into dest and validates
// it, writing the error response itself. It reports whether the handler
// should continue.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, apperrors.BadRequestError("Invalid request body"))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, apperrors.ValidationError("Invalid input data"))
		return false
	}

	return true

}
