package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/klearr/customs-calculator/internal/core/domain"
)

// RegisterCustomValidators attaches domain validators to Gin's binding
// engine. Must run before any route binds a request body.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transportmode", validateTransportMode)
	}
}

func validateTransportMode(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransportMode(fl.Field().String())
	return err == nil
}
