package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/deniz/campusreg/internal/pkg/validation"
)

// RegisterCustomValidators registers the application's custom rules (the
// "grade" vocabulary rule) on Gin's binding validator so request DTOs can use
// them in binding tags.
func RegisterCustomValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return validation.RegisterRules(v)
	}
	return nil
}
