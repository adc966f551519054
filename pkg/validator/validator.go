package validator

import (
	"github.com/go-playground/validator/v10"

	"go-resto-backoffice/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Category values contain spaces, so oneof cannot express them; validate
	// against the model's fixed set instead.
	validate.RegisterValidation("menu_category", func(fl validator.FieldLevel) bool {
		if c, ok := fl.Field().Interface().(model.Category); ok {
			return c.Valid()
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
