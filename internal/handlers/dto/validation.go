package dto

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra as regras de validação próprias do
// domínio no engine de binding do Gin. Deve ser chamada uma vez no startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}
	return v.RegisterValidation("cpf", validCPF)
}

// validCPF aceita exatamente 11 dígitos numéricos
func validCPF(fl validator.FieldLevel) bool {
	cpf := fl.Field().String()
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToValidationErrors converte erros do validator para o formato da API
func ToValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fieldErr := range verrs {
		result = append(result, ValidationError{
			Field:   fieldErr.Field(),
			Message: fieldErr.Error(),
			Tag:     fieldErr.Tag(),
			Value:   fmt.Sprintf("%v", fieldErr.Value()),
		})
	}
	return result
}
