// Package services holds the application logic between the HTTP handlers and
// the repositories: input validation, relation resolution (callers send
// *_id fields, services look the records up), defaulting, and the domain
// rules. Every failure leaves this layer as a typed apperr value; handlers
// translate those into envelopes.
package services

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dfmorales/basketball-api/internal/apperr"
	"github.com/dfmorales/basketball-api/internal/models"
)

// NewValidator builds the validator shared by every service. Field names are
// reported by json tag so validation envelopes speak the wire vocabulary.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validar runs struct validation and converts violations into a 422-shaped
// apperr with per-field Spanish messages.
func validar(v *validator.Validate, input interface{}) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal("Error de validación", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = mensajeValidacion(fe)
	}
	return apperr.Validation("Error de validación", fields)
}

func mensajeValidacion(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "email":
		return "Correo electrónico inválido"
	case "max":
		return fmt.Sprintf("Debe tener como máximo %s caracteres", fe.Param())
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "Valor inválido"
	}
}

// parseFechaCampo parses a "YYYY-MM-DD" string, reporting the failure as a
// validation error on the named field.
func parseFechaCampo(valor, campo string) (models.Fecha, error) {
	f, err := models.ParseFecha(valor)
	if err != nil {
		return models.Fecha{}, apperr.Validation("Error de validación", map[string]string{
			campo: "Fecha inválida: se espera el formato YYYY-MM-DD",
		})
	}
	return f, nil
}

// cambioPorcentual returns the percentage change from base to nuevo, 0 when
// the base is 0.
func cambioPorcentual(base, nuevo float64) float64 {
	if base == 0 {
		return 0
	}
	return redondear2((nuevo - base) / base * 100)
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
