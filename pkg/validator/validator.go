package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse descreve um campo que falhou na validação.
type ErrorResponse struct {
	FailedField string `json:"campo"`
	Tag         string `json:"regra"`
	Value       string `json:"parametro,omitempty"`
}

var validate = validator.New()

func init() {
	// Usa o nome JSON do campo nas mensagens, que é o que o cliente enviou.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// clock aceita HH:MM ou HH:MM:SS.
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, layout := range []string{"15:04:05", "15:04"} {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	})
}

// ValidateStruct valida as tags `validate` e devolve um item por campo inválido.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var out []*ErrorResponse
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*ErrorResponse{{FailedField: "-", Tag: err.Error()}}
	}
	for _, fe := range verrs {
		out = append(out, &ErrorResponse{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fe.Param(),
		})
	}
	return out
}
