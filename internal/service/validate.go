package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息里使用 JSON 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return &ValidationError{Msg: strings.Join(msgs, "; ")}
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "email":
		return fmt.Sprintf("%s no es un email válido", field)
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s requiere al menos %s elementos", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s excede el largo máximo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s)", field, fe.Tag())
	}
}
