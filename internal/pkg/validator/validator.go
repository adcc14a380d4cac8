package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/map-annotator/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры; ошибки полей превращаются в INVALID_REQUEST с деталями
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(details)
}
