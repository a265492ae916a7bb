package chessdto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var ErrInvalid = errors.New("invalid value")

func (c ComputerConfiguration) Validate() error {
	return describe(validate.Struct(c))
}

func (u UserData) Validate() error {
	return describe(validate.Struct(u))
}

// describe flattens validator output into a single readable error.
func describe(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min", "max":
			details.WriteString(fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param()))
		case "email":
			details.WriteString(fmt.Sprintf("%s must be a valid email", fe.Field()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, details.String())
}
