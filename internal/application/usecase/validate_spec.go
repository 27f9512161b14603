package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

const minPassphraseLength = 8

func newSpecValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		spec := sl.Current().Interface().(entity.ServiceSpec)
		if spec.Security != entity.SecurityOpen && spec.Passphrase != "" && len(spec.Passphrase) < minPassphraseLength {
			sl.ReportError(spec.Passphrase, "Passphrase", "Passphrase", "min", fmt.Sprint(minPassphraseLength))
		}
	}, entity.ServiceSpec{})
	return v
}

// validateServiceSpec checks the WLAN definition before anything is sent to the controller.
func validateServiceSpec(v *validator.Validate, spec entity.ServiceSpec) error {
	err := v.Struct(spec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", types.ErrInvalidServiceSpec, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", types.ErrInvalidServiceSpec, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_unless":
		return field + " is required unless security is open"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		if field == "sites" {
			return "at least one site must be selected"
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
}
