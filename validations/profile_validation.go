package validations

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	domainProfile "github.com/kinesia-app/kinesia/domains/profile"
	pkgError "github.com/kinesia-app/kinesia/pkg/error"
)

func ValidateRegister(request domainProfile.RegisterRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.Email, validation.Required, is.EmailFormat),
		validation.Field(&request.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&request.DisplayName, validation.Required, validation.Length(1, 200)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateLogin(request domainProfile.LoginRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.Email, validation.Required, is.EmailFormat),
		validation.Field(&request.Password, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
