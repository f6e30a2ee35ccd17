package validations

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	domainClient "github.com/kinesia-app/kinesia/domains/client"
	pkgError "github.com/kinesia-app/kinesia/pkg/error"
)

func ValidateCreateClient(request domainClient.CreateClientRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.DisplayName, validation.Required, validation.Length(1, 200)),
		validation.Field(&request.Email, validation.When(request.Email != "", is.EmailFormat)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateClient(c domainClient.Client) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.DisplayName, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Email, validation.When(c.Email != "", is.EmailFormat)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
