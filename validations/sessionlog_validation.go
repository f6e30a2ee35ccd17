package validations

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainSessionLog "github.com/kinesia-app/kinesia/domains/sessionlog"
	pkgError "github.com/kinesia-app/kinesia/pkg/error"
)

func ValidateCreateLog(request domainSessionLog.CreateLogRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.AppointmentID, validation.Required),
		validation.Field(&request.Entry, validation.Required, validation.Length(1, 10000)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
