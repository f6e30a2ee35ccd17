package validations

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	domainAppointment "github.com/kinesia-app/kinesia/domains/appointment"
	pkgError "github.com/kinesia-app/kinesia/pkg/error"
)

func ValidateCreateAppointment(request domainAppointment.CreateAppointmentRequest) error {
	err := validation.ValidateStruct(&request,
		validation.Field(&request.ClientID, validation.Required),
		validation.Field(&request.StartsAt, validation.Required),
		validation.Field(&request.EndsAt, validation.Required),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	if !request.EndsAt.After(request.StartsAt) {
		return pkgError.ValidationError("ends_at: must be after starts_at.")
	}

	return nil
}

func ValidateAppointment(a domainAppointment.Appointment) error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.ClientID, validation.Required),
		validation.Field(&a.Status, validation.Required, validation.In(
			domainAppointment.StatusScheduled,
			domainAppointment.StatusCompleted,
			domainAppointment.StatusCancelled,
			domainAppointment.StatusNoShow,
		)),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	if !a.EndsAt.After(a.StartsAt) {
		return pkgError.ValidationError("ends_at: must be after starts_at.")
	}

	return nil
}
