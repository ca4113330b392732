package guest

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type AccessRequest struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

func (r AccessRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email address"),
		),
		validation.Field(&r.Language, validation.Length(2, 5)),
	)
}

type AccessResponse struct {
	Success bool `json:"success"`
}
