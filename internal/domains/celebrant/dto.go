package celebrant

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var numberOrSpecial = regexp.MustCompile(`[^a-zA-Z]`)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be at least 8 characters long"),
			validation.Match(regexp.MustCompile(`[A-Z]`)).Error("password must contain at least one uppercase letter"),
			validation.Match(numberOrSpecial).Error("password must contain at least one number or special character"),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("invalid email address")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type CelebrantResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthResponse is the wire shape of a successful register/login. The refresh
// token travels separately in an httpOnly cookie, never in the body.
type AuthResponse struct {
	Token string            `json:"token"`
	User  CelebrantResponse `json:"user"`
}

type RefreshResponse struct {
	Token string `json:"token"`
}

// AuthResult is what the service hands back to the handler: both tokens plus
// the account. The handler decides what goes in the body and what in cookies.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	Celebrant    *Celebrant
}

func (r *AuthResult) ToAuthResponse() AuthResponse {
	return AuthResponse{
		Token: r.AccessToken,
		User: CelebrantResponse{
			ID:    r.Celebrant.ID,
			Email: r.Celebrant.Email,
		},
	}
}
