package service

import (
	commonvalidation "github.com/flannelman48/whirly-rentals-website/internal/common/validation"
	"github.com/flannelman48/whirly-rentals-website/internal/user/domain"
)

var userMessages = commonvalidation.Messages{
	"username": "Username is required",
	"password": "Password is required",
}

type userInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserValidator struct {
	engine *commonvalidation.Engine
}

func NewUserValidator() *UserValidator {
	return &UserValidator{engine: commonvalidation.NewEngine()}
}

func (v *UserValidator) Validate(raw map[string]any) (domain.NewUser, error) {
	var fields []commonvalidation.FieldError

	username, usernameTypeErr := commonvalidation.String(raw, "username")
	password, passwordTypeErr := commonvalidation.String(raw, "password")

	ruleErrors, err := v.engine.Struct(userInput{Username: username, Password: password}, userMessages)
	if err != nil {
		return domain.NewUser{}, err
	}

	for _, pair := range []struct {
		name    string
		typeErr *commonvalidation.FieldError
	}{
		{"username", usernameTypeErr},
		{"password", passwordTypeErr},
	} {
		if pair.typeErr != nil {
			fields = append(fields, *pair.typeErr)
			continue
		}
		if fe, ok := ruleErrors[pair.name]; ok {
			fields = append(fields, fe)
		}
	}

	if len(fields) > 0 {
		return domain.NewUser{}, commonvalidation.NewValidationError(fields)
	}
	return domain.NewUser{Username: username, Password: password}, nil
}
