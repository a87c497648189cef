package validation

import (
	commonvalidation "github.com/flannelman48/whirly-rentals-website/internal/common/validation"
	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

var fieldOrder = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"serviceAddress",
	"packageInterest",
	"preferredInstallDate",
	"dryerHookupType",
	"sixMonthAgreement",
	"autopayAgreement",
	"message",
}

var messages = commonvalidation.Messages{
	"firstName":            "First name is required",
	"lastName":             "Last name is required",
	"email":                "Valid email is required",
	"phone":                "Phone number is required",
	"serviceAddress":       "Service address is required",
	"packageInterest":      "Please select a package",
	"preferredInstallDate": "Installation day preference is required",
	"dryerHookupType":      "Please select dryer hookup type",
	"sixMonthAgreement":    "You must agree to the six month minimum rental period",
	"autopayAgreement":     "You must agree to have a card on file for autopay",
	"message":              "Message must be 1000 characters or less",
}

// enumFields report their own message for type mismatches too.
var enumFields = map[string]bool{
	"packageInterest": true,
	"dryerHookupType": true,
}

type rentalInquiryInput struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"required"`
	ServiceAddress       string `json:"serviceAddress" validate:"required"`
	PackageInterest      string `json:"packageInterest" validate:"oneof=washer-dryer-used washer-dryer-new washer-only dryer-only repair-request"`
	PreferredInstallDate string `json:"preferredInstallDate" validate:"required"`
	DryerHookupType      string `json:"dryerHookupType" validate:"oneof=three-prong four-prong gas not-sure"`
	SixMonthAgreement    bool   `json:"sixMonthAgreement" validate:"eq=true"`
	AutopayAgreement     bool   `json:"autopayAgreement" validate:"eq=true"`
	Message              string `json:"message" validate:"max=1000"`
}

type RentalInquiryValidator struct {
	engine *commonvalidation.Engine
}

func NewRentalInquiryValidator() *RentalInquiryValidator {
	return &RentalInquiryValidator{engine: commonvalidation.NewEngine()}
}

// Validate turns an untyped request body into a NewRentalInquiry. On rejection the
// error is a *commonvalidation.ValidationError listing every failing field.
func (v *RentalInquiryValidator) Validate(raw map[string]any) (domain.NewRentalInquiry, error) {
	typeErrors := make(map[string]commonvalidation.FieldError)
	str := func(key string) string {
		s, fe := commonvalidation.String(raw, key)
		if fe != nil {
			if enumFields[key] {
				fe.Message = messages[key]
			}
			typeErrors[key] = *fe
		}
		return s
	}

	in := rentalInquiryInput{
		FirstName:            str("firstName"),
		LastName:             str("lastName"),
		Email:                str("email"),
		Phone:                str("phone"),
		ServiceAddress:       str("serviceAddress"),
		PackageInterest:      str("packageInterest"),
		PreferredInstallDate: str("preferredInstallDate"),
		DryerHookupType:      str("dryerHookupType"),
		SixMonthAgreement:    commonvalidation.Bool(raw, "sixMonthAgreement"),
		AutopayAgreement:     commonvalidation.Bool(raw, "autopayAgreement"),
		Message:              str("message"),
	}

	ruleErrors, err := v.engine.Struct(in, messages)
	if err != nil {
		return domain.NewRentalInquiry{}, err
	}

	var fields []commonvalidation.FieldError
	for _, name := range fieldOrder {
		if fe, ok := typeErrors[name]; ok {
			fields = append(fields, fe)
			continue
		}
		if fe, ok := ruleErrors[name]; ok {
			fields = append(fields, fe)
		}
	}
	if len(fields) > 0 {
		return domain.NewRentalInquiry{}, commonvalidation.NewValidationError(fields)
	}

	var message *string
	if in.Message != "" {
		msg := in.Message
		message = &msg
	}

	return domain.NewRentalInquiry{
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		ServiceAddress:       in.ServiceAddress,
		PackageInterest:      domain.PackageInterest(in.PackageInterest),
		PreferredInstallDate: in.PreferredInstallDate,
		DryerHookupType:      domain.DryerHookupType(in.DryerHookupType),
		SixMonthAgreement:    in.SixMonthAgreement,
		AutopayAgreement:     in.AutopayAgreement,
		Message:              message,
	}, nil
}
