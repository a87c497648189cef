package dto

import "time"

// RentalInquiry is the wire form of a stored inquiry. Agreement flags travel as
// the strings "true" or "false".
type RentalInquiry struct {
	ID                   string    `json:"id"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	ServiceAddress       string    `json:"serviceAddress"`
	PackageInterest      string    `json:"packageInterest"`
	PreferredInstallDate string    `json:"preferredInstallDate"`
	DryerHookupType      string    `json:"dryerHookupType"`
	SixMonthAgreement    string    `json:"sixMonthAgreement"`
	AutopayAgreement     string    `json:"autopayAgreement"`
	Message              *string   `json:"message"`
	CreatedAt            time.Time `json:"createdAt"`
}

type CreateInquiryResponse struct {
	Success bool          `json:"success"`
	Inquiry RentalInquiry `json:"inquiry"`
}
