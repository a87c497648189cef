package mapper

import (
	"github.com/flannelman48/whirly-rentals-website/internal/common/dto"
	inquirydomain "github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

func InquiryToDTO(inquiry inquirydomain.RentalInquiry) dto.RentalInquiry {
	return dto.RentalInquiry{
		ID:                   string(inquiry.ID),
		FirstName:            inquiry.FirstName,
		LastName:             inquiry.LastName,
		Email:                inquiry.Email,
		Phone:                inquiry.Phone,
		ServiceAddress:       inquiry.ServiceAddress,
		PackageInterest:      string(inquiry.PackageInterest),
		PreferredInstallDate: inquiry.PreferredInstallDate,
		DryerHookupType:      string(inquiry.DryerHookupType),
		SixMonthAgreement:    inquirydomain.FormatAgreement(inquiry.SixMonthAgreement),
		AutopayAgreement:     inquirydomain.FormatAgreement(inquiry.AutopayAgreement),
		Message:              inquiry.Message,
		CreatedAt:            inquiry.CreatedAt,
	}
}

func InquiriesToDTO(inquiries []inquirydomain.RentalInquiry) []dto.RentalInquiry {
	result := make([]dto.RentalInquiry, len(inquiries))
	for i, inq := range inquiries {
		result[i] = InquiryToDTO(inq)
	}
	return result
}
