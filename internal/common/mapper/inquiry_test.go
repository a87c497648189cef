package mapper

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/flannelman48/whirly-rentals-website/internal/inquiry/domain"
)

func TestInquiryToDTO_JSONShape(t *testing.T) {
	inquiry := domain.RentalInquiry{
		ID: "abc",
		NewRentalInquiry: domain.NewRentalInquiry{
			FirstName:         "Ada",
			PackageInterest:   domain.PackageDryerOnly,
			DryerHookupType:   domain.HookupThreeProng,
			SixMonthAgreement: true,
			AutopayAgreement:  false,
		},
		CreatedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
	}

	b, err := json.Marshal(InquiryToDTO(inquiry))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)

	for _, want := range []string{
		`"id":"abc"`,
		`"firstName":"Ada"`,
		`"packageInterest":"dryer-only"`,
		`"dryerHookupType":"three-prong"`,
		`"sixMonthAgreement":"true"`,
		`"autopayAgreement":"false"`,
		`"message":null`,
		`"createdAt":"2025-02-03T04:05:06Z"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}

func TestInquiriesToDTO_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(InquiriesToDTO(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("expected [], got %s", b)
	}
}
