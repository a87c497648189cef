package domain

import (
	"strconv"
	"time"
)

type ID string

type PackageInterest string

const (
	PackageWasherDryerUsed PackageInterest = "washer-dryer-used"
	PackageWasherDryerNew  PackageInterest = "washer-dryer-new"
	PackageWasherOnly      PackageInterest = "washer-only"
	PackageDryerOnly       PackageInterest = "dryer-only"
	PackageRepairRequest   PackageInterest = "repair-request"
)

var PackageInterests = []PackageInterest{
	PackageWasherDryerUsed,
	PackageWasherDryerNew,
	PackageWasherOnly,
	PackageDryerOnly,
	PackageRepairRequest,
}

type DryerHookupType string

const (
	HookupThreeProng DryerHookupType = "three-prong"
	HookupFourProng  DryerHookupType = "four-prong"
	HookupGas        DryerHookupType = "gas"
	HookupNotSure    DryerHookupType = "not-sure"
)

var DryerHookupTypes = []DryerHookupType{
	HookupThreeProng,
	HookupFourProng,
	HookupGas,
	HookupNotSure,
}

// NewRentalInquiry is a validated submission that has not been stored yet.
type NewRentalInquiry struct {
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	ServiceAddress       string
	PackageInterest      PackageInterest
	PreferredInstallDate string
	DryerHookupType      DryerHookupType
	SixMonthAgreement    bool
	AutopayAgreement     bool
	Message              *string
}

type RentalInquiry struct {
	ID ID
	NewRentalInquiry
	CreatedAt time.Time
}

// FormatAgreement is the stored and serialized form of an agreement flag.
func FormatAgreement(v bool) string {
	return strconv.FormatBool(v)
}

func ParseAgreement(s string) bool {
	return s == "true"
}
