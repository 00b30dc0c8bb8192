package service

import "strings"

// RegistrationType is how a participant enters the competition.
type RegistrationType string

const (
	TypeIndividual RegistrationType = "individual"
	TypeTeam       RegistrationType = "team"
	TypeCompany    RegistrationType = "company"
	TypeStudent    RegistrationType = "student"
	TypeKids       RegistrationType = "kids"
)

// ParseRegistrationType maps free-form input onto a known type.
func ParseRegistrationType(s string) (RegistrationType, bool) {
	switch RegistrationType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIndividual:
		return TypeIndividual, true
	case TypeTeam:
		return TypeTeam, true
	case TypeCompany:
		return TypeCompany, true
	case TypeStudent:
		return TypeStudent, true
	case TypeKids:
		return TypeKids, true
	default:
		return "", false
	}
}

// Fees in LKR. Student and kids entries cost the same in every period.
const (
	studentFee = 2000
	kidsFee    = 2000
)

var individualFees = map[RegistrationPeriod]int{
	PeriodEarlyBird: 2000,
	PeriodStandard:  3000,
	PeriodLate:      5000,
}

var groupFees = map[RegistrationPeriod]int{
	PeriodEarlyBird: 4000,
	PeriodStandard:  5000,
	PeriodLate:      8000,
}

// CalculateRegistrationPrice resolves the fee for a type under a period.
// Unrecognized periods fall back to the standard tier for the type; this
// never errors so a misconfigured window cannot dead-end a checkout.
func CalculateRegistrationPrice(t RegistrationType, p RegistrationPeriod) int {
	switch t {
	case TypeStudent:
		return studentFee
	case TypeKids:
		return kidsFee
	case TypeTeam, TypeCompany:
		if fee, ok := groupFees[p]; ok {
			return fee
		}
		return groupFees[PeriodStandard]
	default:
		if fee, ok := individualFees[p]; ok {
			return fee
		}
		return individualFees[PeriodStandard]
	}
}
