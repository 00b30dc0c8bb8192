package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRegistrationPrice(t *testing.T) {
	tests := []struct {
		regType RegistrationType
		period  RegistrationPeriod
		want    int
	}{
		{TypeIndividual, PeriodEarlyBird, 2000},
		{TypeIndividual, PeriodStandard, 3000},
		{TypeIndividual, PeriodLate, 5000},
		{TypeTeam, PeriodEarlyBird, 4000},
		{TypeTeam, PeriodStandard, 5000},
		{TypeTeam, PeriodLate, 8000},
		{TypeCompany, PeriodEarlyBird, 4000},
		{TypeCompany, PeriodStandard, 5000},
		{TypeCompany, PeriodLate, 8000},
		{TypeStudent, PeriodEarlyBird, 2000},
		{TypeStudent, PeriodStandard, 2000},
		{TypeStudent, PeriodLate, 2000},
		{TypeKids, PeriodEarlyBird, 2000},
		{TypeKids, PeriodStandard, 2000},
		{TypeKids, PeriodLate, 2000},
	}

	for _, tt := range tests {
		t.Run(string(tt.regType)+"/"+string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateRegistrationPrice(tt.regType, tt.period))
		})
	}
}

func TestCalculateRegistrationPriceUnknownPeriodFallsBackToStandard(t *testing.T) {
	bogus := RegistrationPeriod("flash_sale")

	assert.Equal(t, 3000, CalculateRegistrationPrice(TypeIndividual, bogus))
	assert.Equal(t, 5000, CalculateRegistrationPrice(TypeTeam, bogus))
	assert.Equal(t, 5000, CalculateRegistrationPrice(TypeCompany, bogus))
	assert.Equal(t, 2000, CalculateRegistrationPrice(TypeStudent, bogus))
	assert.Equal(t, 2000, CalculateRegistrationPrice(TypeKids, bogus))
}

func TestParseRegistrationType(t *testing.T) {
	tests := []struct {
		in     string
		want   RegistrationType
		wantOK bool
	}{
		{"individual", TypeIndividual, true},
		{" Team ", TypeTeam, true},
		{"COMPANY", TypeCompany, true},
		{"student", TypeStudent, true},
		{"kids", TypeKids, true},
		{"corporate", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRegistrationType(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
