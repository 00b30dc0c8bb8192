package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	ad := AdvertisementModel{
		AdStartsOn: day(2026, time.March, 1),
		AdEndsOn:   day(2026, time.March, 10),
	}

	assert.True(t, ad.WithinWindow(day(2026, time.March, 1)), "first day is inside")
	assert.True(t, ad.WithinWindow(day(2026, time.March, 5)))
	assert.True(t, ad.WithinWindow(day(2026, time.March, 10)), "last day is inside")
	assert.False(t, ad.WithinWindow(day(2026, time.February, 28)))
	assert.False(t, ad.WithinWindow(day(2026, time.March, 11)))

	// 2026-02-28 20:00 UTC is already March 1 in Colombo (UTC+5:30),
	// so an evening request lands inside the window.
	eve := time.Date(2026, time.February, 28, 20, 0, 0, 0, time.UTC)
	assert.True(t, ad.WithinWindow(eve))
}
