package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// codeAlphabet excludes visually ambiguous characters (0, O, I, l, 1).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	// ProgramCode prefixes display codes and order IDs.
	ProgramCode = "ACL"

	registrationNumberLength = 6

	// DefaultMaxRetries bounds the collision-retry loops.
	DefaultMaxRetries = 10
)

// ErrRetriesExhausted is returned when every generated candidate collided
// with a persisted identifier. Callers should surface it as a retryable
// 5xx condition, not a client error.
var ErrRetriesExhausted = errors.New("identifier generation: retries exhausted")

// IdentifierStore is the narrow persistence surface the generators need.
// Keeping it this small means the service never sees ORM types.
type IdentifierStore interface {
	RegistrationNumberExists(ctx context.Context, number string) (bool, error)
	DisplayCodeExists(ctx context.Context, code string) (bool, error)
	OrderCountForPrefix(ctx context.Context, prefix string) (int64, error)
}

func randomCode(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the host is broken beyond recovery
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out)
}

// GenerateRegistrationNumber draws a 6-character public registration number.
// Not guaranteed globally unique; see GenerateUniqueRegistrationNumber.
func GenerateRegistrationNumber() string {
	return randomCode(registrationNumberLength)
}

// GenerateUniqueRegistrationNumber retries GenerateRegistrationNumber against
// the store until a free number is found or maxRetries draws all collided.
// maxRetries <= 0 falls back to DefaultMaxRetries.
func GenerateUniqueRegistrationNumber(ctx context.Context, store IdentifierStore, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	for i := 0; i < maxRetries; i++ {
		candidate := GenerateRegistrationNumber()
		exists, err := store.RegistrationNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrRetriesExhausted
}

// GenerateDisplayCode builds the anonymized public code shown in place of a
// participant's name: ACL{year}-{6 chars}. year <= 0 means the current
// calendar year in Colombo.
func GenerateDisplayCode(year int) string {
	if year <= 0 {
		year = NowInColombo().Year()
	}
	return fmt.Sprintf("%s%d-%s", ProgramCode, year, randomCode(registrationNumberLength))
}

// GenerateUniqueDisplayCode has the same retry contract as
// GenerateUniqueRegistrationNumber, scoped by year.
func GenerateUniqueDisplayCode(ctx context.Context, store IdentifierStore, year, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	for i := 0; i < maxRetries; i++ {
		candidate := GenerateDisplayCode(year)
		exists, err := store.DisplayCodeExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrRetriesExhausted
}

// OrderPrefix is the year-scoped prefix orders are counted under.
func OrderPrefix(year int) string {
	if year <= 0 {
		year = NowInColombo().Year()
	}
	return fmt.Sprintf("ORDER-%s%d-", ProgramCode, year)
}

// GenerateOrderID builds ORDER-ACL{year}-{seq, 5 digits}-{last 6 digits of
// epoch millis}. The sequence comes from a count-then-use read, which races
// under concurrent creation; the timestamp suffix lowers (does not remove)
// the chance that two requests land on the same ID.
func GenerateOrderID(sequence int64, year int) string {
	if year <= 0 {
		year = NowInColombo().Year()
	}
	millis := nowFn().UnixMilli()
	return fmt.Sprintf("ORDER-%s%d-%05d-%06d", ProgramCode, year, sequence, millis%1_000_000)
}

// NextOrderID reads the year-scoped order count from the store and derives
// the next order ID from it.
func NextOrderID(ctx context.Context, store IdentifierStore, year int) (string, error) {
	if year <= 0 {
		year = NowInColombo().Year()
	}
	count, err := store.OrderCountForPrefix(ctx, OrderPrefix(year))
	if err != nil {
		return "", err
	}
	return GenerateOrderID(count+1, year), nil
}
