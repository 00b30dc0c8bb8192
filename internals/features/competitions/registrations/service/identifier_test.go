package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ IdentifierStore = &mockIdentifierStore{}

type mockIdentifierStore struct {
	RegistrationNumberExistsFunc func(ctx context.Context, number string) (bool, error)
	DisplayCodeExistsFunc        func(ctx context.Context, code string) (bool, error)
	OrderCountForPrefixFunc      func(ctx context.Context, prefix string) (int64, error)
}

func (m *mockIdentifierStore) RegistrationNumberExists(ctx context.Context, number string) (bool, error) {
	return m.RegistrationNumberExistsFunc(ctx, number)
}

func (m *mockIdentifierStore) DisplayCodeExists(ctx context.Context, code string) (bool, error) {
	return m.DisplayCodeExistsFunc(ctx, code)
}

func (m *mockIdentifierStore) OrderCountForPrefix(ctx context.Context, prefix string) (int64, error) {
	return m.OrderCountForPrefixFunc(ctx, prefix)
}

func TestGenerateRegistrationNumber(t *testing.T) {
	for i := 0; i < 500; i++ {
		number := GenerateRegistrationNumber()
		require.Len(t, number, 6)
		for _, r := range number {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected character %q in %q", r, number)
		}
		for _, forbidden := range "0OIl1" {
			assert.NotContains(t, number, string(forbidden))
		}
	}
}

func TestGenerateUniqueRegistrationNumber(t *testing.T) {
	t.Run("first draw is free", func(t *testing.T) {
		attempts := 0
		store := &mockIdentifierStore{
			RegistrationNumberExistsFunc: func(ctx context.Context, number string) (bool, error) {
				attempts++
				return false, nil
			},
		}

		number, err := GenerateUniqueRegistrationNumber(context.Background(), store, 10)
		require.NoError(t, err)
		assert.Len(t, number, 6)
		assert.Equal(t, 1, attempts)
	})

	t.Run("collisions then success", func(t *testing.T) {
		attempts := 0
		store := &mockIdentifierStore{
			RegistrationNumberExistsFunc: func(ctx context.Context, number string) (bool, error) {
				attempts++
				return attempts < 3, nil
			},
		}

		_, err := GenerateUniqueRegistrationNumber(context.Background(), store, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhausts after exactly maxRetries colliding draws", func(t *testing.T) {
		attempts := 0
		store := &mockIdentifierStore{
			RegistrationNumberExistsFunc: func(ctx context.Context, number string) (bool, error) {
				attempts++
				return true, nil
			},
		}

		_, err := GenerateUniqueRegistrationNumber(context.Background(), store, 4)
		require.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, 4, attempts)
	})

	t.Run("zero maxRetries uses the default budget", func(t *testing.T) {
		attempts := 0
		store := &mockIdentifierStore{
			RegistrationNumberExistsFunc: func(ctx context.Context, number string) (bool, error) {
				attempts++
				return true, nil
			},
		}

		_, err := GenerateUniqueRegistrationNumber(context.Background(), store, 0)
		require.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, DefaultMaxRetries, attempts)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		boom := errors.New("db down")
		store := &mockIdentifierStore{
			RegistrationNumberExistsFunc: func(ctx context.Context, number string) (bool, error) {
				return false, boom
			},
		}

		_, err := GenerateUniqueRegistrationNumber(context.Background(), store, 10)
		require.ErrorIs(t, err, boom)
	})
}

func TestGenerateDisplayCode(t *testing.T) {
	pattern := regexp.MustCompile(`^ACL2026-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`)

	for i := 0; i < 100; i++ {
		code := GenerateDisplayCode(2026)
		assert.Regexp(t, pattern, code)
		assert.Len(t, code, 14)
	}
}

func TestGenerateDisplayCodeDefaultsToColomboYear(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	// 2026-12-31 19:30 UTC is already 2027-01-01 01:00 in Colombo
	nowFn = func() time.Time { return time.Date(2026, 12, 31, 19, 30, 0, 0, time.UTC) }

	code := GenerateDisplayCode(0)
	assert.True(t, strings.HasPrefix(code, "ACL2027-"), "got %q", code)
}

func TestGenerateUniqueDisplayCode(t *testing.T) {
	t.Run("exhausts after exactly maxRetries colliding draws", func(t *testing.T) {
		attempts := 0
		store := &mockIdentifierStore{
			DisplayCodeExistsFunc: func(ctx context.Context, code string) (bool, error) {
				attempts++
				return true, nil
			},
		}

		_, err := GenerateUniqueDisplayCode(context.Background(), store, 2026, 3)
		require.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns a free code", func(t *testing.T) {
		store := &mockIdentifierStore{
			DisplayCodeExistsFunc: func(ctx context.Context, code string) (bool, error) {
				return false, nil
			},
		}

		code, err := GenerateUniqueDisplayCode(context.Background(), store, 2026, 10)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "ACL2026-"))
	})
}

func TestOrderPrefix(t *testing.T) {
	assert.Equal(t, "ORDER-ACL2026-", OrderPrefix(2026))
}

func TestGenerateOrderID(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	nowFn = func() time.Time { return time.UnixMilli(1765432123456) }

	id := GenerateOrderID(7, 2026)
	assert.Equal(t, "ORDER-ACL2026-00007-123456", id)
}

func TestGenerateOrderIDPadsTimestampSuffix(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	nowFn = func() time.Time { return time.UnixMilli(1765432000042) }

	id := GenerateOrderID(123, 2026)
	assert.Equal(t, "ORDER-ACL2026-00123-000042", id)
}

func TestNextOrderID(t *testing.T) {
	restore := nowFn
	defer func() { nowFn = restore }()
	nowFn = func() time.Time { return time.UnixMilli(1765432123456) }

	var seenPrefix string
	store := &mockIdentifierStore{
		OrderCountForPrefixFunc: func(ctx context.Context, prefix string) (int64, error) {
			seenPrefix = prefix
			return 41, nil
		},
	}

	id, err := NextOrderID(context.Background(), store, 2026)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-ACL2026-", seenPrefix)
	assert.Equal(t, "ORDER-ACL2026-00042-123456", id)
}

func TestNextOrderIDStoreError(t *testing.T) {
	boom := errors.New("db down")
	store := &mockIdentifierStore{
		OrderCountForPrefixFunc: func(ctx context.Context, prefix string) (int64, error) {
			return 0, boom
		},
	}

	_, err := NextOrderID(context.Background(), store, 2026)
	require.ErrorIs(t, err, boom)
}
