package configs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func captureLog(fn func()) string {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestGormLoggerTrace(t *testing.T) {
	l := NewGormLogger()
	ctx := context.Background()

	fast := func() (string, int64) { return "SELECT 1", 1 }

	out := captureLog(func() {
		l.(*GormLogger).Trace(ctx, time.Now(), fast, nil)
	})
	assert.Contains(t, out, "[QUERY]")
	assert.Contains(t, out, "SELECT 1")

	out = captureLog(func() {
		l.(*GormLogger).Trace(ctx, time.Now().Add(-time.Second), fast, nil)
	})
	assert.Contains(t, out, "[SLOW SQL]", "queries over the threshold are flagged")

	out = captureLog(func() {
		l.(*GormLogger).Trace(ctx, time.Now(), fast, errors.New("relation does not exist"))
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "relation does not exist")
}

func TestNewGormLoggerDefaults(t *testing.T) {
	l, ok := NewGormLogger().(*GormLogger)
	assert.True(t, ok)
	assert.Equal(t, 200*time.Millisecond, l.SlowThreshold)
	assert.Equal(t, gormLogger.Info, l.LogLevel)
}
