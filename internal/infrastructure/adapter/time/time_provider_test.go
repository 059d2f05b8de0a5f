package time

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/library-lending/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestFixedTimeProvider(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	clock := NewFixedTimeProvider(start)

	assert.Equal(t, start, clock.Now())

	clock.Sleep(core.Minute)
	assert.Equal(t, start.Add(time.Minute), clock.Now())
	assert.Equal(t, core.Minute, clock.Since(start))

	clock.Set(start)
	assert.Equal(t, core.Hour, clock.Until(start.Add(time.Hour)))
}

func TestRealTimeProviderParseDuration(t *testing.T) {
	p := NewRealTimeProvider()

	d, err := p.ParseDuration("150ms")
	assert.NoError(t, err)
	assert.Equal(t, 150*core.Millisecond, d)

	_, err = p.ParseDuration("soon")
	assert.Error(t, err)
}
