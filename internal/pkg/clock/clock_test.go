package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed_TodayAndTimeOfDay(t *testing.T) {
	c := At("2024-01-01", "09:15:30")

	assert.Equal(t, "2024-01-01", Today(c))
	assert.Equal(t, "09:15:30", TimeOfDay(c))
}

func TestFixed_Set(t *testing.T) {
	c := At("2024-01-01", "23:59:59")
	c.Set(c.Now().Add(time.Second))

	assert.Equal(t, "2024-01-02", Today(c))
	assert.Equal(t, "00:00:00", TimeOfDay(c))
}

func TestSystem_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	c := NewSystem(loc)

	assert.Equal(t, loc, c.Now().Location())
}

func TestNewSystem_NilLocationFallsBackToLocal(t *testing.T) {
	c := NewSystem(nil)

	assert.Equal(t, time.Local, c.Location)
}
