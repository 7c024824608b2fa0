package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeNowUTC(t *testing.T) {
	now := TimeNowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestToPointer(t *testing.T) {
	v := 2.5
	p := ToPointer(v)
	*p = 3
	assert.Equal(t, 2.5, v)
}
