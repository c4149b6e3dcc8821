package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdays(t *testing.T) {
	days, err := ParseWeekdays([]string{"Saturday", " 7 ", ""})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, days)

	_, err = ParseWeekdays([]string{"funday"})
	assert.Error(t, err)
}
