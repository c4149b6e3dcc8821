package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDailyTime(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "Should parse regular time", value: "10:00", wantHour: 10},
		{name: "Should parse single digit hour", value: "9:05", wantHour: 9, wantMinute: 5},
		{name: "Should trim spaces", value: " 23:59 ", wantHour: 23, wantMinute: 59},
		{name: "Should parse midnight", value: "00:00"},
		{name: "Should reject hour out of range", value: "24:00", wantErr: true},
		{name: "Should reject minute out of range", value: "10:60", wantErr: true},
		{name: "Should reject negative hour", value: "-1:10", wantErr: true},
		{name: "Should reject non numeric value", value: "ten:zero", wantErr: true},
		{name: "Should reject missing separator", value: "1000", wantErr: true},
		{name: "Should reject empty value", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseDailyTime(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDailyTime))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestChatSchedule_Enabled(t *testing.T) {
	assert.True(t, ChatSchedule{ChatID: 1, DailyTime: "10:00"}.Enabled())
	assert.False(t, ChatSchedule{ChatID: 1}.Enabled())
	assert.False(t, ChatSchedule{ChatID: 1, DailyTime: "  "}.Enabled())
}

func TestJob_Name(t *testing.T) {
	assert.Equal(t, "prompt:-100", Job{Kind: JobPrompt, ChatID: -100, Hour: 10}.Name())
	assert.Equal(t, "followup:-100:2024-06-11", Job{Kind: JobFollowUp, ChatID: -100, ReportDate: "2024-06-11"}.Name())
	assert.Equal(t, "cleanup:-100:42", Job{Kind: JobCleanup, ChatID: -100, MessageID: 42}.Name())
}

func TestFollowUpJob_RoundTripsPendingCheck(t *testing.T) {
	check := PendingCheck{
		ChatID:          -100,
		ReportDate:      "2024-06-11",
		PromptMessageID: 7,
		RunAt:           time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC),
	}

	job := FollowUpJob(check)

	assert.Equal(t, JobFollowUp, job.Kind)
	assert.Equal(t, check, job.PendingCheck())
}
