package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/scheduler/schedulertest"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type nopHandler struct{}

func (nopHandler) HandleJob(context.Context, entity.Job) {}

func newTestRegistry(t *testing.T, m allMocks) (*Registry, *schedulertest.Fake) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 11, 8, 0, 0, 0, testLocation))
	fake := schedulertest.New(clock, testLocation)
	return NewRegistry(fake, m.mockChatRepo, nopHandler{}, zap.NewNop().Sugar()), fake
}

func triggerTimes(triggers []entity.Trigger) map[int64][2]int {
	out := make(map[int64][2]int, len(triggers))
	for _, tr := range triggers {
		out[tr.ChatID] = [2]int{tr.Hour, tr.Minute}
	}
	return out
}

func Test_Registry_Resync(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r, fake := newTestRegistry(t, m)
	ctx := context.Background()

	schedules := []entity.ChatSchedule{
		{ChatID: 3, DailyTime: "11:30"},
		{ChatID: 1, DailyTime: "10:00"},
		{ChatID: 2, DailyTime: ""},
		{ChatID: 4, DailyTime: "25:00"},
		{ChatID: 5, DailyTime: "junk"},
	}

	require.NoError(t, r.Resync(ctx, schedules))

	triggers := r.Triggers()
	require.Len(t, triggers, 2)
	assert.Equal(t, int64(1), triggers[0].ChatID)
	assert.Equal(t, int64(3), triggers[1].ChatID)
	assert.Equal(t, map[int64][2]int{1: {10, 0}, 3: {11, 30}}, triggerTimes(triggers))
	assert.Len(t, fake.Entries(), 2)

	for _, e := range fake.Entries() {
		assert.True(t, e.Recurring)
		assert.Equal(t, entity.JobPrompt, e.Job.Kind)
	}
}

func Test_Registry_ResyncIsIdempotent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r, fake := newTestRegistry(t, m)
	ctx := context.Background()

	schedules := []entity.ChatSchedule{
		{ChatID: 1, DailyTime: "10:00"},
		{ChatID: 2, DailyTime: "09:15"},
	}

	require.NoError(t, r.Resync(ctx, schedules))
	first := triggerTimes(r.Triggers())

	require.NoError(t, r.Resync(ctx, schedules))
	second := triggerTimes(r.Triggers())

	assert.Equal(t, first, second)
	assert.Len(t, fake.Entries(), 2, "a second resync must not add triggers")
}

func Test_Registry_ResyncReplacesWholeSet(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	r, fake := newTestRegistry(t, m)
	ctx := context.Background()

	require.NoError(t, r.Resync(ctx, []entity.ChatSchedule{
		{ChatID: 1, DailyTime: "10:00"},
		{ChatID: 2, DailyTime: "09:15"},
	}))

	// a pending follow-up must survive resync
	_, err := fake.ScheduleOnce(entity.Job{Kind: entity.JobFollowUp, ChatID: 1, ReportDate: "2024-06-11", RunAt: time.Date(2024, 6, 11, 12, 0, 0, 0, testLocation)}, nopHandler{})
	require.NoError(t, err)

	require.NoError(t, r.Resync(ctx, []entity.ChatSchedule{
		{ChatID: 2, DailyTime: "09:45"},
	}))

	assert.Equal(t, map[int64][2]int{2: {9, 45}}, triggerTimes(r.Triggers()))
	assert.Len(t, fake.Entries(), 2)
	assert.Len(t, fake.Once(), 1)
}

func Test_Registry_Reload(t *testing.T) {
	tests := []struct {
		name         string
		buildMock    func(mocks allMocks)
		wantErr      bool
		wantTriggers int
	}{
		{
			name: "Should resync with the source schedules",
			buildMock: func(mocks allMocks) {
				mocks.mockChatRepo.EXPECT().
					ListSchedules(gomock.Any()).
					Return([]entity.ChatSchedule{{ChatID: 1, DailyTime: "10:00"}}, nil).Times(1)
			},
			wantTriggers: 1,
		},
		{
			name: "Should return error when source fails",
			buildMock: func(mocks allMocks) {
				mocks.mockChatRepo.EXPECT().
					ListSchedules(gomock.Any()).
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			r, _ := newTestRegistry(t, m)

			err := r.Reload(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, r.Triggers(), tt.wantTriggers)
		})
	}
}
