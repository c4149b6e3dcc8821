package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2024-06-11 is a Tuesday.
var tuesdayTen = time.Date(2024, 6, 11, 10, 0, 0, 0, testLocation)

func refs(ids ...int64) []entity.ParticipantRef {
	out := make([]entity.ParticipantRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.ParticipantRef{UserID: id, DisplayName: fmt.Sprintf("user%d", id)})
	}
	return out
}

func Test_Dispatcher_firePrompt(t *testing.T) {
	const chatID = int64(-100)

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
	}{
		{
			name: "Should do nothing on a non-workday",
			buildMock: func(mocks allMocks) {
				mocks.mockCalendar.EXPECT().IsWorkday(gomock.Any()).Return(false).Times(1)
			},
		},
		{
			name: "Should alert and not schedule follow-up when send fails",
			buildMock: func(mocks allMocks) {
				gomock.InOrder(
					mocks.mockCalendar.EXPECT().IsWorkday(gomock.Any()).Return(true).Times(1),
					mocks.mockMessenger.EXPECT().
						Send(gomock.Any(), chatID, domain.DailyText, entity.FormatPlain).
						Return(0, assert.AnError).Times(1),
					mocks.mockAlerter.EXPECT().Alert(gomock.Any(), gomock.Any()).Times(1),
				)
			},
		},
		{
			name: "Should send prompt and schedule follow-up two hours later",
			buildMock: func(mocks allMocks) {
				want := entity.PendingCheck{
					ChatID:          chatID,
					ReportDate:      "2024-06-11",
					PromptMessageID: 42,
					RunAt:           tuesdayTen.Add(2 * time.Hour),
				}

				gomock.InOrder(
					mocks.mockCalendar.EXPECT().IsWorkday(gomock.Any()).Return(true).Times(1),
					mocks.mockMessenger.EXPECT().
						Send(gomock.Any(), chatID, domain.DailyText, entity.FormatPlain).
						Return(42, nil).Times(1),
					mocks.mockPendingCheckRepo.EXPECT().
						Save(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, check *entity.PendingCheck) error {
							require.Equal(t, want.ChatID, check.ChatID)
							require.Equal(t, want.ReportDate, check.ReportDate)
							require.Equal(t, want.PromptMessageID, check.PromptMessageID)
							require.True(t, want.RunAt.Equal(check.RunAt))
							return nil
						}).Times(1),
					mocks.mockJobs.EXPECT().
						ScheduleOnce(gomock.Any(), gomock.Any()).
						DoAndReturn(func(job entity.Job, _ contract.JobHandler) (uuid.UUID, error) {
							require.Equal(t, entity.JobFollowUp, job.Kind)
							require.Equal(t, chatID, job.ChatID)
							require.Equal(t, "2024-06-11", job.ReportDate)
							require.Equal(t, 42, job.MessageID)
							require.True(t, want.RunAt.Equal(job.RunAt))
							return uuid.New(), nil
						}).Times(1),
				)
			},
		},
		{
			name: "Should still schedule follow-up when persisting fails",
			buildMock: func(mocks allMocks) {
				gomock.InOrder(
					mocks.mockCalendar.EXPECT().IsWorkday(gomock.Any()).Return(true).Times(1),
					mocks.mockMessenger.EXPECT().Send(gomock.Any(), chatID, gomock.Any(), gomock.Any()).Return(7, nil).Times(1),
					mocks.mockPendingCheckRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(1),
					mocks.mockJobs.EXPECT().ScheduleOnce(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1),
				)
			},
		},
		{
			name: "Should alert when follow-up cannot be scheduled",
			buildMock: func(mocks allMocks) {
				gomock.InOrder(
					mocks.mockCalendar.EXPECT().IsWorkday(gomock.Any()).Return(true).Times(1),
					mocks.mockMessenger.EXPECT().Send(gomock.Any(), chatID, gomock.Any(), gomock.Any()).Return(7, nil).Times(1),
					mocks.mockPendingCheckRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1),
					mocks.mockJobs.EXPECT().ScheduleOnce(gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError).Times(1),
					mocks.mockAlerter.EXPECT().Alert(gomock.Any(), gomock.Any()).Times(1),
					mocks.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), chatID, "2024-06-11").Return(nil).Times(1),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			d := newTestDispatcher(t, m, tuesdayTen, testConfig())

			d.HandleJob(context.Background(), entity.Job{Kind: entity.JobPrompt, ChatID: chatID, Hour: 10})
		})
	}
}

func Test_Dispatcher_fireFollowUp(t *testing.T) {
	const chatID = int64(-100)
	check := entity.PendingCheck{ChatID: chatID, ReportDate: "2024-06-11", PromptMessageID: 42, RunAt: tuesdayTen.Add(2 * time.Hour)}

	tests := []struct {
		name        string
		maxMentions int
		buildMock   func(mocks allMocks, sent *[]string)
		wantBatches []int
	}{
		{
			name:        "Should remind only non-reporters",
			maxMentions: 50,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(1, 2, 3), nil).Times(1)
				mocks.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").
					Return(map[int64]struct{}{1: {}}, nil).Times(1)
				recordSends(mocks, chatID, sent, nil)
			},
			wantBatches: []int{2},
		},
		{
			name:        "Should split five non-reporters into batches of two",
			maxMentions: 2,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(5, 4, 3, 2, 1), nil).Times(1)
				mocks.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").
					Return(map[int64]struct{}{}, nil).Times(1)
				recordSends(mocks, chatID, sent, nil)
			},
			wantBatches: []int{2, 2, 1},
		},
		{
			name:        "Should keep going when one batch fails",
			maxMentions: 2,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(1, 2, 3, 4, 5), nil).Times(1)
				mocks.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").
					Return(map[int64]struct{}{}, nil).Times(1)
				recordSends(mocks, chatID, sent, map[int]error{1: assert.AnError})
				mocks.mockAlerter.EXPECT().Alert(gomock.Any(), gomock.Any()).Times(1)
			},
			wantBatches: []int{2, 2, 1},
		},
		{
			name:        "Should send nothing when everyone reported",
			maxMentions: 50,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(1, 2), nil).Times(1)
				mocks.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").
					Return(map[int64]struct{}{1: {}, 2: {}}, nil).Times(1)
			},
		},
		{
			name:        "Should send nothing when there are no active participants",
			maxMentions: 50,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(nil, nil).Times(1)
				mocks.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").Return(nil, nil).Times(1)
			},
		},
		{
			name:        "Should alert when store fails",
			maxMentions: 50,
			buildMock: func(mocks allMocks, sent *[]string) {
				mocks.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(nil, assert.AnError).Times(1)
				mocks.mockAlerter.EXPECT().Alert(gomock.Any(), gomock.Any()).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			var sent []string
			tt.buildMock(m, &sent)
			m.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), chatID, "2024-06-11").Return(nil).Times(1)

			cfg := testConfig()
			cfg.MaxMentions = tt.maxMentions
			d := newTestDispatcher(t, m, check.RunAt, cfg)

			d.HandleJob(context.Background(), entity.FollowUpJob(check))

			got := make([]int, 0, len(sent))
			for _, text := range sent {
				got = append(got, strings.Count(text, "tg://user?id="))
				assert.True(t, strings.HasSuffix(text, domain.ReminderNag))
			}
			if len(tt.wantBatches) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantBatches, got)
		})
	}
}

func Test_Dispatcher_fireFollowUpSortsByUserID(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	const chatID = int64(1)
	var sent []string

	m.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(9, 3, 6), nil).Times(1)
	m.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").Return(map[int64]struct{}{6: {}}, nil).Times(1)
	m.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), chatID, "2024-06-11").Return(nil).Times(1)
	recordSends(m, chatID, &sent, nil)

	d := newTestDispatcher(t, m, tuesdayTen, testConfig())
	d.HandleJob(context.Background(), entity.Job{Kind: entity.JobFollowUp, ChatID: chatID, ReportDate: "2024-06-11"})

	require.Len(t, sent, 1)
	assert.Less(t, strings.Index(sent[0], "id=3"), strings.Index(sent[0], "id=9"))
	assert.NotContains(t, sent[0], "id=6\"")
}

func Test_Dispatcher_pauseStopsOnCancel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	const chatID = int64(1)
	var sent []string

	ctx, cancel := context.WithCancel(context.Background())

	m.mockStore.EXPECT().ActiveParticipants(gomock.Any(), chatID).Return(refs(1, 2, 3), nil).Times(1)
	m.mockStore.EXPECT().ReportersOn(gomock.Any(), chatID, "2024-06-11").Return(nil, nil).Times(1)
	m.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), chatID, "2024-06-11").Return(nil).Times(1)
	m.mockMessenger.EXPECT().
		Send(gomock.Any(), chatID, gomock.Any(), entity.FormatHTML).
		DoAndReturn(func(_ context.Context, _ int64, text string, _ entity.TextFormat) (int, error) {
			sent = append(sent, text)
			cancel()
			return len(sent), nil
		}).Times(1)

	cfg := testConfig()
	cfg.MaxMentions = 1
	cfg.BatchPause = time.Hour
	d := newTestDispatcher(t, m, tuesdayTen, cfg)

	d.HandleJob(ctx, entity.Job{Kind: entity.JobFollowUp, ChatID: chatID, ReportDate: "2024-06-11"})

	assert.Len(t, sent, 1)
}

func recordSends(mocks allMocks, chatID int64, sent *[]string, failAt map[int]error) {
	mocks.mockMessenger.EXPECT().
		Send(gomock.Any(), chatID, gomock.Any(), entity.FormatHTML).
		DoAndReturn(func(_ context.Context, _ int64, text string, _ entity.TextFormat) (int, error) {
			idx := len(*sent)
			*sent = append(*sent, text)
			if err := failAt[idx]; err != nil {
				return 0, err
			}
			return 100 + idx, nil
		}).AnyTimes()
}

func Test_Dispatcher_Cleanup(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	d := newTestDispatcher(t, m, tuesdayTen, testConfig())

	m.mockJobs.EXPECT().
		ScheduleOnce(gomock.Any(), d).
		DoAndReturn(func(job entity.Job, _ contract.JobHandler) (uuid.UUID, error) {
			require.Equal(t, entity.JobCleanup, job.Kind)
			require.Equal(t, 77, job.MessageID)
			require.True(t, tuesdayTen.Add(30*time.Minute).Equal(job.RunAt))
			return uuid.New(), nil
		}).Times(1)

	require.NoError(t, d.ScheduleCleanup(context.Background(), -100, 77))

	m.mockMessenger.EXPECT().Delete(gomock.Any(), int64(-100), 77).Return(assert.AnError).Times(1)
	d.HandleJob(context.Background(), entity.Job{Kind: entity.JobCleanup, ChatID: -100, MessageID: 77})
}

func Test_Dispatcher_ScheduleCleanupError(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	d := newTestDispatcher(t, m, tuesdayTen, testConfig())
	m.mockJobs.EXPECT().ScheduleOnce(gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError).Times(1)

	require.Error(t, d.ScheduleCleanup(context.Background(), -100, 77))
}

func Test_Dispatcher_RestorePending(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		want      int
		wantErr   bool
	}{
		{
			name: "Should requeue today's checks including past-due ones",
			buildMock: func(mocks allMocks) {
				mocks.mockPendingCheckRepo.EXPECT().List(gomock.Any()).Return([]*entity.PendingCheck{
					{ChatID: 1, ReportDate: "2024-06-11", RunAt: tuesdayTen.Add(-time.Hour)},
					{ChatID: 2, ReportDate: "2024-06-11", RunAt: tuesdayTen.Add(time.Hour)},
				}, nil).Times(1)
				gomock.InOrder(
					mocks.mockJobs.EXPECT().ScheduleOnce(entity.Job{
						Kind: entity.JobFollowUp, ChatID: 1, ReportDate: "2024-06-11", RunAt: tuesdayTen.Add(-time.Hour),
					}, gomock.Any()).Return(uuid.New(), nil).Times(1),
					mocks.mockJobs.EXPECT().ScheduleOnce(gomock.Any(), gomock.Any()).Return(uuid.Nil, assert.AnError).Times(1),
				)
			},
			want: 1,
		},
		{
			name: "Should drop checks from earlier days without scheduling",
			buildMock: func(mocks allMocks) {
				mocks.mockPendingCheckRepo.EXPECT().List(gomock.Any()).Return([]*entity.PendingCheck{
					{ChatID: 1, ReportDate: "2024-06-07", RunAt: tuesdayTen.Add(-4 * 24 * time.Hour)},
					{ChatID: 2, ReportDate: "2024-06-10", RunAt: tuesdayTen.Add(-22 * time.Hour)},
					{ChatID: 3, ReportDate: "2024-06-11", RunAt: tuesdayTen.Add(2 * time.Hour)},
				}, nil).Times(1)
				gomock.InOrder(
					mocks.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), int64(1), "2024-06-07").Return(nil).Times(1),
					mocks.mockPendingCheckRepo.EXPECT().Delete(gomock.Any(), int64(2), "2024-06-10").Return(assert.AnError).Times(1),
					mocks.mockJobs.EXPECT().ScheduleOnce(entity.Job{
						Kind: entity.JobFollowUp, ChatID: 3, ReportDate: "2024-06-11", RunAt: tuesdayTen.Add(2 * time.Hour),
					}, gomock.Any()).Return(uuid.New(), nil).Times(1),
				)
			},
			want: 1,
		},
		{
			name: "Should return error when listing fails",
			buildMock: func(mocks allMocks) {
				mocks.mockPendingCheckRepo.EXPECT().List(gomock.Any()).Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)
			d := newTestDispatcher(t, m, tuesdayTen, testConfig())

			got, err := d.RestorePending(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_splitBatches(t *testing.T) {
	assert.Empty(t, splitBatches(nil, 2))

	batches := splitBatches(refs(1, 2, 3, 4, 5), 2)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[1], 2)
	assert.Len(t, batches[2], 1)

	assert.Len(t, splitBatches(refs(1, 2, 3), 0), 1, "zero size falls back to the default cap")
}
