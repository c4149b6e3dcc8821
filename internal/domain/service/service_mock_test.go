package service

import (
	"testing"
	"time"

	"github.com/diegoclair/standup-bot/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockChatRepo         *mocks.MockChatRepo
	mockParticipantRepo  *mocks.MockParticipantRepo
	mockReportRepo       *mocks.MockReportRepo
	mockPendingCheckRepo *mocks.MockPendingCheckRepo
	mockStore            *mocks.MockParticipantStore
	mockMessenger        *mocks.MockMessenger
	mockCalendar         *mocks.MockCalendar
	mockJobs             *mocks.MockJobScheduler
	mockAlerter          *mocks.MockAlerter
	mockReloader         *mocks.MockScheduleReloader
}

var testLocation = time.FixedZone("MSK", 3*60*60)

func testConfig() Config {
	return Config{
		Location:      testLocation,
		FollowUpDelay: 2 * time.Hour,
		CleanupDelay:  30 * time.Minute,
		MaxMentions:   50,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	chatRepo := mocks.NewMockChatRepo(ctrl)
	dm.EXPECT().Chat().Return(chatRepo).AnyTimes()

	participantRepo := mocks.NewMockParticipantRepo(ctrl)
	dm.EXPECT().Participant().Return(participantRepo).AnyTimes()

	reportRepo := mocks.NewMockReportRepo(ctrl)
	dm.EXPECT().Report().Return(reportRepo).AnyTimes()

	pendingCheckRepo := mocks.NewMockPendingCheckRepo(ctrl)
	dm.EXPECT().PendingCheck().Return(pendingCheckRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockChatRepo:         chatRepo,
		mockParticipantRepo:  participantRepo,
		mockReportRepo:       reportRepo,
		mockPendingCheckRepo: pendingCheckRepo,
		mockStore:            mocks.NewMockParticipantStore(ctrl),
		mockMessenger:        mocks.NewMockMessenger(ctrl),
		mockCalendar:         mocks.NewMockCalendar(ctrl),
		mockJobs:             mocks.NewMockJobScheduler(ctrl),
		mockAlerter:          mocks.NewMockAlerter(ctrl),
		mockReloader:         mocks.NewMockScheduleReloader(ctrl),
	}

	return
}

// newTestDispatcher wires a dispatcher on mocks with a fake clock at now.
func newTestDispatcher(t *testing.T, m allMocks, now time.Time, cfg Config) *Dispatcher {
	t.Helper()

	d := newDispatcher(Dependencies{
		DataManager: m.mockDataManager,
		Store:       m.mockStore,
		Messenger:   m.mockMessenger,
		Calendar:    m.mockCalendar,
		Jobs:        m.mockJobs,
		Alerter:     m.mockAlerter,
		Clock:       clockwork.NewFakeClockAt(now),
		Log:         zap.NewNop().Sugar(),
	}, cfg)
	require.NotNil(t, d)
	return d
}

func newTestStandup(t *testing.T, m allMocks, now time.Time) *standupService {
	t.Helper()

	s := newStandup(m.mockDataManager, m.mockReloader, clockwork.NewFakeClockAt(now), testConfig(), zap.NewNop().Sugar())
	require.NotNil(t, s)
	return s
}
