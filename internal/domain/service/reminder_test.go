package service

import (
	"context"
	"testing"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func Test_Composer_Compose(t *testing.T) {
	const chatID = int64(-100)

	tests := []struct {
		name      string
		batch     []entity.ParticipantRef
		buildMock func(mocks allMocks)
		want      string
	}{
		{
			name: "Should mention known names and escape them",
			batch: []entity.ParticipantRef{
				{UserID: 1, DisplayName: "alice"},
				{UserID: 2, DisplayName: "<b>&co"},
			},
			want: `<a href="tg://user?id=1">alice</a> <a href="tg://user?id=2">&lt;b&gt;&amp;co</a>` + "\nЖду Текстовый Дейлик!",
		},
		{
			name:  "Should look up a missing display name",
			batch: []entity.ParticipantRef{{UserID: 3}},
			buildMock: func(mocks allMocks) {
				mocks.mockMessenger.EXPECT().
					LookupDisplayName(gomock.Any(), chatID, int64(3)).
					Return("Bob", nil).Times(1)
			},
			want: `<a href="tg://user?id=3">Bob</a>` + "\nЖду Текстовый Дейлик!",
		},
		{
			name:  "Should fall back to user id when lookup fails",
			batch: []entity.ParticipantRef{{UserID: 3}},
			buildMock: func(mocks allMocks) {
				mocks.mockMessenger.EXPECT().
					LookupDisplayName(gomock.Any(), chatID, int64(3)).
					Return("", entity.ErrNotFound).Times(1)
			},
			want: `<a href="tg://user?id=3">User 3</a>` + "\nЖду Текстовый Дейлик!",
		},
		{
			name:  "Should fall back to user id when lookup returns empty name",
			batch: []entity.ParticipantRef{{UserID: 4}},
			buildMock: func(mocks allMocks) {
				mocks.mockMessenger.EXPECT().
					LookupDisplayName(gomock.Any(), chatID, int64(4)).
					Return("", nil).Times(1)
			},
			want: `<a href="tg://user?id=4">User 4</a>` + "\nЖду Текстовый Дейлик!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			c := NewComposer(m.mockMessenger, zap.NewNop().Sugar())
			got := c.Compose(context.Background(), chatID, tt.batch)
			assert.Equal(t, tt.want, got)
		})
	}
}
