package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen/internal/domain/model"
	"canteen/internal/usecase"
)

func TestGroupByDay(t *testing.T) {
	loc := time.UTC
	day1 := time.Date(2025, time.January, 2, 0, 0, 0, 0, loc)
	day2 := time.Date(2025, time.January, 5, 0, 0, 0, 0, loc)

	ns := []model.Notification{
		{NotificationID: 1, Message: "a", Timestamp: day1.Add(9 * time.Hour)},
		{NotificationID: 2, Message: "b", Timestamp: day2.Add(12 * time.Hour)},
		{NotificationID: 3, Message: "c", Timestamp: day1.Add(18 * time.Hour)},
	}

	groups := usecase.GroupByDay(ns, loc)
	require.Len(t, groups, 2)

	// 新しい日が先頭
	assert.Equal(t, day2, groups[0].Day)
	assert.Equal(t, day1, groups[1].Day)

	// 同じ日は時刻に関係なく同じ束、束の中は新しい順
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, int64(3), groups[1].Items[0].NotificationID)
	assert.Equal(t, int64(1), groups[1].Items[1].NotificationID)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, usecase.GroupByDay(nil, time.UTC))
}

func TestDayLabel(t *testing.T) {
	day := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mon, 2 JAN 2006", usecase.DayLabel(day))

	day = time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Thu, 25 DEC 2025", usecase.DayLabel(day))
}

func TestUnreadCount(t *testing.T) {
	notifRepo := &NotificationRepoMock{}
	u := usecase.NewNotificationUsecase(notifRepo, testLogger())

	notifRepo.On("ListByUserID", mock.Anything, int64(3)).Return([]model.Notification{
		{NotificationID: 1, IsRead: true},
		{NotificationID: 2},
		{NotificationID: 3},
	}, nil)

	count, err := u.UnreadCount(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
