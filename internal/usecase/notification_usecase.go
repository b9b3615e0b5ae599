package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// 同じ暦日（閲覧者のローカル時刻）の通知のまとまり。
type NotificationGroup struct {
	Label string // 例: "Mon, 2 JAN 2006"
	Day   time.Time
	Items []model.Notification
}

type NotificationUsecase struct {
	notifRepo repo.NotificationRepository
	log       *logrus.Logger
}

// DI
func NewNotificationUsecase(notifRepo repo.NotificationRepository, log *logrus.Logger) *NotificationUsecase {
	return &NotificationUsecase{notifRepo: notifRepo, log: log}
}

func (u *NotificationUsecase) List(ctx context.Context, userID int64) ([]model.Notification, error) {
	ns, err := u.notifRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return ns, nil
}

func (u *NotificationUsecase) UnreadCount(ctx context.Context, userID int64) (int, error) {
	ns, err := u.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range ns {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (u *NotificationUsecase) MarkRead(ctx context.Context, notificationID int64) (model.Notification, error) {
	n, err := u.notifRepo.MarkRead(ctx, notificationID)
	if err != nil {
		return model.Notification{}, mapRepoError(err)
	}
	return n, nil
}

func (u *NotificationUsecase) MarkAllRead(ctx context.Context, userID int64) error {
	if err := u.notifRepo.MarkAllRead(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	return nil
}

// ListGrouped は通知を暦日でまとめて返す（新しい日が先頭）。
func (u *NotificationUsecase) ListGrouped(ctx context.Context, userID int64, loc *time.Location) ([]NotificationGroup, error) {
	ns, err := u.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupByDay(ns, loc), nil
}

// GroupByDay は通知をローカルタイムゾーンの暦日で束ねる純粋関数。
// 同じ日の通知は時刻に関係なく同じ束に入る。日は新しい順、
// 束の中も新しい順。
func GroupByDay(ns []model.Notification, loc *time.Location) []NotificationGroup {
	if loc == nil {
		loc = time.Local
	}

	byDay := make(map[time.Time][]model.Notification)
	for _, n := range ns {
		local := n.Timestamp.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		byDay[day] = append(byDay[day], n)
	}

	groups := make([]NotificationGroup, 0, len(byDay))
	for day, items := range byDay {
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Timestamp.After(items[j].Timestamp)
		})
		groups = append(groups, NotificationGroup{
			Label: DayLabel(day),
			Day:   day,
			Items: items,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})
	return groups
}

// DayLabel は "Mon, 2 JAN 2006" 形式（月だけ大文字）。
func DayLabel(day time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		day.Format("Mon"), day.Day(), strings.ToUpper(day.Format("Jan")), day.Year())
}
