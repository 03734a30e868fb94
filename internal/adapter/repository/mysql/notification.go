package mysql

import (
	"context"
	"errors"

	notifDomain "bookease-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByNotificationID(ctx context.Context, notificationID string) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	res := r.db.WithContext(ctx).Where("notification_id = ?", notificationID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, notifDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	res := r.db.WithContext(ctx).Model(&notifDomain.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByNotificationID(ctx, notificationID); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, notificationID string) error {
	res := r.db.WithContext(ctx).Where("notification_id = ?", notificationID).
		Delete(&notifDomain.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notifDomain.ErrNotFound
	}
	return nil
}
