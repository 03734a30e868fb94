package mysql

import (
	"context"
	"errors"
	"testing"

	notifDomain "bookease-backend/internal/domain/notification"

	"github.com/google/uuid"
)

func TestNotificationLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := &notifDomain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         uID,
		Title:          "Due soon",
		Message:        "Dune is due in 2 days",
		Type:           notifDomain.TypeDueSoon,
	}
	if err := repo.Create(ctx, n); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByNotificationID(ctx, n.NotificationID)
	if err != nil || got.Read {
		t.Fatalf("got %+v, %v", got, err)
	}

	if err := repo.MarkRead(ctx, n.NotificationID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Marking again is a no-op, not an error.
	if err := repo.MarkRead(ctx, n.NotificationID); err != nil {
		t.Fatalf("repeat mark read: %v", err)
	}
	got, err = repo.GetByNotificationID(ctx, n.NotificationID)
	if err != nil || !got.Read {
		t.Fatalf("got %+v, %v", got, err)
	}

	if err := repo.MarkRead(ctx, "missing"); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("missing mark read err = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, n.NotificationID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, n.NotificationID); !errors.Is(err, notifDomain.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestNotificationListByUser_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		n := &notifDomain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         uID,
			Title:          title,
			Type:           notifDomain.TypeOverdue,
		}
		if err := repo.Create(ctx, n); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	other := &notifDomain.Notification{NotificationID: uuid.NewString(), UserID: uID2, Title: "theirs"}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create theirs: %v", err)
	}

	got, err := repo.ListByUser(ctx, uID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Title != "second" || got[1].Title != "first" {
		t.Fatalf("got %+v", got)
	}
}
