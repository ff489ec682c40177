// Package firestore implements the persistence layer on Cloud Firestore,
// mirroring the document layout the mobile app reads and writes.
package firestore

import (
	"context"
	"fmt"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"

	cf "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection     = "users"
	remindersCollection = "reminders"
)

type reminderRepository struct {
	client *cf.Client
}

// NewReminderRepository creates the Firestore-backed reminder store.
func NewReminderRepository(ctx context.Context, app *firebase.App) (repository.ReminderRepository, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &reminderRepository{client: client}, nil
}

func (r *reminderRepository) userReminders(userID string) *cf.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(remindersCollection)
}

// List retrieves all reminders for a user.
func (r *reminderRepository) List(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	docs := r.userReminders(userID).Documents(ctx)
	defer docs.Stop()

	return collect(docs)
}

// ListAllEnabled retrieves every enabled reminder across all users via a
// collection-group query.
func (r *reminderRepository) ListAllEnabled(ctx context.Context) ([]*entity.Reminder, error) {
	docs := r.client.CollectionGroup(remindersCollection).
		Where("enabled", "==", true).
		Documents(ctx)
	defer docs.Stop()

	return collect(docs)
}

// Save persists a reminder, assigning a document id when absent. The
// assigned id is echoed back on the returned copy.
func (r *reminderRepository) Save(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error) {
	saved := *reminder
	if saved.UpdatedAt.IsZero() {
		saved.UpdatedAt = time.Now()
	}

	var ref *cf.DocumentRef
	if saved.ID == "" {
		ref = r.userReminders(saved.UserID).NewDoc()
		saved.ID = ref.ID
		if saved.CreatedAt.IsZero() {
			saved.CreatedAt = saved.UpdatedAt
		}
	} else {
		ref = r.userReminders(saved.UserID).Doc(saved.ID)
	}

	if _, err := ref.Set(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to write reminder document: %w", err)
	}

	return &saved, nil
}

// Delete removes a reminder.
func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	ref := r.userReminders(userID).Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrReminderNotFound
		}

		return fmt.Errorf("failed to read reminder document: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete reminder document: %w", err)
	}

	return nil
}

// SetEnabled flips the enabled flag of a stored reminder.
func (r *reminderRepository) SetEnabled(ctx context.Context, userID, id string, enabled bool) error {
	_, err := r.userReminders(userID).Doc(id).Update(ctx, []cf.Update{
		{Path: "enabled", Value: enabled},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrReminderNotFound
		}

		return fmt.Errorf("failed to update reminder document: %w", err)
	}

	return nil
}

// Observe streams snapshots of a user's reminders until the stop function
// is called or the context ends.
func (r *reminderRepository) Observe(ctx context.Context, userID string) (<-chan []*entity.Reminder, func(), error) {
	obsCtx, cancel := context.WithCancel(ctx)
	snapshots := r.userReminders(userID).Snapshots(obsCtx)

	out := make(chan []*entity.Reminder, 1)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				// Cancelled or broken stream; the consumer re-observes if it
				// still cares.
				return
			}

			reminders, err := collect(snap.Documents)
			if err != nil {
				continue
			}

			select {
			case out <- reminders:
			case <-obsCtx.Done():
				return
			}
		}
	}()

	return out, cancel, nil
}

func collect(docs *cf.DocumentIterator) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reminder documents: %w", err)
		}

		var reminder entity.Reminder
		if err := doc.DataTo(&reminder); err != nil {
			return nil, fmt.Errorf("failed to decode reminder document: %w", err)
		}
		reminder.ID = doc.Ref.ID

		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}
