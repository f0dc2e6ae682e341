package service

import (
	"context"
	"log"

	"eduforms/internal/cache"
	"eduforms/internal/model"
	"eduforms/internal/repository"
)

// NotificationService handles admin announcements and their targeting.
// Targeting is plain filtering over the audience fields; unread counts
// live in Redis.
type NotificationService struct {
	notificationRepo repository.NotificationRepo
	cache            cache.NotificationCache
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo repository.NotificationRepo, notificationCache cache.NotificationCache) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		cache:            notificationCache,
	}
}

// Create publishes a notification. For user-targeted audiences the
// unread counter of each recipient is bumped.
func (s *NotificationService) Create(ctx context.Context, n *model.Notification) (string, error) {
	id, err := s.notificationRepo.Create(ctx, n)
	if err != nil {
		return "", err
	}

	if s.cache != nil && n.Audience == model.AudienceUsers {
		for _, userID := range n.UserIDs {
			if err := s.cache.IncrUnread(ctx, userID); err != nil {
				log.Printf("unread counter bump failed for %s: %v", userID, err)
			}
		}
	}
	return id, nil
}

// List retrieves all notifications for the admin view
func (s *NotificationService) List(ctx context.Context) ([]*model.Notification, error) {
	return s.notificationRepo.List(ctx)
}

// ForRecipient filters notifications down to those targeting the given
// user and course context
func (s *NotificationService) ForRecipient(ctx context.Context, userID, courseID string) ([]*model.Notification, error) {
	all, err := s.notificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Notification, 0, len(all))
	for _, n := range all {
		if n.TargetsUser(userID, courseID) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Unread returns the unread counter for a user
func (s *NotificationService) Unread(ctx context.Context, userID string) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.Unread(ctx, userID)
}

// MarkRead clears the unread counter for a user
func (s *NotificationService) MarkRead(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.ClearUnread(ctx, userID)
}

// Delete removes a notification
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notificationRepo.Delete(ctx, id)
}
