package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cryptowise/internal/domain"
	"cryptowise/internal/utils"
)

// ReminderService stores user reminders. Reminders are listed, never fired.
type ReminderService struct {
	reminderRepo domain.ReminderRepository
	now          utils.Clock
	log          logrus.FieldLogger
}

// NewReminderService creates a new ReminderService
func NewReminderService(reminderRepo domain.ReminderRepository, now utils.Clock, log logrus.FieldLogger) *ReminderService {
	return &ReminderService{reminderRepo: reminderRepo, now: now, log: log}
}

// SetReminder stores a reminder for user at a future time
func (s *ReminderService) SetReminder(ctx context.Context, user *domain.User, message string, at time.Time) (*domain.Reminder, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.MissingField("message")
	}

	now := s.now()
	if !at.After(now) {
		return nil, domain.ErrReminderInPast
	}

	reminder := &domain.Reminder{
		ID:        uuid.New(),
		Username:  user.Username,
		Message:   message,
		RemindAt:  at,
		CreatedAt: now,
	}
	if err := s.reminderRepo.Save(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to save reminder: %w", err)
	}

	s.log.WithFields(logrus.Fields{"username": user.Username, "remind_at": at}).Info("reminder set")
	return reminder, nil
}

// ListReminders returns the reminders of user in the order they were set.
// Anonymous callers get an empty list.
func (s *ReminderService) ListReminders(ctx context.Context, user *domain.User) ([]domain.Reminder, error) {
	if user == nil {
		return []domain.Reminder{}, nil
	}
	return s.reminderRepo.GetByUsername(ctx, user.Username)
}

// ParseTime reads a reminder time relative to the service clock
func (s *ReminderService) ParseTime(value string) (time.Time, error) {
	return utils.ParseReminderTime(value, s.now())
}
