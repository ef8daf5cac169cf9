// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pydt-client/internal/logger"
	"github.com/MKhiriev/go-pydt-client/models"
)

// DefaultNotificationLimit is the number of notifications kept by a
// [NotificationCenter] created with a non-positive limit.
const DefaultNotificationLimit = 20

// NotificationCenter records user-facing notifications of the transfer path.
// It implements service.Notifier and keeps the most recent entries only.
type NotificationCenter struct {
	logger *logger.Logger
	limit  int
	now    func() time.Time

	mu           sync.Mutex
	items        []models.Notification
	listeners    map[int]func(models.Notification)
	nextListener int
}

// NewNotificationCenter creates a center keeping up to limit notifications.
func NewNotificationCenter(limit int, log *logger.Logger) *NotificationCenter {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if log == nil {
		log = logger.Nop()
	}
	return &NotificationCenter{
		logger:    log,
		limit:     limit,
		now:       time.Now,
		listeners: make(map[int]func(models.Notification)),
	}
}

// OnNotify registers fn to be called for every new notification. fn runs on
// the goroutine that raised the notification. The returned func removes it.
func (c *NotificationCenter) OnNotify(fn func(models.Notification)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Recent returns the kept notifications, newest last.
func (c *NotificationCenter) Recent() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// NotifyTurnSubmitted implements service.Notifier.
func (c *NotificationCenter) NotifyTurnSubmitted(gameID, gameName string) {
	c.push(models.Notification{
		Kind:    models.NotificationInfo,
		GameID:  gameID,
		Title:   "Turn submitted",
		Message: fmt.Sprintf("Your turn in %s was uploaded.", gameName),
	}, nil)
}

// NotifyUploadFailed implements service.Notifier.
func (c *NotificationCenter) NotifyUploadFailed(gameID, gameName string, err error) {
	c.push(models.Notification{
		Kind:    models.NotificationUploadFailed,
		GameID:  gameID,
		Title:   "Upload failed",
		Message: fmt.Sprintf("Could not upload the save of %s. Save the game again to retry.", gameName),
	}, err)
}

// NotifyConfirmFailed implements service.Notifier.
func (c *NotificationCenter) NotifyConfirmFailed(gameID, gameName string, err error) {
	c.push(models.Notification{
		Kind:   models.NotificationConfirmFailed,
		GameID: gameID,
		Title:  "Confirmation failed",
		Message: fmt.Sprintf("The save of %s was uploaded but the turn was not confirmed. "+
			"Check the game on the website before submitting again.", gameName),
	}, err)
}

// NotifyTransferFailed implements service.Notifier.
func (c *NotificationCenter) NotifyTransferFailed(gameID, gameName string, err error) {
	c.push(models.Notification{
		Kind:    models.NotificationTransferFailed,
		GameID:  gameID,
		Title:   "Download failed",
		Message: fmt.Sprintf("Could not prepare the save of %s.", gameName),
	}, err)
}

func (c *NotificationCenter) push(n models.Notification, err error) {
	n.At = c.now()
	if err != nil {
		n.Message += " (" + err.Error() + ")"
	}

	ev := c.logger.Info()
	if n.Kind != models.NotificationInfo {
		ev = c.logger.Warn().Err(err)
	}
	ev.Str("kind", n.Kind.String()).Str("game_id", n.GameID).Msg(n.Title)

	c.mu.Lock()
	c.items = append(c.items, n)
	if len(c.items) > c.limit {
		c.items = c.items[len(c.items)-c.limit:]
	}
	listeners := make([]func(models.Notification), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(n)
	}
}
