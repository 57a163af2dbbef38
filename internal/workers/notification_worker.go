package workers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"

	"gorm.io/datatypes"
)

// Event is a lifecycle side effect queued after a mutation commits. The
// dispatcher persists a notification record and sends the email; neither
// outcome feeds back into the originating request.
type Event struct {
	Type     string // "application_submitted", "new_applicant", "application_status"
	UserID   string // recipient identity
	Email    string // recipient address; empty skips the mail
	Subject  string
	Message  string
	Template string
	Data     email.TemplateData
	Meta     map[string]interface{} // persisted alongside the notification
}

// NotificationDispatcher consumes lifecycle events asynchronously so mail
// provider latency never holds up request handling.
type NotificationDispatcher struct {
	events           chan Event
	provider         email.Provider
	renderer         email.TemplateRenderer
	notificationRepo repositories.NotificationRepository
	sendTimeout      time.Duration
	wg               sync.WaitGroup
}

func NewNotificationDispatcher(
	provider email.Provider,
	renderer email.TemplateRenderer,
	notificationRepo repositories.NotificationRepository,
	sendTimeout time.Duration,
) *NotificationDispatcher {
	if sendTimeout <= 0 {
		sendTimeout = 10 * time.Second
	}
	return &NotificationDispatcher{
		events:           make(chan Event, 256),
		provider:         provider,
		renderer:         renderer,
		notificationRepo: notificationRepo,
		sendTimeout:      sendTimeout,
	}
}

// Start launches the consumer goroutine.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				logger.Info("notification dispatcher stopped")
				return
			case event, ok := <-d.events:
				if !ok {
					return
				}
				d.handle(event)
			}
		}
	}()
}

// Enqueue hands an event to the dispatcher without blocking the caller.
// When the queue is full the event is dropped and logged; delivery is
// best-effort by contract.
func (d *NotificationDispatcher) Enqueue(event Event) {
	select {
	case d.events <- event:
	default:
		logger.Warn("notification queue full, dropping event",
			"type", event.Type,
			"user_id", event.UserID,
		)
	}
}

// Stop drains nothing; it waits for the consumer to exit after ctx
// cancellation.
func (d *NotificationDispatcher) Stop() {
	d.wg.Wait()
}

func (d *NotificationDispatcher) handle(event Event) {
	d.persist(event)
	d.sendMail(event)
}

func (d *NotificationDispatcher) persist(event Event) {
	if d.notificationRepo == nil || event.UserID == "" {
		return
	}

	var data datatypes.JSON
	if event.Meta != nil {
		if raw, err := json.Marshal(event.Meta); err == nil {
			data = datatypes.JSON(raw)
		}
	}

	n := &models.Notification{
		UserID:  event.UserID,
		Type:    event.Type,
		Title:   event.Subject,
		Message: event.Message,
		Data:    data,
	}

	if err := d.notificationRepo.Create(n); err != nil {
		logger.Error("failed to persist notification",
			"type", event.Type,
			"user_id", event.UserID,
			"error", err,
		)
	}
}

func (d *NotificationDispatcher) sendMail(event Event) {
	if event.Email == "" {
		return
	}

	htmlBody := ""
	if event.Template != "" && d.renderer != nil {
		rendered, err := d.renderer.Render(event.Template, event.Data)
		if err != nil {
			logger.Error("failed to render notification template",
				"template", event.Template,
				"error", err,
			)
		} else {
			htmlBody = rendered
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	msg := &email.Email{
		To:       []string{event.Email},
		Subject:  event.Subject,
		Body:     event.Message,
		HTMLBody: htmlBody,
	}

	// Failures are logged and dropped: the lifecycle mutation already
	// committed and must not be unwound by mail problems.
	if err := d.provider.Send(ctx, msg); err != nil {
		logger.Error("failed to send notification email",
			"type", event.Type,
			"to", event.Email,
			"error", err,
		)
	}
}
