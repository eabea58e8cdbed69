package worker

// notify_worker.go
// Processes event notification jobs from QueueNotify: every milestone
// appended to an order's history mails the order's customer.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Italzenergy/AlzConnect-app/internal/infra"

	"github.com/rs/zerolog/log"
)

type NotifyWorker struct {
	mailer *infra.Mailer
}

func NewNotifyWorker(mailer *infra.Mailer) *NotifyWorker {
	return &NotifyWorker{mailer: mailer}
}

// Process sends the notification email. Failures are logged and dropped;
// the order history is already committed and must not be affected.
func (w *NotifyWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload EventNotificationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notify_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("notify_worker: empty to_email, skipping")
		return
	}

	subject := fmt.Sprintf("Actualización de tu pedido %s", payload.TrackingCode)
	body := fmt.Sprintf("Tu pedido %s tiene una novedad: %s", payload.TrackingCode, payload.EventType)
	if payload.Note != "" {
		body += "\n\n" + payload.Note
	}

	if err := w.mailer.Send(payload.ToEmail, subject, body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("notify_worker: failed to send email")
		return
	}
	log.Info().Str("to", payload.ToEmail).Str("tracking_code", payload.TrackingCode).Msg("notify_worker: notification sent")
}
