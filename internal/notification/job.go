package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Shree2124/ngostream-backend/utils"
)

// Job types consumed by the worker.
const (
	JobDonationReceipt      = "donation_receipt"
	JobEventRegistration    = "event_registration"
	JobEventReminder        = "event_reminder"
	JobSchemeEnrollment     = "scheme_enrollment"
)

// Job is a durable email/push task published to the notification topic.
// Jobs survive process restarts, so scheduled reminders are not lost on
// redeploy.
type Job struct {
	Type    string            `json:"type"`
	Email   string            `json:"email"`
	Name    string            `json:"name"`
	Subject string            `json:"subject"`
	Data    map[string]string `json:"data,omitempty"`
}

// Enqueue publishes a job, best-effort: a broker failure is logged and
// swallowed so the primary operation is never failed by a side effect.
func Enqueue(ctx context.Context, job Job) {
	payload, err := json.Marshal(job)
	if err != nil {
		log.Printf("⚠️ Failed to encode %s job: %v", job.Type, err)
		return
	}
	if err := utils.PublishNotification(ctx, job.Type, payload); err != nil {
		log.Printf("⚠️ Failed to enqueue %s job for %s: %v", job.Type, job.Email, err)
	}
}
