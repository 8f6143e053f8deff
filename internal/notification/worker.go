package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
)

// Worker consumes notification jobs from Kafka and delivers emails. Running
// delivery off a durable topic means pending receipts and reminders survive
// process restarts.
type Worker struct {
	reader *kafka.Reader
	email  *EmailSender
}

func NewWorker(reader *kafka.Reader, email *EmailSender) *Worker {
	return &Worker{reader: reader, email: email}
}

// Run blocks consuming jobs until the context is cancelled. Delivery errors
// are logged and the message is still committed: a broken address should not
// wedge the queue.
func (w *Worker) Run(ctx context.Context) {
	if w.reader == nil {
		log.Println("⚠️ Notification worker disabled (no Kafka reader)")
		return
	}
	log.Println("📨 Notification worker started")

	for {
		msg, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("📨 Notification worker stopped")
				return
			}
			log.Printf("⚠️ Notification read error: %v", err)
			continue
		}

		var job Job
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			log.Printf("⚠️ Dropping malformed notification job: %v", err)
			continue
		}

		if err := w.deliver(job); err != nil {
			log.Printf("❌ Failed to deliver %s to %s: %v", job.Type, job.Email, err)
		}
	}
}

func (w *Worker) deliver(job Job) error {
	if job.Email == "" {
		return fmt.Errorf("job has no recipient")
	}
	return w.email.Send(job.Email, job.Subject, buildBody(job))
}

func buildBody(job Job) string {
	switch job.Type {
	case JobDonationReceipt:
		return fmt.Sprintf(
			"Dear %s,\n\nThank you for your donation of %s towards %s.\n\nReceipt number: %s\nDownload your receipt: %s\n\nWith gratitude,\nThe NGOStream Team",
			job.Name, job.Data["amount"], job.Data["target"],
			job.Data["receipt_number"], job.Data["receipt_url"])

	case JobEventRegistration:
		return fmt.Sprintf(
			"Dear %s,\n\nYour registration for %s is confirmed.\n\nLocation: %s\nStarts: %s\n\nSee you there,\nThe NGOStream Team",
			job.Name, job.Data["event_name"], job.Data["location"], job.Data["start_date"])

	case JobEventReminder:
		return fmt.Sprintf(
			"Dear %s,\n\nA reminder that %s starts on %s at %s.\n\nThe NGOStream Team",
			job.Name, job.Data["event_name"], job.Data["start_date"], job.Data["location"])

	case JobSchemeEnrollment:
		return fmt.Sprintf(
			"Dear %s,\n\nYou have been enrolled in the scheme %q. We will contact you with the next steps.\n\nThe NGOStream Team",
			job.Name, job.Data["scheme_name"])

	default:
		return fmt.Sprintf("Dear %s,\n\n%s\n\nThe NGOStream Team", job.Name, job.Subject)
	}
}
