package worker

import (
	"context"
	"log"

	"robocomp/registration"
	"robocomp/utils"
)

type confirmationJob struct {
	to         string
	submission registration.Submission
}

// NotifyWorker delivers confirmation mail off the request path. Failed
// sends are logged and dropped; the registration outcome never depends on
// mail delivery.
type NotifyWorker struct {
	mailer *utils.Mailer
	logger *log.Logger
	queue  chan confirmationJob
}

func NewNotifyWorker(mailer *utils.Mailer, logger *log.Logger) *NotifyWorker {
	return &NotifyWorker{
		mailer: mailer,
		logger: logger,
		queue:  make(chan confirmationJob, 64),
	}
}

// EnqueueConfirmation queues a confirmation mail without blocking. If the
// queue is full the mail is dropped with a log line.
func (w *NotifyWorker) EnqueueConfirmation(to string, sub registration.Submission) {
	select {
	case w.queue <- confirmationJob{to: to, submission: sub}:
	default:
		w.logger.Printf("Notification queue full, dropping confirmation for %s (team %q)", to, sub.TeamName)
	}
}

// Start consumes the queue until ctx is cancelled.
func (w *NotifyWorker) Start(ctx context.Context) {
	w.logger.Println("Notification worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Println("Notification worker stopping")
			return
		case job := <-w.queue:
			if err := w.mailer.SendConfirmation(job.to, job.submission); err != nil {
				w.logger.Printf("Failed to send confirmation for team %q: %v", job.submission.TeamName, err)
				continue
			}
			w.logger.Printf("Confirmation sent to %s for team %q", job.to, job.submission.TeamName)
		}
	}
}
