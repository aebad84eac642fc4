// File: /jobs/mail_dispatch_job.go
package jobs

import (
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"
)

// MailSender delivers a batch of messages over one connection.
// *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailDispatchJob buffers outgoing mail and sends it in batches on a ticker
type MailDispatchJob struct {
	sender   MailSender
	queue    chan *gomail.Message
	interval time.Duration
	batch    int
	log      *slog.Logger
	done     chan struct{}
	stopped  chan struct{}
}

// NewMailDispatchJob creates a dispatch job with a queue of queueSize messages
func NewMailDispatchJob(sender MailSender, interval time.Duration, queueSize, batch int, log *slog.Logger) *MailDispatchJob {
	if queueSize <= 0 {
		queueSize = 100
	}
	if batch <= 0 {
		batch = 20
	}
	return &MailDispatchJob{
		sender:   sender,
		queue:    make(chan *gomail.Message, queueSize),
		interval: interval,
		batch:    batch,
		log:      log,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Enqueue adds m to the queue. It returns false when the queue is full.
func (j *MailDispatchJob) Enqueue(m *gomail.Message) bool {
	select {
	case j.queue <- m:
		return true
	default:
		return false
	}
}

// Start begins the dispatch loop
func (j *MailDispatchJob) Start() {
	j.log.Info("mail dispatch job started", "interval", j.interval)

	go func() {
		defer close(j.stopped)
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.flush()
			case <-j.done:
				j.flush()
				j.log.Info("mail dispatch job stopped")
				return
			}
		}
	}()
}

// Stop sends whatever is still queued and waits for the loop to exit
func (j *MailDispatchJob) Stop() {
	close(j.done)
	<-j.stopped
}

// flush drains the queue in batches
func (j *MailDispatchJob) flush() {
	for {
		batch := j.take()
		if len(batch) == 0 {
			return
		}
		if err := j.sender.DialAndSend(batch...); err != nil {
			j.log.Error("mail dispatch failed", "messages", len(batch), "error", err)
			return
		}
		j.log.Debug("mail dispatched", "messages", len(batch))
	}
}

func (j *MailDispatchJob) take() []*gomail.Message {
	batch := make([]*gomail.Message, 0, j.batch)
	for len(batch) < j.batch {
		select {
		case m := <-j.queue:
			batch = append(batch, m)
		default:
			return batch
		}
	}
	return batch
}
