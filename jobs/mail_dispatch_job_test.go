package jobs

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	mu      sync.Mutex
	batches [][]*gomail.Message
	err     error
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, m)
	return nil
}

func (s *recordingSender) sent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func message(to string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("To", to)
	return m
}

func TestMailDispatchJob_EnqueueRespectsCapacity(t *testing.T) {
	job := NewMailDispatchJob(&recordingSender{}, time.Hour, 2, 10, quietLogger())

	assert.True(t, job.Enqueue(message("a@example.com")))
	assert.True(t, job.Enqueue(message("b@example.com")))
	assert.False(t, job.Enqueue(message("c@example.com")))
}

func TestMailDispatchJob_FlushBatches(t *testing.T) {
	sender := &recordingSender{}
	job := NewMailDispatchJob(sender, time.Hour, 10, 2, quietLogger())
	for i := 0; i < 5; i++ {
		require.True(t, job.Enqueue(message("x@example.com")))
	}

	job.flush()

	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 2)
	assert.Len(t, sender.batches[2], 1)
}

func TestMailDispatchJob_StopDrainsQueue(t *testing.T) {
	sender := &recordingSender{}
	job := NewMailDispatchJob(sender, time.Hour, 10, 5, quietLogger())
	job.Start()

	job.Enqueue(message("a@example.com"))
	job.Enqueue(message("b@example.com"))
	job.Stop()

	assert.Equal(t, 2, sender.sent())
}

func TestMailDispatchJob_TickerSends(t *testing.T) {
	sender := &recordingSender{}
	job := NewMailDispatchJob(sender, 10*time.Millisecond, 10, 5, quietLogger())
	job.Start()
	defer job.Stop()

	job.Enqueue(message("a@example.com"))

	assert.Eventually(t, func() bool { return sender.sent() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMailDispatchJob_SendErrorStopsFlush(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	job := NewMailDispatchJob(sender, time.Hour, 10, 1, quietLogger())
	job.Enqueue(message("a@example.com"))
	job.Enqueue(message("b@example.com"))

	job.flush()

	assert.Len(t, job.queue, 1)
}
