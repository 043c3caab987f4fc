package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is the artificial latency of a simulated submission.
const DefaultDelay = 2 * time.Second

// Receipt acknowledges a simulated submission.
type Receipt struct {
	ID         string
	ReceivedAt time.Time
}

// Simulator accepts submissions and discards them after Delay. Nothing is
// sent over the network and nothing is stored.
type Simulator struct {
	Delay  time.Duration
	Logger *slog.Logger
	now    func() time.Time
}

// NewSimulator returns a Simulator that waits delay before accepting; a
// negative delay is treated as zero.
func NewSimulator(delay time.Duration, logger *slog.Logger) *Simulator {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{Delay: delay, Logger: logger, now: time.Now}
}

// Submit waits out the delay and returns a receipt. It returns ctx.Err()
// if the caller goes away first.
func (s *Simulator) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	r := Receipt{ID: uuid.NewString(), ReceivedAt: s.now().UTC()}
	// Only lengths are logged; the message itself is discarded.
	s.Logger.Info("contact.simulated",
		"receipt", r.ID,
		"subject_len", len(sub.Subject),
		"message_len", len(sub.Message),
	)
	return r, nil
}
