package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSubmission() Submission {
	return Submission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice site.",
	}
}

func TestFieldErrors(t *testing.T) {
	err := binding.Validator.ValidateStruct(Submission{Email: "not-an-email"})
	require.Error(t, err)

	fe := FieldErrors(err)
	assert.Equal(t, "This field is required.", fe["name"])
	assert.Equal(t, "Enter a valid email address.", fe["email"])
	assert.Equal(t, "This field is required.", fe["subject"])
	assert.Equal(t, "This field is required.", fe["message"])

	assert.NoError(t, binding.Validator.ValidateStruct(validSubmission()))
	assert.Nil(t, FieldErrors(nil))
	assert.Contains(t, FieldErrors(errors.New("EOF")), "")
}

func TestTrim(t *testing.T) {
	s := Submission{Name: "  Ada ", Email: " a@b.co", Subject: "x ", Message: "\n hi \n"}.Trim()
	assert.Equal(t, Submission{Name: "Ada", Email: "a@b.co", Subject: "x", Message: "hi"}, s)
}

func TestFormReset_ClearsEveryField(t *testing.T) {
	f := Form{
		Values:  validSubmission(),
		Errors:  map[string]string{"email": "bad"},
		Failure: "oops",
		Success: "Thanks!",
	}
	f.Reset()

	assert.Equal(t, Submission{}, f.Values)
	assert.Empty(t, f.Errors)
	assert.False(t, f.HasErrors())
	assert.Equal(t, "Thanks!", f.Success)
}

func TestSimulator_WaitsForDelay(t *testing.T) {
	s := NewSimulator(30*time.Millisecond, quietLogger())

	start := time.Now()
	r, err := s.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.ReceivedAt.IsZero())
}

func TestSimulator_Cancelled(t *testing.T) {
	s := NewSimulator(time.Hour, quietLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Submit(ctx, validSubmission())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulator_ZeroDelay(t *testing.T) {
	s := NewSimulator(-time.Second, nil)
	assert.Equal(t, time.Duration(0), s.Delay)

	_, err := s.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Submit(ctx, validSubmission())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLimiter(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("a"))

	now = now.Add(time.Hour)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_SweepsOncePerIdlePeriod(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	now := start
	l := NewLimiter(time.Minute, 1)
	l.now = func() time.Time { return now }

	at := func(d time.Duration, key string) {
		now = start.Add(d)
		l.Allow(key)
	}

	at(0, "a")
	at(5*time.Minute, "b")
	at(10*time.Minute, "c")
	// "a" has been idle past the limit, but the last sweep was too recent.
	at(15*time.Minute, "d")
	assert.Equal(t, 4, l.Len())

	at(20*time.Minute, "e")
	assert.Equal(t, 3, l.Len())
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(0, 1)
	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("a"))
	}
	var nilLimiter *Limiter
	assert.True(t, nilLimiter.Allow("a"))
}
