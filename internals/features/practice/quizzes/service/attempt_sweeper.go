package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"nguvan_backend/internals/features/practice/quizzes/model"
	"nguvan_backend/internals/helpers/logger"
)

// AttemptSweeper completes in-progress attempts whose quiz time limit (plus
// grace) has run out. Scoring stays in the engine; attempts completed between
// the scan and the write are left alone.
type AttemptSweeper struct {
	Attempts *QuizAttemptService
	Grace    time.Duration
	Log      *logger.Logger

	cron *cron.Cron
}

func NewAttemptSweeper(attempts *QuizAttemptService, grace time.Duration, l *logger.Logger) *AttemptSweeper {
	if l == nil {
		l = logger.Nop()
	}
	return &AttemptSweeper{Attempts: attempts, Grace: grace, Log: l.With("component", "attempt_sweeper")}
}

// SweepExpired completes every attempt that expired before now and returns how many it closed.
func (s *AttemptSweeper) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	var open []model.QuizAttemptModel
	err := s.Attempts.DB.WithContext(ctx).
		Preload("Quiz").
		Joins("JOIN quizzes q ON q.quiz_id = quiz_attempts.quiz_attempt_quiz_id AND q.quiz_time_limit_minutes > 0").
		Where("quiz_attempts.quiz_attempt_status = ?", model.QuizAttemptInProgress).
		Find(&open).Error
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range open {
		a := &open[i]
		if a.Quiz == nil {
			continue
		}
		limit := a.Quiz.TimeLimit()
		if limit == 0 || !now.After(a.QuizAttemptStartedAt.Add(limit+s.Grace)) {
			continue
		}
		expired, err := s.Attempts.ExpireAttempt(ctx, a.QuizAttemptID)
		if err != nil {
			s.Log.Warn("expire attempt failed", "attempt_id", a.QuizAttemptID, "error", err)
			continue
		}
		if !expired {
			s.Log.Debug("attempt completed before expiry", "attempt_id", a.QuizAttemptID)
			continue
		}
		closed++
	}
	if closed > 0 {
		s.Log.Info("expired attempts completed", "count", closed)
	}
	return closed, nil
}

// Start schedules SweepExpired on the given cron spec (e.g. "@every 1m").
func (s *AttemptSweeper) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.SweepExpired(ctx, s.Attempts.now()); err != nil {
			s.Log.Error("sweep failed", "error", err)
		}
	}); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.Log.Info("attempt sweeper started", "spec", spec, "grace", s.Grace.String())
	return nil
}

// Stop waits for a running sweep to finish.
func (s *AttemptSweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
