// Package worker drains the email job queue.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/byp-portal/backend/internal/mailer"
	"github.com/byp-portal/backend/pkg/queue"
)

// EmailProcessor consumes email jobs and delivers them via the mailer.
type EmailProcessor struct {
	jobs   *queue.Queue
	mailer *mailer.Mailer
	logger *zap.Logger
}

// NewEmailProcessor creates an email processor.
func NewEmailProcessor(jobs *queue.Queue, m *mailer.Mailer, logger *zap.Logger) *EmailProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailProcessor{jobs: jobs, mailer: m, logger: logger}
}

// Run blocks on the queue until ctx is cancelled.
func (p *EmailProcessor) Run(ctx context.Context) {
	p.logger.Info("email worker started")
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("email worker stopping")
			return
		default:
		}

		job, err := p.jobs.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("dequeue failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if job == nil {
			continue
		}
		p.Process(ctx, job)
	}
}

// Process handles one job. Failed sends are retried with backoff until the
// queue moves them to the DLQ.
func (p *EmailProcessor) Process(ctx context.Context, job *queue.Job) {
	if job.Type != queue.JobTypeEmail {
		p.logger.Warn("unknown job type", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		return
	}

	var payload queue.EmailPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		p.logger.Error("invalid email payload", zap.String("job_id", job.ID), zap.Error(err))
		return
	}

	if err := p.mailer.Send(payload); err != nil {
		p.logger.Error("send email failed",
			zap.Error(err),
			zap.String("job_id", job.ID),
			zap.String("to", payload.RecipientEmail),
			zap.Int("attempt", job.Attempt))
		time.Sleep(queue.RetryBackoff)
		if rerr := p.jobs.Retry(ctx, job); rerr != nil {
			p.logger.Error("retry enqueue failed", zap.Error(rerr), zap.String("job_id", job.ID))
		}
		return
	}

	p.logger.Info("email job processed",
		zap.String("job_id", job.ID),
		zap.String("kind", payload.Kind),
		zap.String("document_id", payload.DocumentID.String()))
}
