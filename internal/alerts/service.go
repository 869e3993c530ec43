package alerts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/Ecotupper/ecotupperapp/internal/config"
)

// Service runs the async notification queue. A nil *Service is a valid
// disabled service: every enqueue becomes a no-op.
type Service struct {
	client *asynq.Client
	server *asynq.Server
	mailer *Mailer
	logger *logrus.Logger
}

// New starts the queue worker when Redis is configured; otherwise it
// returns nil and notifications are silently skipped.
func New(cfg config.AlertsConfig, logger *logrus.Logger) *Service {
	if cfg.RedisAddr == "" {
		logger.Info("alerts disabled: REDIS_ADDR not set")
		return nil
	}

	opts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	s := &Service{
		client: asynq.NewClient(opts),
		mailer: NewMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom),
		logger: logger,
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCheckoutReceipt, s.handleCheckoutReceipt)
	mux.HandleFunc(TaskCollaboratorWelcome, s.handleCollaboratorWelcome)
	mux.HandleFunc(TaskFriendInvite, s.handleFriendInvite)
	mux.HandleFunc(TaskBusinessRecommendation, s.handleBusinessRecommendation)

	s.server = asynq.NewServer(opts, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues: map[string]int{
			"emails": 10,
		},
	})
	go func() {
		if err := s.server.Run(mux); err != nil {
			logger.WithError(err).Error("alerts worker stopped")
		}
	}()

	logger.WithField("redis_addr", cfg.RedisAddr).Info("alerts initialized")
	return s
}

func (s *Service) Close() {
	if s == nil {
		return
	}
	_ = s.client.Close()
	s.server.Shutdown()
}

func (s *Service) enqueue(taskType string, payload any) {
	if s == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		s.logger.WithError(err).WithField("task", taskType).Error("failed to marshal alert payload")
		return
	}
	task := asynq.NewTask(taskType, b)
	if _, err := s.client.Enqueue(task, asynq.Queue("emails"), asynq.MaxRetry(3)); err != nil {
		// Enqueue failures are logged, never surfaced to the user.
		s.logger.WithError(err).WithField("task", taskType).Error("failed to enqueue alert")
	}
}

func (s *Service) EnqueueCheckoutReceipt(p CheckoutReceiptPayload) {
	p.SentAt = time.Now()
	s.enqueue(TaskCheckoutReceipt, p)
}

func (s *Service) EnqueueCollaboratorWelcome(p CollaboratorWelcomePayload) {
	p.SentAt = time.Now()
	s.enqueue(TaskCollaboratorWelcome, p)
}

func (s *Service) EnqueueFriendInvite(p FriendInvitePayload) {
	p.SentAt = time.Now()
	s.enqueue(TaskFriendInvite, p)
}

func (s *Service) EnqueueBusinessRecommendation(p BusinessRecommendationPayload) {
	p.SentAt = time.Now()
	s.enqueue(TaskBusinessRecommendation, p)
}

func (s *Service) handleCheckoutReceipt(ctx context.Context, t *asynq.Task) error {
	var p CheckoutReceiptPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	if p.Envelope.To == "" {
		s.logger.WithField("session_id", p.SessionID).Info("checkout receipt skipped: no recipient")
		return nil
	}
	return s.mailer.Send(p.Envelope.To, p.Envelope.Subject, p.Envelope.Body)
}

func (s *Service) handleCollaboratorWelcome(ctx context.Context, t *asynq.Task) error {
	var p CollaboratorWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	if p.Envelope.To == "" {
		s.logger.WithField("session_id", p.SessionID).Info("collaborator welcome skipped: no recipient")
		return nil
	}
	return s.mailer.Send(p.Envelope.To, p.Envelope.Subject, p.Envelope.Body)
}

func (s *Service) handleFriendInvite(ctx context.Context, t *asynq.Task) error {
	var p FriendInvitePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	return s.mailer.Send(p.Envelope.To, p.Envelope.Subject, p.Envelope.Body)
}

func (s *Service) handleBusinessRecommendation(ctx context.Context, t *asynq.Task) error {
	var p BusinessRecommendationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}
	if p.Envelope.To == "" {
		s.logger.WithField("business", p.BusinessName).Info("recommendation recorded without recipient")
		return nil
	}
	return s.mailer.Send(p.Envelope.To, p.Envelope.Subject, p.Envelope.Body)
}
