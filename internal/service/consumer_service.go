package service

import (
	"context"
	"encoding/json"

	"teamspace-be/internal/dto"
	"teamspace-be/internal/pkg/logger"
	"teamspace-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// mailConsumerService drains the mail topic and delivers messages
// through the SMTP mailer. Delivery failures are logged, never
// propagated back to the publishing request.
type mailConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewMailConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &mailConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *mailConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *mailConsumerService) processMessage(msg *message.Message) {
	var payload dto.MailMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("MailConsumer", "Failed to unmarshal mail message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	switch payload.Kind {
	case dto.MailKindInvite:
		err = cs.emailService.SendWorkspaceInvite(payload.To, payload.WorkspaceName, payload.URL)
	case dto.MailKindPasswordReset:
		err = cs.emailService.SendResetToken(payload.To, payload.URL)
	default:
		cs.logger.Warn("MailConsumer", "Unknown mail kind", map[string]interface{}{"kind": payload.Kind})
	}

	if err != nil {
		cs.logger.Error("MailConsumer", "Failed to deliver mail", map[string]interface{}{
			"kind":  payload.Kind,
			"to":    payload.To,
			"error": err.Error(),
		})
	}

	msg.Ack()
}
