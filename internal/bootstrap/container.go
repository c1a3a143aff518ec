package bootstrap

import (
	"log"

	"teamspace-be/internal/config"
	"teamspace-be/internal/controller"
	"teamspace-be/internal/partition"
	"teamspace-be/internal/pkg/logger"
	"teamspace-be/internal/pkg/mailer"
	"teamspace-be/internal/repository/implementation"
	"teamspace-be/internal/repository/unitofwork"
	"teamspace-be/internal/service"

	pktNats "teamspace-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	WorkspaceController controller.IWorkspaceController
	MemberController    controller.IMemberController
	RecordController    controller.IRecordController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Infrastructure exposed for shutdown
	NatsPublisher *pktNats.Publisher
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.App.MailTopic, pubSub)
	consumerService := service.NewMailConsumerService(pubSub, cfg.App.MailTopic, emailService, sysLogger)

	// NATS audit bus; a nil publisher drops events, the API keeps
	// serving without a broker.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Partition routing
	partitionRouter := partition.NewRouter(db)
	recordFactory := implementation.NewRecordRepositoryFactory(partitionRouter)

	// 4. Services
	accessService := service.NewAccessService(uowFactory)
	authService := service.NewAuthService(uowFactory, publisherService, cfg.App.JWTSecret, cfg.App.ClientURL, sysLogger)
	workspaceService := service.NewWorkspaceService(uowFactory, accessService, partitionRouter, natsPub, sysLogger)
	memberService := service.NewMemberService(uowFactory, accessService, publisherService, natsPub, cfg.App.ClientURL, sysLogger)
	recordService := service.NewRecordService(uowFactory, accessService, recordFactory)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		WorkspaceController: controller.NewWorkspaceController(workspaceService),
		MemberController:    controller.NewMemberController(memberService),
		RecordController:    controller.NewRecordController(recordService),
		ConsumerService:     consumerService,
		NatsPublisher:       natsPub,
		Logger:              sysLogger,
	}
}
