package bootstrap

import (
	"time"

	"proofly-be/internal/config"
	"proofly-be/internal/controller"
	"proofly-be/internal/pkg/logger"
	"proofly-be/internal/pkg/mailer"
	"proofly-be/internal/pkg/ratelimit"
	"proofly-be/internal/pkg/storage"
	"proofly-be/internal/repository/unitofwork"
	"proofly-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const keyUsageTopic = "apikey.used"

type Container struct {
	// Controllers
	ProjectController     controller.IProjectController
	CategoryController    controller.ICategoryController
	QuestionController    controller.IQuestionController
	TestimonialController controller.ITestimonialController
	ApiKeyController      controller.IApiKeyController
	RequestController     controller.IRequestController
	PublicController      controller.IPublicController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	imageUploader := storage.NewSupabaseUploader(
		cfg.Storage.SupabaseURL,
		cfg.Storage.SupabaseServiceKey,
		cfg.Storage.SupabaseBucket,
	)
	videoUploader := storage.NewCloudinaryUploader(
		cfg.Storage.CloudinaryCloudName,
		cfg.Storage.CloudinaryAPIKey,
		cfg.Storage.CloudinaryAPISecret,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(keyUsageTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, keyUsageTopic, uowFactory, sysLogger)

	// 3. Services
	projectService := service.NewProjectService(uowFactory)
	categoryService := service.NewCategoryService(uowFactory)
	questionService := service.NewQuestionService(uowFactory)
	testimonialService := service.NewTestimonialService(uowFactory)
	submissionService := service.NewSubmissionService(uowFactory)
	apiKeyService := service.NewApiKeyService(uowFactory)
	requestService := service.NewRequestService(uowFactory, emailService, cfg.App.ClientURL)
	uploadService := service.NewUploadService(imageUploader, videoUploader)
	feedService := service.NewFeedService(uowFactory, publisherService, sysLogger)

	// Public endpoints absorb anonymous traffic; keep the window tight.
	publicLimiter := ratelimit.New(30, time.Minute)

	// 4. Controllers
	return &Container{
		ProjectController:     controller.NewProjectController(projectService),
		CategoryController:    controller.NewCategoryController(categoryService),
		QuestionController:    controller.NewQuestionController(questionService),
		TestimonialController: controller.NewTestimonialController(testimonialService),
		ApiKeyController:      controller.NewApiKeyController(apiKeyService),
		RequestController:     controller.NewRequestController(requestService),
		PublicController: controller.NewPublicController(
			submissionService,
			uploadService,
			feedService,
			publicLimiter,
		),
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
