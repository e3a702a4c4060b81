package provider

import (
	"github.com/bookstore-next/internal/authz"
	"github.com/bookstore-next/internal/cache"
	"github.com/bookstore-next/internal/config"
	"github.com/bookstore-next/internal/logger"
	"github.com/bookstore-next/internal/models"
	"github.com/bookstore-next/internal/queue"
	"github.com/bookstore-next/internal/repository"
	"github.com/bookstore-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	BookRepo     repository.BookRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
	BookService     *service.BookService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.BookRepo = repository.NewBookRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.CartRepo)
	c.BookService = service.NewBookService(c.BookRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.BookRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.UserRepo, c.QueueClient)
}
