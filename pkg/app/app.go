// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	ctxPkg "github.com/yasameenmsa/talentvault/pkg/context"
	"github.com/yasameenmsa/talentvault/pkg/internal/jobs"
	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/router"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage"
	"github.com/yasameenmsa/talentvault/pkg/log"
	"github.com/yasameenmsa/talentvault/pkg/metrics"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
	"github.com/yasameenmsa/talentvault/pkg/scheduler"
	"github.com/yasameenmsa/talentvault/pkg/tracing"
)

// App 聚合HTTP引擎与后台组件.
type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	sched   *scheduler.Scheduler
	manager *storage.Manager
}

// NewApp 按顺序初始化配置、日志、追踪、指标、存储、调度器与路由.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	log.Init()

	config := configs.GetConfig()

	if config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	if err := migrate(manager); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterCronJobs(sched, manager); err != nil {
		fmt.Printf("Error registering cron jobs: %v\n", err)
		os.Exit(1)
	}

	sched.Start()

	// 物理删除失败的对账消费者
	startUnlinkReconciler(ctxPkg.WithStorageManager(ctx, manager), manager)

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.StorageMiddleware(manager),
		middleware.SchedulerMiddleware(sched),
		middleware.AuthMiddleware(config.Auth),
	)

	router.RegisterAll(engine)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		config:  config,
		sched:   sched,
		manager: manager,
	}
}

// migrate 建表；GORM 指标插件在 db.New 中已挂接.
func migrate(manager *storage.Manager) error {
	dbc := manager.GetDBClient()
	if dbc == nil || dbc.GetDB() == nil {
		return fmt.Errorf("db client not initialized")
	}

	if err := dbc.GetDB().AutoMigrate(&model.FileRecord{}, &model.CV{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}

// Run 启动HTTP服务.
func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown 停止后台组件.
func (a *App) Shutdown(ctx contextPkg.Context) error {
	if a.sched != nil {
		if err := a.sched.Stop(); err != nil {
			log.Logger().Warn().Err(err).Msg("Scheduler shutdown failed")
		}
	}

	if a.manager != nil {
		if mqc := a.manager.GetMQClient(); mqc != nil {
			_ = mqc.Close()
		}
	}

	return tracing.ShutdownTracer(ctx)
}
