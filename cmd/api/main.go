package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"blog-admin/article"
	"blog-admin/cmd/api/auth"
	"blog-admin/cmd/api/handlers"
	"blog-admin/cmd/api/httpclient"
	"blog-admin/cmd/api/router"
	"blog-admin/config"
	"blog-admin/db"
	"blog-admin/eventbus"
	"blog-admin/feeder"
	"blog-admin/repositories"
	"blog-admin/services"
	"blog-admin/storage"
	"blog-admin/summarizer"
)

// @title           Blog Admin API
// @version         1.0
// @description     Admin API for managing blog cards: CRUD, search, pagination, cover image upload and RSS import
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		config.Logger.Errorf("object storage 초기화 실패: %v", err)
		os.Exit(1)
	}

	var (
		repo repositories.BlogStore
		ping handlers.Pinger
	)
	if cfg.Storage.Backend == storage.BackendMemory {
		config.Logger.Warn("storage.backend=memory: blogs are kept in process and lost on restart")
		repo = repositories.NewMemoryBlogRepository()
	} else {
		if err := db.Init(ctx); err != nil {
			config.Logger.Errorf("MongoDB 초기화 실패: %v", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close(context.Background()) }()
		repo = repositories.NewBlogRepository(db.Database())
		ping = db.Ping
	}

	bus := newPublisher(cfg.Kafka)
	defer bus.Close()

	topic := eventbus.TopicBlogEvents
	if cfg.Kafka.Topic != "" {
		topic = eventbus.NewTopic(cfg.Kafka.Topic)
	}

	blogs := services.NewBlogService(repo, bus, topic)
	if cfg.Paginate.DefaultLimit > 0 {
		blogs.DefaultLimit = cfg.Paginate.DefaultLimit
	}
	if cfg.Paginate.MaxLimit > 0 {
		blogs.MaxLimit = cfg.Paginate.MaxLimit
	}

	uploads := services.NewUploadService(store, cfg.Upload.MaxBytes, cfg.Upload.Prefix)
	blogs.Images = uploads

	var sum summarizer.Summarizer
	if cfg.Gemini.APIKey != "" {
		g, err := summarizer.NewGeminiSummarizer(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			config.Logger.Warnf("summarizer 비활성화: %v", err)
		} else {
			sum = summarizer.NewLimited(g, summarizer.NewQuotaLimiter(cfg.Gemini.RequestsPerMinute, cfg.Gemini.RequestsPerDay))
		}
	}
	outbound := httpclient.New(httpclient.Config{Timeout: 20 * time.Second})
	imports := services.NewImportService(blogs, &feeder.Fetcher{Client: outbound}, sum)
	if cfg.Import.MaxItems > 0 {
		imports.MaxItems = cfg.Import.MaxItems
	}
	if cfg.Import.SummaryMaxRune > 0 {
		imports.SummaryMaxRunes = cfg.Import.SummaryMaxRune
	}
	if cfg.Import.Enrich {
		var renderer article.Renderer
		if cfg.Import.RenderJS {
			renderer = article.NewChromeRenderer(cfg.Import.ChromePath)
		}
		imports.Extractor = article.NewExtractor(outbound, renderer)
	}

	var jwtManager *auth.JWTManager
	if cfg.Auth.Enabled {
		jwtManager, err = auth.NewJWTManager(os.Getenv("JWT_SECRET"), cfg.Auth.Issuer, 0)
		if err != nil {
			config.Logger.Errorf("JWT 설정 오류: %v", err)
			os.Exit(1)
		}
	} else {
		config.Logger.Warn("auth.enabled=false: admin routes are not protected")
	}

	r := router.New(router.Deps{
		Blogs:   blogs,
		Uploads: uploads,
		Imports: imports,
		Store:   store,
		JWT:     jwtManager,
		Ping:    ping,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.API.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.API.Addr,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("API 서버 시작: %s", cfg.API.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Errorf("API 서버 오류: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	config.Logger.Info("API 서버 종료 중...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("graceful shutdown 실패: %v", err)
	}
}

// newPublisher returns the Kafka bus when enabled, otherwise a NoopBus.
func newPublisher(cfg config.KafkaConfig) eventbus.Publisher {
	if !cfg.Enabled || cfg.Brokers == "" {
		return eventbus.NoopBus{}
	}
	topic := eventbus.TopicBlogEvents
	if cfg.Topic != "" {
		topic = eventbus.NewTopic(cfg.Topic)
	}
	if err := eventbus.EnsureTopics(cfg.Brokers, topic, 1); err != nil {
		config.Logger.Warnf("Kafka 토픽 준비 실패: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		config.Logger.Errorf("Kafka 비활성화: %v", err)
		return eventbus.NoopBus{}
	}
	return bus
}
