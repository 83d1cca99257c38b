package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/byp-portal/backend/config"
	"github.com/byp-portal/backend/internal/admins"
	"github.com/byp-portal/backend/internal/auth"
	"github.com/byp-portal/backend/internal/colleges"
	"github.com/byp-portal/backend/internal/content"
	"github.com/byp-portal/backend/internal/donations"
	"github.com/byp-portal/backend/internal/middleware"
	"github.com/byp-portal/backend/internal/models"
	"github.com/byp-portal/backend/internal/payments"
	"github.com/byp-portal/backend/internal/registrations"
	"github.com/byp-portal/backend/internal/uploads"
	"github.com/byp-portal/backend/pkg/database"
	"github.com/byp-portal/backend/pkg/docstore"
	"github.com/byp-portal/backend/pkg/queue"
	appredis "github.com/byp-portal/backend/pkg/redis"
	"github.com/byp-portal/backend/pkg/response"
	"github.com/byp-portal/backend/pkg/storage"
)

func main() {
	logCfg := zap.NewProductionConfig()
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	rdb, err := appredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	store, err := storage.NewStore(ctx, storage.S3Config{
		Region:               cfg.AWS.Region,
		AccessKeyID:          cfg.AWS.AccessKeyID,
		SecretAccessKey:      cfg.AWS.SecretAccessKey,
		MediaBucket:          cfg.AWS.MediaBucket,
		MaxUploadBytes:       cfg.AWS.MaxUploadBytes,
		PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create media store", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
	gateway := payments.NewGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, logger)
	pending := payments.NewPendingStore(rdb.Client,
		time.Duration(cfg.Orders.PendingTTLMinutes)*time.Minute)
	jobs := queue.NewQueue(rdb.Client, logger)

	// Collections.
	registrationRepo := docstore.NewRepository[models.Registration](pool, "registrations")
	donationRepo := docstore.NewRepository[models.Donation](pool, "donations")
	sponsorshipRepo := docstore.NewRepository[models.Sponsorship](pool, "sponsorships")
	contactRepo := docstore.NewRepository[models.ContactMessage](pool, "contacts")
	adminRepo := docstore.NewRepository[models.Admin](pool, "admins")
	collegeRepo := docstore.NewRepository(pool, "colleges",
		docstore.WithSort(func(a, b docstore.Doc[models.College]) bool {
			return strings.ToLower(a.Data.Name) < strings.ToLower(b.Data.Name)
		}))
	blogRepo := docstore.NewRepository[models.BlogPost](pool, "blogs")
	speakerRepo := docstore.NewRepository[models.Speaker](pool, "speakers")
	galleryRepo := docstore.NewRepository[models.MediaItem](pool, "gallery")
	spotRepo := docstore.NewRepository[models.AVSpot](pool, "spots")
	clippingRepo := docstore.NewRepository[models.NewsClipping](pool, "clippings")
	creativeRepo := docstore.NewRepository[models.Creative](pool, "creatives")
	sponsorRepo := docstore.NewRepository[models.Sponsor](pool, "sponsors")

	userRepo := auth.NewRepository(pool)

	authHandler := auth.NewHandler(userRepo, adminRepo, jwtService, logger)
	registrationHandler := registrations.NewHandler(registrationRepo, gateway, pending, jobs, logger)
	donationHandler := donations.NewHandler(donationRepo, sponsorshipRepo, contactRepo, gateway, pending, jobs, logger)
	collegeHandler := colleges.NewHandler(collegeRepo, logger)
	adminHandler := admins.NewHandler(userRepo, adminRepo, logger)
	uploadHandler := uploads.NewHandler(store, logger)

	published := func(status string) bool { return status == models.StatusPublished }

	blogCRUD := content.NewCRUD("blogs", blogRepo, logger,
		content.WithSearch(func(b models.BlogPost) []string { return []string{b.Title, b.Author, b.Category} }),
		content.WithPublicListing(func(b models.BlogPost) bool { return published(b.Status) }))
	speakerCRUD := content.NewCRUD("speakers", speakerRepo, logger,
		content.WithSearch(func(s models.Speaker) []string { return []string{s.Name, s.Designation} }),
		content.WithPublicListing(func(s models.Speaker) bool { return published(s.Status) }))
	galleryCRUD := content.NewCRUD("gallery", galleryRepo, logger,
		content.WithSearch(func(m models.MediaItem) []string { return []string{m.Caption, m.Category} }),
		content.WithPublicListing(func(m models.MediaItem) bool { return published(m.Status) }))
	spotCRUD := content.NewCRUD("spots", spotRepo, logger,
		content.WithSearch(func(s models.AVSpot) []string { return []string{s.Title, s.Kind} }),
		content.WithPublicListing(func(s models.AVSpot) bool { return published(s.Status) }))
	clippingCRUD := content.NewCRUD("clippings", clippingRepo, logger,
		content.WithSearch(func(n models.NewsClipping) []string { return []string{n.Title, n.Outlet} }),
		content.WithPublicListing(func(n models.NewsClipping) bool { return published(n.Status) }))
	creativeCRUD := content.NewCRUD("creatives", creativeRepo, logger,
		content.WithSearch(func(cr models.Creative) []string { return []string{cr.Title, cr.Category} }),
		content.WithPublicListing(func(cr models.Creative) bool { return published(cr.Status) }))
	sponsorCRUD := content.NewCRUD("sponsors", sponsorRepo, logger,
		content.WithSearch(func(s models.Sponsor) []string { return []string{s.Name, s.Tier} }),
		content.WithPublicListing(func(s models.Sponsor) bool { return published(s.Status) }))

	// Form submissions are immutable: admins inspect, export and delete.
	registrationCRUD := content.NewCRUD("registrations", registrationRepo, logger,
		content.ReadOnly[models.Registration](),
		content.WithSearch(func(r models.Registration) []string {
			return []string{r.Name, r.Email, r.Phone, r.College, r.TokenNumber, string(r.Type)}
		}))
	donationCRUD := content.NewCRUD("donations", donationRepo, logger,
		content.ReadOnly[models.Donation](),
		content.WithSearch(func(d models.Donation) []string {
			return []string{d.Name, d.Email, d.Phone, d.TokenNumber}
		}))
	sponsorshipCRUD := content.NewCRUD("sponsorships", sponsorshipRepo, logger,
		content.ReadOnly[models.Sponsorship](),
		content.WithSearch(func(s models.Sponsorship) []string {
			return []string{s.Name, s.Organization, s.Email}
		}))
	contactCRUD := content.NewCRUD("contacts", contactRepo, logger,
		content.ReadOnly[models.ContactMessage](),
		content.WithSearch(func(m models.ContactMessage) []string {
			return []string{m.Name, m.Email, m.Subject}
		}))

	seedSuperAdmin(ctx, cfg.Admin, userRepo, adminRepo, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	// Public site.
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)

		public.POST("/create-order", registrationHandler.CreateOrder)
		public.POST("/verify-payment", registrationHandler.Verify(models.TypeMP))
		public.POST("/verify-payment-participant", registrationHandler.Verify(models.TypeParticipant))
		public.POST("/verify-payment-gsr", registrationHandler.Verify(models.TypeGlobalSummit))
		public.POST("/verify-donation", donationHandler.Verify)
		public.GET("/registrations/:id", registrationHandler.Get)

		public.POST("/sponsorships", donationHandler.CreateSponsorship)
		public.POST("/contact", donationHandler.CreateContact)

		public.GET("/colleges", collegeHandler.List)
		public.POST("/uploads/:prefix/:id", uploadHandler.Upload)

		blogCRUD.MountPublic(public)
		speakerCRUD.MountPublic(public)
		galleryCRUD.MountPublic(public)
		spotCRUD.MountPublic(public)
		clippingCRUD.MountPublic(public)
		creativeCRUD.MountPublic(public)
		sponsorCRUD.MountPublic(public)
	}

	// Back office.
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWT(jwtService))
	{
		blogCRUD.Mount(admin)
		speakerCRUD.Mount(admin)
		galleryCRUD.Mount(admin)
		spotCRUD.Mount(admin)
		clippingCRUD.Mount(admin)
		creativeCRUD.Mount(admin)
		sponsorCRUD.Mount(admin)
		registrationCRUD.Mount(admin)
		donationCRUD.Mount(admin)
		sponsorshipCRUD.Mount(admin)
		contactCRUD.Mount(admin)

		admin.POST("/colleges", collegeHandler.Create)
		admin.PATCH("/colleges/:id", collegeHandler.Update)
		admin.DELETE("/colleges/:id", collegeHandler.Delete)
		admin.GET("/colleges/export", collegeHandler.Export)

		management := admin.Group("")
		management.Use(middleware.RequireRole(models.RoleMasterAdmin, models.RoleSuperAdmin))
		{
			management.GET("/admins", adminHandler.List)
			management.POST("/admins", adminHandler.Create)
			management.DELETE("/admins/:id", adminHandler.Delete)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// seedSuperAdmin bootstraps the first super admin when the seed variables are
// set and the account does not exist yet.
func seedSuperAdmin(ctx context.Context, seed config.AdminSeedConfig, users *auth.Repository, adminRepo *docstore.Repository[models.Admin], logger *zap.Logger) {
	if seed.Email == "" || seed.Password == "" {
		return
	}
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return
	}

	hash, err := auth.HashPassword(seed.Password)
	if err != nil {
		logger.Error("seed super admin: hash password failed", zap.Error(err))
		return
	}
	user, err := users.Create(ctx, email, hash)
	if err != nil {
		logger.Error("seed super admin: create account failed", zap.Error(err))
		return
	}
	if _, err := adminRepo.Create(ctx, models.Admin{
		UserID: user.ID,
		Name:   seed.Name,
		Email:  email,
		Role:   models.RoleSuperAdmin,
	}); err != nil {
		logger.Error("seed super admin: create profile failed", zap.Error(err))
		if cerr := users.Delete(ctx, user.ID); cerr != nil {
			logger.Error("seed super admin: compensating delete failed", zap.Error(cerr))
		}
		return
	}
	logger.Info("seeded super admin", zap.String("email", email))
}
