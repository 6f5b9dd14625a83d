package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/lensakita/studio_be/internal/config"
	"github.com/lensakita/studio_be/internal/db"
	"github.com/lensakita/studio_be/internal/handlers"
	"github.com/lensakita/studio_be/internal/heartbeat"
	"github.com/lensakita/studio_be/internal/middleware"
	"github.com/lensakita/studio_be/internal/models"
	"github.com/lensakita/studio_be/internal/realtime"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	rdb := realtime.NewRedis()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Redis not reachable:", err)
	}

	hub := realtime.NewHub()
	go hub.Run()
	go realtime.RunBridge(context.Background(), rdb, hub)

	pub := &realtime.Publisher{Hub: hub, RDB: rdb}

	if err := gdb.AutoMigrate(
		&models.User{}, &models.Profile{},
		&models.Booking{}, &models.Photo{}, &models.Testimonial{},
		&models.HeroStat{}, &models.Achievement{}, &models.Skill{},
		&models.AboutService{}, &models.Content{},
		&models.NewsletterSubscriber{},
		&models.QuizResult{}, &models.PriceCalculatorLog{},
		&models.Invoice{},
		&models.ClientGallery{}, &models.GalleryPhoto{},
	); err != nil {
		log.Fatal(err)
	}

	// Keep the DB connection warm; the hosted plan idles out otherwise.
	hb := heartbeat.New(func() error {
		var n int64
		return gdb.Model(&models.Profile{}).Count(&n).Error
	}, 5*time.Minute, nil, nil)
	hb.Start()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Options("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Static("/uploads", "./uploads")

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		DB:              gdb,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}

	bookingH := handlers.NewBookingHandler(gdb, pub, cfg.StudioWhatsApp)
	photoH := handlers.NewPhotoHandler(gdb, pub, "./uploads", os.Getenv("APP_BASE_URL"))
	aboutH := handlers.NewAboutHandler(gdb, pub)
	testimonialH := handlers.NewTestimonialHandler(gdb, pub)
	newsletterH := handlers.NewNewsletterHandler(gdb, pub)
	quizH := handlers.NewQuizHandler(gdb, pub)
	pricingH := handlers.NewPricingHandler(gdb, pub)
	invoiceH := handlers.NewInvoiceHandler(gdb, pub)
	galleryH := handlers.NewGalleryHandler(gdb, pub, cfg.ShareTokenKey)
	profileH := handlers.NewProfileHandler(gdb)
	wsH := handlers.NewWSHandler(hub)

	api := app.Group("/api")

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)

	api.Post("/bookings", bookingH.Create)
	api.Get("/photos", photoH.ListPublic)
	api.Get("/photos/:id", photoH.GetOne)
	api.Post("/photos/:id/engagement", photoH.Engagement)
	api.Get("/testimonials", testimonialH.ListPublic)
	api.Get("/about/hero-stats", aboutH.GetHeroStats)
	api.Get("/about/achievements", aboutH.GetAchievements)
	api.Get("/about/skills", aboutH.GetSkills)
	api.Get("/about/services", aboutH.GetServices)
	api.Get("/content/:key", aboutH.GetContent)
	api.Post("/newsletter/subscribe", newsletterH.Subscribe)
	api.Post("/quiz/submit", quizH.Submit)
	api.Post("/pricing/estimate", pricingH.Estimate)
	api.Get("/galleries/shared/:token", galleryH.GetShared)

	// protected (JWT cookie)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)
	protected.Get("/profile", profileH.Get)
	protected.Patch("/profile", profileH.Update)

	// admin only
	admin := protected.Group("/admin", middleware.RequireRoles("admin"))

	admin.Get("/bookings", bookingH.List)
	admin.Get("/bookings/:id", bookingH.GetOne)
	admin.Patch("/bookings/:id", bookingH.Update)
	admin.Delete("/bookings/:id", bookingH.Delete)

	admin.Post("/photos", photoH.Create)
	admin.Post("/photos/upload", photoH.Upload)
	admin.Put("/photos/:id", photoH.Update)
	admin.Delete("/photos/:id", photoH.Delete)

	admin.Post("/testimonials", testimonialH.Create)
	admin.Put("/testimonials/:id", testimonialH.Update)

	admin.Post("/hero-stats", aboutH.CreateHeroStat)
	admin.Put("/hero-stats/:id", aboutH.UpdateHeroStat)
	admin.Delete("/hero-stats/:id", aboutH.DeleteHeroStat)
	admin.Post("/achievements", aboutH.CreateAchievement)
	admin.Put("/achievements/:id", aboutH.UpdateAchievement)
	admin.Delete("/achievements/:id", aboutH.DeleteAchievement)
	admin.Post("/skills", aboutH.CreateSkill)
	admin.Put("/skills/:id", aboutH.UpdateSkill)
	admin.Delete("/skills/:id", aboutH.DeleteSkill)
	admin.Post("/services", aboutH.CreateService)
	admin.Put("/services/:id", aboutH.UpdateService)
	admin.Delete("/services/:id", aboutH.DeleteService)
	admin.Put("/content", aboutH.UpsertContent)

	admin.Get("/newsletter", newsletterH.List)
	admin.Get("/quiz-results", quizH.List)
	admin.Get("/pricing-logs", pricingH.ListLogs)

	admin.Post("/invoices", invoiceH.Create)
	admin.Get("/invoices", invoiceH.List)
	admin.Patch("/invoices/:id", invoiceH.Update)
	admin.Delete("/invoices/:id", invoiceH.Delete)

	admin.Post("/galleries", galleryH.Create)
	admin.Get("/galleries", galleryH.List)
	admin.Post("/galleries/:id/photos", galleryH.AddPhoto)
	admin.Delete("/galleries/:id", galleryH.Delete)

	// change feed (no JWT middleware; feed carries no private data)
	app.Get("/ws/changes", websocket.New(wsH.ChangeFeed))

	// log.Fatal would skip deferred calls, so stop the heartbeat explicitly.
	listenErr := app.Listen(":" + cfg.AppPort)
	hb.Stop()
	if listenErr != nil {
		log.Fatal(listenErr)
	}
}
