package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/alert"
	"github.com/astro-attendance/attendance-bot/internal/config"
	"github.com/astro-attendance/attendance-bot/internal/database"
	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/registry"
	"github.com/astro-attendance/attendance-bot/internal/domain/service"
	"github.com/astro-attendance/attendance-bot/internal/gsheets"
	"github.com/astro-attendance/attendance-bot/internal/handlers"
	"github.com/astro-attendance/attendance-bot/internal/telegram"
	"github.com/astro-attendance/attendance-bot/migrator/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

const (
	appName        = "attendance-bot"
	updatesTimeout  = 60
	shutdownTimeout = 5 * time.Second
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	tenants, err := registry.NewTenants(cfg.Tenants)
	if err != nil {
		log.Fatalf("Failed to load tenants: %v", err)
	}
	log.Printf("Loaded %d tenants", len(tenants.All()))

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("Failed to connect to Telegram: %v", err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	sheets, err := gsheets.New(ctx, cfg.GSheetsCredsPath)
	if err != nil {
		log.Fatalf("Failed to connect to Google Sheets: %v", err)
	}

	alerter, closeAlerts := newAlerter(cfg)
	defer closeAlerts()

	instance := service.NewInstance(service.Dependencies{
		Tenants:     tenants,
		Polls:       registry.NewPolls(),
		Chat:        telegram.New(bot),
		Sheets:      sheets,
		DataManager: database.NewInstance(db),
		Alerter:     alerter,
		Options:     cfg.Options,
		AdminID:     cfg.AdminID,
		Location:    cfg.Location,
	})

	instance.Scheduler.Start()
	defer instance.Scheduler.Stop()

	server := startHealthServer(cfg.Port)
	defer stopHealthServer(server, shutdownTimeout)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updatesTimeout
	u.AllowedUpdates = handlers.AllowedUpdates
	updates := bot.GetUpdatesChan(u)

	log.Println("Listening for updates...")
	handlers.New(instance.Attendance, bot.Self.UserName).Run(ctx, updates)

	log.Println("Shutting down...")
	bot.StopReceivingUpdates()
}

// newAlerter fans alerts out to every configured destination. The process log always gets them.
func newAlerter(cfg *config.Config) (contract.Alerter, func()) {
	alerters := alert.Multi{alert.Log{}}
	closeFn := func() {}

	if cfg.SlackAlertWebhookURL != "" {
		alerters = append(alerters, alert.NewSlack(cfg.SlackAlertWebhookURL, appName))
		log.Println("Slack alerts enabled")
	}

	if cfg.RollbarToken != "" {
		r, client := alert.NewRollbar(cfg.RollbarToken, cfg.Env, version)
		alerters = append(alerters, r)
		closeFn = func() {
			client.Wait()
			client.Close()
		}
		log.Println("Rollbar alerts enabled")
	}

	return alerters, closeFn
}

func healthHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	return mux
}

func startHealthServer(port string) *http.Server {
	server := &http.Server{Addr: ":" + port, Handler: healthHandler()}
	go func() {
		log.Printf("Health endpoint listening on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	return server
}

// stopHealthServer waits up to timeout for in-flight requests and logs a failed shutdown
func stopHealthServer(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Failed to stop health server: %v", err)
		return err
	}
	return nil
}
