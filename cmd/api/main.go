package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "recruiter-assistant/docs" // Swagger docs
	"recruiter-assistant/internal/api"
	"recruiter-assistant/internal/config"
	"recruiter-assistant/internal/cv"
	"recruiter-assistant/internal/gsuite"
	"recruiter-assistant/internal/mailer"
	"recruiter-assistant/internal/scan"
	"recruiter-assistant/internal/storage"
)

// @title Recruiter Assistant API
// @version 1.0
// @description Resume intake: scan a Drive folder, keep a reconciled candidate list and email candidates

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Connecting to database...")
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open:", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("db migrate:", err)
	}
	log.Println("Database connected successfully!")

	history, err := storage.NewHistoryStore(cfg.HistoryFile)
	if err != nil {
		log.Fatal("history:", err)
	}

	opts := api.Options{
		History:     history,
		FromEmail:   cfg.FromEmail,
		CompanyName: cfg.CompanyName,
		ScanLimit:   cfg.ScanLimit,
		EmailLimit:  cfg.EmailLimit,
	}

	// Google integrations are optional; their endpoints answer 503 without them.
	if clientOpt, err := gsuite.ClientOption(ctx, cfg.GoogleCredentialsFile); err != nil {
		log.Printf("Warning: Google Drive/Sheets disabled: %v", err)
	} else {
		driveSvc, err := gsuite.NewDriveService(ctx, clientOpt)
		if err != nil {
			log.Fatal("drive:", err)
		}
		sheetsSvc, err := gsuite.NewSheetsService(ctx, clientOpt)
		if err != nil {
			log.Fatal("sheets:", err)
		}

		scanner := cv.NewScanner(cv.NewDocReader(), cfg.ScanWorkers)
		opts.Scan = scan.NewService(gsuite.NewDriveFolder(driveSvc, cfg.ScanTmpDir), scanner, db)
		opts.Sheets = gsuite.NewIntakeSheets(sheetsSvc)
	}

	if cfg.GmailUser == "" {
		log.Println("Warning: GMAIL_USER not set, email sending disabled")
	} else if gmailSvc, err := mailer.NewGmailService(ctx, cfg.GoogleCredentialsFile, cfg.GmailUser); err != nil {
		log.Printf("Warning: Gmail disabled: %v", err)
	} else {
		opts.Mailer = mailer.NewGmailSender(gmailSvc)
	}

	apiSrv := api.NewAPI(db, opts)
	router := api.NewRouter(apiSrv, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // folder scans download and parse every file
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
