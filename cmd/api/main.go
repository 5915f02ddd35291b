package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wingman/logbook/internal/config"
	"github.com/wingman/logbook/internal/handlers"
	"github.com/wingman/logbook/internal/repository"
	"github.com/wingman/logbook/internal/services"
	xhttp "github.com/wingman/logbook/pkg/http"
	"github.com/wingman/logbook/pkg/logger"
	"github.com/wingman/logbook/pkg/pg"
	"github.com/wingman/logbook/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	s := xhttp.NewServer(serverOption())
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(time.Second * 5))
	s.Use(xhttp.CORSMiddleware(config.Get().HttpCorsAllowOrigin))
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(xhttp.RecoverMiddleware)
	s.Router = xhttp.CreateDefaultRouter()

	readConf := pg.Config{
		User:     config.Get().PostgresReadUser,
		Host:     config.Get().PostgresReadHost,
		Port:     config.Get().PostgresReadPort,
		Password: config.Get().PostgresReadPassword,
		Database: config.Get().PostgresReadDatabase,
	}
	writeConf := pg.Config{
		User:     config.Get().PostgresWriteUser,
		Host:     config.Get().PostgresWriteHost,
		Port:     config.Get().PostgresWritePort,
		Password: config.Get().PostgresWritePassword,
		Database: config.Get().PostgresWriteDatabase,
	}

	pgDebug := false
	if config.Get().AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	if config.Get().AppDebugMetricsAddr != "" {
		host, _ := os.Hostname()
		if err := prom.Create(host, config.Get().AppEnv, config.Get().PromNamespace); err != nil {
			logger.Error("failed creating metrics", "error", err)
			return
		}
		prom.ListenAndServe(config.Get().AppDebugMetricsAddr, config.Get().AppDebugMetricsURI)
	}

	customerRepo := repository.NewCustomerRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// services
	ledgerService := services.NewLedgerService(customerRepo, transactionRepo, auditRepo)
	healthService := services.NewHealthService()

	// v1 handlers
	customerHandler := handlers.NewCustomerHandler(ledgerService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	auditHandler := handlers.NewAuditHandler(ledgerService)
	healthHandler := handlers.NewHealthHandler(healthService)

	g := s.Router.Group("/api/v1")
	handlers.RegisterCustomerRoutes(g, customerHandler)
	handlers.RegisterTransactionRoutes(g, transactionHandler)
	handlers.RegisterAuditRoutes(g, auditHandler)
	handlers.RegisterHealthRoutes(g, healthHandler)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var err = s.ListenAndServe(config.Get().HttpListenAddr)
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}()

	<-c
	s.Shutdown()
}

// serverOption overlays the env-configured timeouts on the defaults.
func serverOption() xhttp.ServerOption {
	opt := xhttp.DefaultServerOption
	if t := config.Get().HttpServerReadTimeout; t > 0 {
		opt.ReadTimeout = time.Duration(t) * time.Millisecond
	}
	if t := config.Get().HttpServerWriteTimeout; t > 0 {
		opt.WriteTimeout = time.Duration(t) * time.Millisecond
	}
	return opt
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error" + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
