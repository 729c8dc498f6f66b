package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/adapters/http/handler"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/adapters/repository/postgres"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/attendance"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/completion"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/operator"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/pullqueue"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/core/worklog"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/config"
	pg "github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/db/postgres"
	"github.com/sperocriacao-hub/brunswick.pt-sub001/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "", log.LstdFlags|log.LUTC)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	operatorSvc := operator.NewService(postgres.NewOperatorRepository(dbPool))
	attendanceSvc := attendance.NewService(postgres.NewAttendanceRepository(dbPool), nil, cfg.Plant.Location)
	worklogSvc := worklog.NewService(
		postgres.NewSegmentRepository(dbPool),
		postgres.NewPauseRepository(dbPool),
		nil,
		txManager,
	)
	completionSvc := completion.NewService(postgres.NewCompletionRepository(dbPool), nil)
	queueSvc := pullqueue.NewService(postgres.NewPullQueueRepository(dbPool))

	mux := http.NewServeMux()
	handler.NewTerminalHandler(handler.Dependencies{
		Logger:      logger,
		Operators:   operatorSvc,
		Attendance:  attendanceSvc,
		Worklog:     worklogSvc,
		Completions: completionSvc,
		Queue:       queueSvc,
	}).Register(mux)
	handler.NewHealthHandler(logger, dbPool).Register(mux)

	httpServer := server.New(cfg.Server.ListenAddr, logger, mux, cfg.Server.ShutdownTimeout)

	logger.Printf("shop-floor event endpoint listening on %s (plant tz %s)", cfg.Server.ListenAddr, cfg.Plant.Timezone)

	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
