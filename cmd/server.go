package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crowdbridge/internal/cache"
	"crowdbridge/internal/config"
	"crowdbridge/internal/contract"
	"crowdbridge/internal/core"
	"crowdbridge/internal/db"
	"crowdbridge/internal/http/handler"
	"crowdbridge/internal/http/handler/middleware"
	"crowdbridge/internal/http/payload"
	"crowdbridge/internal/http/server"
	"crowdbridge/internal/ledger"
	"crowdbridge/internal/metrics"
	"crowdbridge/internal/repository"
	"crowdbridge/internal/signer"
	"crowdbridge/pkg/jwt"
	"crowdbridge/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

func Start() error {
	logger := log.NewZapLogger("crowdbridge", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if !common.IsHexAddress(config.ContractAddress) {
		err := fmt.Errorf("invalid contract address %q", config.ContractAddress)
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	builder, err := contract.NewBuilder(common.HexToAddress(config.ContractAddress))
	if err != nil {
		logger.Errorw("failed to load contract interface", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewBridgeRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// projection cache
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warnw("redis not reachable, projection reads fall through to the database", "error", err)
	}
	projections := cache.NewMilestoneCache(redisClient, config.Tunables.ProjectionTTL)

	// ledger node
	client, err := ethclient.Dial(config.LedgerRPCURL)
	if err != nil {
		logger.Errorw("ledger node connection failed", "error", err)
		return err
	}
	defer client.Close()

	limiter := rate.NewLimiter(rate.Limit(config.Tunables.LedgerRPS), config.Tunables.LedgerBurst)
	nodeService := ledger.NewNodeService(client, limiter)

	// signing agent
	signerClient, err := rpc.DialContext(context.Background(), config.SignerURL)
	if err != nil {
		logger.Errorw("signing agent connection failed", "error", err)
		return err
	}
	defer signerClient.Close()
	agent := signer.NewAgent(signerClient)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	recorder := metrics.NewRecorder("crowdbridge")

	bridge := core.NewBridge(
		logger,
		config.Tunables.Settings(),
		builder,
		nodeService,
		agent,
		repo,
		projections,
		jwtService,
		recorder)

	// handler
	bridgeHdlr := handler.NewBridgeHandler(
		logger,
		payload.Decoder{},
		bridge)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux.HandleFunc(handler.OpenSession, bridgeHdlr.HandleOpenSession)
	mux.HandleFunc(handler.GetRole, bridgeHdlr.HandleGetRole)
	mux.HandleFunc(handler.GetAgent, bridgeHdlr.HandleGetAgent)
	mux.HandleFunc(handler.ConnectAgent, bridgeHdlr.HandleConnectAgent)
	mux.HandleFunc(handler.CreateProject, auth.RequireRole(core.RoleEntrepreneur, bridgeHdlr.HandleCreateProject))
	mux.HandleFunc(handler.Invest, auth.RequireRole(core.RoleInvestor, bridgeHdlr.HandleInvest))
	mux.HandleFunc(handler.SubmitEvidence, auth.RequireRole(core.RoleEntrepreneur, bridgeHdlr.HandleSubmitEvidence))
	mux.HandleFunc(handler.Fingerprint, bridgeHdlr.HandleFingerprint)
	mux.HandleFunc(handler.VerifyMilestone, auth.RequireRole(core.RoleVerifier, bridgeHdlr.HandleVerifyMilestone))
	mux.HandleFunc(handler.GetProjectCount, bridgeHdlr.HandleGetProjectCount)
	mux.HandleFunc(handler.GetRaised, bridgeHdlr.HandleGetRaised)
	mux.HandleFunc(handler.GetContribution, bridgeHdlr.HandleGetContribution)
	mux.HandleFunc(handler.GetMilestones, bridgeHdlr.HandleGetMilestones)
	mux.HandleFunc(handler.GetSubmission, bridgeHdlr.HandleGetSubmission)
	mux.Handle("GET /metrics", recorder.Handler())

	logger.Infow("bridge configured",
		"contract", builder.Address().Hex(),
		"ledger", config.LedgerRPCURL,
		"signer", config.SignerURL,
		"pollAttempts", config.Tunables.PollAttempts,
		"pollInterval", config.Tunables.PollInterval)

	srv := server.NewHTTP(logger, hdlr, config.Port, config.Tunables.ResponseTimeout())
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
