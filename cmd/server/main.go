package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/common/uuid"
	"github.com/lverdier/defiparty/internal/handlers/httpapi"
	"github.com/lverdier/defiparty/internal/penalty"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	historyRepo "github.com/lverdier/defiparty/internal/repositories/history"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	archiveService "github.com/lverdier/defiparty/internal/services/archive"
	duoService "github.com/lverdier/defiparty/internal/services/duo"
	gameService "github.com/lverdier/defiparty/internal/services/game"
	lobbyService "github.com/lverdier/defiparty/internal/services/lobby"
)

type config struct {
	bind          string
	port          int
	redisAddr     string
	redisPassword string
	historySize   int
	verbose       bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.historySize < 1 {
		return fmt.Errorf("invalid history size (must be at least 1): %d", c.historySize)
	}
	return nil
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("DEFIPARTY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "defiparty",
		Short:         "Pass-and-play dare game session engine.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: DEFIPARTY_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: DEFIPARTY_PORT)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: DEFIPARTY_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: DEFIPARTY_REDIS_PASSWORD)")
	fs.IntVar(&cfg.historySize, "history-size", historyRepo.DefaultCapacity, "archived games kept locally (env: DEFIPARTY_HISTORY_SIZE)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: DEFIPARTY_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	return cmd
}

func run(ctx context.Context, cfg *config) error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create session repository: %w", err)
	}

	history, err := historyRepo.NewRedis(&historyRepo.Config{
		RedisClient: redisClient,
		Capacity:    cfg.historySize,
	})
	if err != nil {
		return fmt.Errorf("failed to create history repository: %w", err)
	}

	duos, err := duoRepo.NewRedis(&duoRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create duo repository: %w", err)
	}

	clk := clock.New()
	uuidGen := uuid.New()

	lobbySvc, err := lobbyService.New(&lobbyService.Config{
		Clock:         clk,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		return fmt.Errorf("failed to create lobby service: %w", err)
	}

	archiveSvc, err := archiveService.New(&archiveService.Config{
		SessionRepo: sessions,
		HistoryRepo: history,
		Clock:       clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create archive service: %w", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:    sessions,
		DuoRepo:        duos,
		DuoDetector:    duoService.New(),
		ArchiveService: archiveSvc,
		PenaltyPicker:  penalty.New(&penalty.Config{}),
		Clock:          clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	handler, err := httpapi.New(&httpapi.Config{
		LobbyService:   lobbySvc,
		GameService:    gameSvc,
		ArchiveService: archiveSvc,
		SessionRepo:    sessions,
		DuoRepo:        duos,
		Clock:          clk,
		UUIDGenerator:  uuidGen,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	addr := net.JoinHostPort(cfg.bind, fmt.Sprintf("%d", cfg.port))
	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	errs := make(chan error, 1)
	go func() {
		if cfg.verbose {
			log.Printf("listening on %s (redis %s, history capacity %d)", addr, cfg.redisAddr, cfg.historySize)
		} else {
			log.Printf("listening on %s", addr)
		}
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errs:
		return err
	case <-sc:
	case <-ctx.Done():
	}

	log.Println("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("error closing redis client: %v", err)
	}

	return nil
}

func main() {
	cfg := &config{}
	if err := newCmd(cfg).Execute(); err != nil {
		log.Fatal(err)
	}
}
