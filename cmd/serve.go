package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"taskboard/config"
	"taskboard/connection"
	"taskboard/logger"
	"taskboard/repository"
	"taskboard/services"
)

var (
	configPath string
	inMemory   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the HTTP API backed by Firestore and Firebase Authentication, or by an in-memory store with --memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogLevel, cfg.LogPretty)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		stores, closeStores, err := openStores(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStores()

		gin.SetMode(gin.ReleaseMode)
		router := connection.NewRouter(buildDeps(cfg, stores, log))
		return connection.StartServer(ctx, cfg.Addr(), router, log)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "optional YAML configuration file")
	serveCmd.Flags().BoolVar(&inMemory, "memory", false, "use an in-memory store instead of Firebase")
	rootCmd.AddCommand(serveCmd)
}

type stores struct {
	accounts services.AccountStore
	identity services.IdentityProvider
	tasks    services.TaskStore
	groups   services.GroupStore
}

func openStores(ctx context.Context, cfg config.Config, log zerolog.Logger) (stores, func(), error) {
	if inMemory {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		mem := repository.NewMemory()
		return stores{accounts: mem, identity: mem, tasks: mem, groups: mem}, func() {}, nil
	}

	fb, err := connection.FBConnection(ctx, cfg.Firebase)
	if err != nil {
		return stores{}, nil, err
	}
	log.Info().Str("project", cfg.Firebase.ProjectID).Msg("firestore connection successful")

	fs := repository.NewFirestore(fb.Firestore)
	closeFn := func() {
		if err := fb.Close(); err != nil {
			log.Error().Err(err).Msg("closing firestore client")
		}
	}
	return stores{
		accounts: fs,
		identity: repository.NewFirebaseIdentity(fb.Auth),
		tasks:    fs,
		groups:   fs,
	}, closeFn, nil
}

func buildDeps(cfg config.Config, s stores, log zerolog.Logger) connection.Deps {
	tokens := services.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	return connection.Deps{
		Auth:         services.NewAuthService(s.accounts, s.identity, tokens, log),
		Tasks:        services.NewTaskService(s.tasks),
		Groups:       services.NewGroupService(s.groups),
		Accounts:     services.NewAccountService(s.accounts),
		Tokens:       tokens,
		Log:          log,
		AuthRequired: cfg.AuthRequired,
		CORSOrigins:  cfg.CORSOrigins,
	}
}
