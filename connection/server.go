package connection

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"taskboard/controller/auth"
	"taskboard/controller/group"
	"taskboard/controller/task"
	"taskboard/controller/user"
	"taskboard/logger"
	"taskboard/middleware"
	"taskboard/services"
)

const shutdownTimeout = 10 * time.Second

// Deps is everything the router needs to serve the API.
type Deps struct {
	Auth     *services.AuthService
	Tasks    *services.TaskService
	Groups   *services.GroupService
	Accounts *services.AccountService
	Tokens   *services.TokenIssuer
	Log      zerolog.Logger

	// AuthRequired puts every task, group and account route behind the access token.
	AuthRequired bool
	CORSOrigins  []string
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(d.Log), corsMiddleware(d.CORSOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	api := router.Group("/api")
	auth.SignUpController(api, d.Auth)
	auth.SignInController(api, d.Auth)
	auth.SessionController(api, d.Tokens)

	resources := api.Group("")
	if d.AuthRequired {
		resources.Use(middleware.AccessTokenMiddleware(d.Tokens))
	}
	task.TaskController(resources, d.Tasks)
	group.GroupController(resources, d.Groups)
	user.UserController(resources, d.Accounts)

	return router
}

// corsMiddleware allows every origin unless origins is set.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowHeaders("Authorization")
	return cors.New(cfg)
}

// StartServer serves router on addr until ctx is cancelled, then shuts down gracefully.
func StartServer(ctx context.Context, addr string, router http.Handler, log zerolog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", addr).Msg("http server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
