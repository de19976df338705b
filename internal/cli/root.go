package cli

import (
	"context"
	"fmt"

	"github.com/martijn/chirp/internal/core/repository"
	"github.com/martijn/chirp/internal/core/service"
	"github.com/martijn/chirp/internal/infrastructure/sqlite"
	"github.com/martijn/chirp/internal/logger"
	"github.com/martijn/chirp/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chirp",
	Short: "Chirp - minimal microblogging backend",
	Long: `Chirp is a minimal microblogging backend.

It provides:
- Account registration and bearer-token login
- Ownership-checked create/edit/delete/list of posts
- REST API for clients
- Admin CLI for user management`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Init(cfg.LogLevel)

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/chirp/config.yml)")
}

// initServices initializes all services
func initServices(ctx context.Context) (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	postService := service.NewPostService(postRepo, userRepo)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		AuthService: authService,
		PostService: postService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	AuthService *service.AuthService
	PostService *service.PostService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
