package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhewson/rolematch/internal/config"
	"github.com/mhewson/rolematch/internal/server"
	"github.com/mhewson/rolematch/pkg/clients/sheetsclient"
	"github.com/mhewson/rolematch/pkg/core/matching"
	"github.com/mhewson/rolematch/pkg/core/questions"
	"github.com/mhewson/rolematch/pkg/core/services"
	"github.com/mhewson/rolematch/pkg/links"
	"github.com/mhewson/rolematch/pkg/postgres"
	"github.com/mhewson/rolematch/pkg/roles"
	"github.com/mhewson/rolematch/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	database *postgres.DB
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env        string
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rolematch",
		Short: "Role Match CLI - Match volunteers to competition roles",
		Long:  `A CLI tool for running the volunteer role matching service, scoring stored assessments, and managing role data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.database != nil {
					app.database.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: rolematch_config.yaml)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(validateDataCmd())
	rootCmd.AddCommand(questionsCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the database connection
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	// Initialize logger
	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	// .env carries secrets like ADMIN_TOKEN, missing file is fine
	if err := godotenv.Load(); err != nil {
		app.logger.Debug("No .env file loaded", zap.Error(err))
	}

	// Load configuration
	app.logger.Info("Loading configuration")
	if configPath != "" {
		app.cfg, err = config.LoadFromPath(configPath)
	} else {
		app.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	// Connect to the database and apply pending migrations
	app.logger.Info("Connecting to database")
	app.database, err = postgres.NewDB(app.ctx, app.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := app.database.RunMigrations(app.ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.logger.Info("Database initialized successfully")

	return nil
}

// scoringOptions builds the engine options shared by serve, score, and export
func scoringOptions() (services.ScoringOptions, error) {
	opts := services.ScoringOptions{
		StudentStatus:        app.cfg.AssumeStudent,
		EliminateUnqualified: app.cfg.EliminateUnqualified,
	}

	if len(app.cfg.Calendars) > 0 {
		calendars, err := app.cfg.EventCalendars()
		if err != nil {
			return opts, err
		}
		opts.EngineOptions = append(opts.EngineOptions, matching.WithCalendars(calendars))
	}

	return opts, nil
}

// Command definitions

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assessment HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := roles.NewCatalog(app.cfg.MatchDataPath)
			if err != nil {
				return fmt.Errorf("failed to load role data: %w", err)
			}
			app.logger.Info("Role data loaded", zap.Int("roles", catalog.Len()))

			var linkStore *links.Store
			if app.cfg.RoleLinksPath != "" {
				linkStore, err = links.NewStore(app.cfg.RoleLinksPath)
				if err != nil {
					return fmt.Errorf("failed to load role links: %w", err)
				}
				app.logger.Info("Role links loaded", zap.Int("roles", linkStore.Len()))
			}

			scoring, err := scoringOptions()
			if err != nil {
				return err
			}

			adminToken := os.Getenv("ADMIN_TOKEN")
			if adminToken == "" {
				app.logger.Warn("ADMIN_TOKEN not set, admin endpoints are disabled")
			}

			srv := server.New(app.logger, server.Options{
				Store:      app.database,
				Catalog:    catalog,
				Links:      linkStore,
				Scoring:    scoring,
				UploadsDir: app.cfg.UploadsDir,
				AdminToken: adminToken,
			})

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-quit
				app.logger.Info("Shutting down server")
				if err := srv.Shutdown(); err != nil {
					app.logger.Error("Server shutdown failed", zap.Error(err))
				}
			}()

			return srv.Listen(app.cfg.ListenAddr)
		},
	}
}

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <session_id>",
		Short: "Score a stored session and print its role matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]

			catalog, err := roles.NewCatalog(app.cfg.MatchDataPath)
			if err != nil {
				return fmt.Errorf("failed to load role data: %w", err)
			}

			scoring, err := scoringOptions()
			if err != nil {
				return err
			}

			result, err := services.SubmitAssessment(app.ctx, app.database, catalog, scoring, app.logger, sessionID)
			if err != nil {
				return err
			}

			fmt.Printf("\nSession %s scored against %d roles\n\n", result.SessionID, catalog.Len())
			fmt.Printf("Best fit:  %s\n", result.Results.BestFit)
			fmt.Printf("Next best: %s\n", result.Results.NextBest)
			fmt.Printf("Remaining: %d\n", result.RemainingCount)
			if len(result.Eliminated) > 0 {
				fmt.Printf("Eliminated: %s\n", strings.Join(result.Eliminated, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <session_id>",
		Short: "Export a session's answers and matches to the results spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]

			if app.cfg.ExportSheetID == "" || app.cfg.ExportSheetTab == "" {
				return fmt.Errorf("exportSheetID and exportSheetTab must be set in the config")
			}

			// OAuth flow only runs for export, other commands never need it
			oauthCfg, err := config.LoadOAuthClientWithEnv(env)
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			app.logger.Info("Initializing sheets client")
			client, err := sheetsclient.NewClient(app.ctx, oauthCfg)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			export, err := buildSessionExport(sessionID)
			if err != nil {
				return err
			}

			if err := client.ExportSession(app.cfg.ExportSheetID, app.cfg.ExportSheetTab, export); err != nil {
				return fmt.Errorf("failed to export session: %w", err)
			}

			app.logger.Info("Session exported",
				zap.String("session_id", sessionID),
				zap.String("spreadsheet_id", app.cfg.ExportSheetID),
			)
			fmt.Printf("\n✓ Session %s exported to sheet %s (%s)\n\n",
				sessionID, app.cfg.ExportSheetID, app.cfg.ExportSheetTab)

			return nil
		},
	}
}

// buildSessionExport re-scores a stored session without completing it again
// and flattens the outcome for the spreadsheet
func buildSessionExport(sessionID string) (*sheetsclient.SessionExport, error) {
	session, err := app.database.GetSession(app.ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	answers, err := app.database.GetAnswers(app.ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("session %s has no answers", sessionID)
	}

	catalog, err := roles.NewCatalog(app.cfg.MatchDataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load role data: %w", err)
	}

	scoring, err := scoringOptions()
	if err != nil {
		return nil, err
	}

	engine, err := matching.New(catalog.Records(), scoring.StudentStatus, scoring.EngineOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build matching engine: %w", err)
	}

	processOpts := matching.ProcessOptions{
		CommitmentType: scoring.CommitmentType,
		Eliminate:      scoring.EliminateUnqualified,
	}

	export := &sheetsclient.SessionExport{
		SessionID:   sessionID,
		CompletedAt: session.CreatedAt,
	}

	for _, answer := range answers {
		if err := services.ScoreAnswer(engine, answer.QuestionID, answer.Answer, processOpts); err != nil {
			return nil, fmt.Errorf("failed to score question %d: %w", answer.QuestionID, err)
		}
		export.Answers = append(export.Answers, sheetsclient.AnswerExport{
			Question: answer.Question,
			Answer:   answer.Answer,
		})
	}

	results := engine.TopMatches(matching.DefaultTopMatches)
	export.BestFit = splitRoleList(results.BestFit)
	export.NextBest = splitRoleList(results.NextBest)

	return export, nil
}

// splitRoleList undoes the comma-joined result format, dropping the "None"
// placeholder
func splitRoleList(joined string) []string {
	if joined == "" || joined == "None" {
		return nil
	}

	parts := strings.Split(joined, ", ")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func validateDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-data [path]",
		Short: "Validate a role data CSV (defaults to the configured file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.cfg.MatchDataPath
			if len(args) > 0 {
				path = args[0]
			}

			records, err := roles.Load(path)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ %s: %d roles\n\n", path, len(records))
			for i, record := range records {
				fmt.Printf("  %2d. %s\n", i+1, record.Name)
			}
			fmt.Println()

			if app.cfg.RoleLinksPath != "" {
				store, err := links.NewStore(app.cfg.RoleLinksPath)
				if err != nil {
					return err
				}

				missing := 0
				for _, record := range records {
					if _, ok := store.Lookup(record.Name); !ok {
						fmt.Printf("  ⚠ no links for role %q\n", record.Name)
						missing++
					}
				}
				if missing == 0 {
					fmt.Printf("✓ all roles have link entries\n")
				}
				fmt.Println()
			}

			return nil
		},
	}
}

func questionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("\n%d assessment questions:\n\n", questions.Total())
			for _, q := range questions.All() {
				fmt.Printf("  %2d. [%s] %s\n", q.ID, q.Type, q.Text)
				if len(q.Options) > 0 {
					fmt.Printf("      options: %s\n", strings.Join(q.Options, " | "))
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// initApp already ran the migrations, this just reports success
			fmt.Println("✓ Database schema is up to date")
			return nil
		},
	}
}
