// Package bootstrap assembles the application dependency graph.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/assistant"
	"ats-backend/internal/ats/rubric"
	"ats-backend/internal/documents"
	"ats-backend/internal/llm"
	openai "ats-backend/internal/llm/openai"
	"ats-backend/internal/services/health"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/shared/storage/object"
	localstore "ats-backend/internal/shared/storage/object/local"
	s3store "ats-backend/internal/shared/storage/object/s3"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required")

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	DocumentsRepo    documents.DocumentsRepo
	AnalysesRepo     analyses.Repo
	DocumentsService *documents.Service
	AnalysesService  *analyses.Service
	AssistantService *assistant.Service
	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	AssistantHandler *assistant.Handler
	Health           *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		Health:           app.Health,
		DocumentsHandler: app.DocumentsHandler,
		AnalysisHandler:  app.AnalysisHandler,
		AssistantHandler: app.AssistantHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var docRepo documents.DocumentsRepo
	var analysisRepo analyses.Repo

	if app.DB != nil {
		docRepo = &documents.PGRepo{DB: app.DB}
		analysisRepo = &analyses.PGRepo{DB: app.DB}
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store:           app.Store,
		Repo:            docRepo,
		StorageProvider: app.Config.ObjectStoreType,
	}

	analysisSvc := &analyses.Service{
		Repo:  analysisRepo,
		Docs:  docSvc,
		Vocab: rubric.DefaultVocabulary(),
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(app.Config.OpenAIAPIKey) != "" {
		openaiClient, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}
	assistantSvc := &assistant.Service{LLM: llmClient}

	app.DocumentsRepo = docRepo
	app.AnalysesRepo = analysisRepo
	app.DocumentsService = docSvc
	app.AnalysesService = analysisSvc
	app.AssistantService = assistantSvc
	app.DocumentsHandler = documents.NewHandler(docSvc)
	app.AnalysisHandler = analyses.NewHandler(analysisSvc)
	app.AssistantHandler = assistant.NewHandler(assistantSvc)
	app.Health = health.NewService()

	return nil
}
