package api

import (
	"net/http"
	"time"

	"advisory-server/src/api/controllers"
	handlers "advisory-server/src/api/handlers"
	"advisory-server/src/clients/openai"
	"advisory-server/src/config"
	"advisory-server/src/database"
	"advisory-server/src/repositories"
	"advisory-server/src/services"
	"advisory-server/src/utils"
	redis_utils "advisory-server/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	Logger  *logrus.Logger

	// SnapshotService is exposed so main can schedule periodic regeneration.
	SnapshotService services.SnapshotServiceI
}

func NewServer(cfg *config.Config) (*Server, error) {
	logger := utils.NewLogger(utils.ParseLogLevel(cfg.Service.LogLevel), false, "")

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	var redisHandler *redis_utils.RedisHandler
	if cfg.Databases.Redis.Enabled {
		redisHandler, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
	}

	clientRepo := repositories.NewClientRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	cashFlowRepo := repositories.NewCashFlowRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)

	portfolioService := services.NewPortfolioService()
	snapshotService := services.NewSnapshotService(clientRepo, assetRepo, snapshotRepo, portfolioService)
	contextService := services.NewContextService(clientRepo, assetRepo, cashFlowRepo, goalRepo, portfolioService, redisHandler)

	openAIClient := openai.NewClient(cfg)

	handler := handlers.NewHandler(
		controllers.NewClientsController(clientRepo),
		controllers.NewAssetsController(clientRepo, assetRepo),
		controllers.NewCashFlowController(clientRepo, cashFlowRepo, goalRepo),
		controllers.NewPortfolioController(clientRepo, assetRepo, cashFlowRepo, portfolioService, snapshotService, contextService),
		controllers.NewChatController(clientRepo, chatRepo, contextService, openAIClient),
		utils.NewTokenVerifier(cfg.Auth.Secret),
		logger,
	)

	server := &Server{
		Router:          chi.NewRouter(),
		Handler:         handler,
		Logger:          logger,
		SnapshotService: snapshotService,
	}
	server.InitRoutes()
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/clients", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllClients)
		r.Post("/", s.Handler.CreateClient)
		r.Get("/{id}", s.Handler.GetClientByID)
		r.Put("/{id}", s.Handler.UpdateClient)
		r.Delete("/{id}", s.Handler.DeleteClient)

		r.Get("/{id}/assets", s.Handler.GetClientAssets)
		r.Post("/{id}/assets", s.Handler.CreateAsset)
		r.Put("/{id}/assets/{assetID}", s.Handler.UpdateAsset)
		r.Delete("/{id}/assets/{assetID}", s.Handler.DeleteAsset)

		r.Get("/{id}/incomes", s.Handler.GetIncomeSources)
		r.Post("/{id}/incomes", s.Handler.CreateIncomeSource)
		r.Put("/{id}/incomes/{itemID}", s.Handler.UpdateIncomeSource)
		r.Delete("/{id}/incomes/{itemID}", s.Handler.DeleteIncomeSource)

		r.Get("/{id}/expenses", s.Handler.GetExpenses)
		r.Post("/{id}/expenses", s.Handler.CreateExpense)
		r.Put("/{id}/expenses/{itemID}", s.Handler.UpdateExpense)
		r.Delete("/{id}/expenses/{itemID}", s.Handler.DeleteExpense)

		r.Get("/{id}/goals", s.Handler.GetGoals)
		r.Post("/{id}/goals", s.Handler.CreateGoal)
		r.Delete("/{id}/goals/{itemID}", s.Handler.DeleteGoal)

		r.Get("/{id}/portfolio", s.Handler.GetPortfolioSnapshot)
		r.Get("/{id}/context", s.Handler.GetClientContext)
		r.Get("/{id}/insights", s.Handler.GetInsights)

		r.Post("/{id}/chat", s.Handler.PostChatMessage)
		r.Get("/{id}/chat/{sessionID}", s.Handler.GetChatSession)
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		Handler:      server,
	}
}
