package router

import (
	"github.com/cimile-club/lineup-api/internal/auth"
	"github.com/cimile-club/lineup-api/internal/config"
	"github.com/cimile-club/lineup-api/internal/export"
	"github.com/cimile-club/lineup-api/internal/game"
	"github.com/cimile-club/lineup-api/internal/lineup"
	"github.com/cimile-club/lineup-api/internal/meta"
	"github.com/cimile-club/lineup-api/internal/player"
	"github.com/cimile-club/lineup-api/internal/shared/authz"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/middleware"
	"github.com/cimile-club/lineup-api/internal/shared/token"
	"github.com/cimile-club/lineup-api/internal/team"
	"github.com/cimile-club/lineup-api/internal/venue"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	userRepository := auth.NewUserRepository()
	teamRepository := team.NewTeamRepository()
	venueRepository := venue.NewVenueRepository()
	playerRepository := player.NewPlayerRepository()
	gameRepository := game.NewGameRepository()
	lineupRepository := lineup.NewLineupRepository()
	exportRepository := export.NewExportRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(db.DB, userRepository, tokenManager)
	teamService := team.NewTeamService(db.DB, teamRepository)
	venueService := venue.NewVenueService(db.DB, venueRepository)
	playerService := player.NewPlayerService(db.DB, playerRepository)
	gameService := game.NewGameService(db.DB, gameRepository)
	lineupService := lineup.NewLineupService(db.DB, lineupRepository)
	exportService := export.NewExportService(db.DB, exportRepository, cfg.Club)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	teamHandler := team.NewTeamHandler(teamService)
	venueHandler := venue.NewVenueHandler(venueService)
	playerHandler := player.NewPlayerHandler(playerService)
	gameHandler := game.NewGameHandler(gameService)
	lineupHandler := lineup.NewLineupHandler(lineupService)
	exportHandler := export.NewExportHandler(exportService)

	authenticated := middleware.JWT(tokenManager, db.DB)
	manageRoster := middleware.RequireCapability(authz.ManageRoster)
	manageLineup := middleware.RequireCapability(authz.ManageLineup)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/register", authHandler.Register)
		authV1.GET("/me", authenticated, authHandler.Me)
	}

	// 명단/일정 엔티티: 조회는 공개, 변경은 총무 권한
	teamV1 := router.Group("/api/v1/teams")
	{
		teamV1.GET("", teamHandler.List)
		teamV1.GET("/:id", teamHandler.Get)
		teamV1.POST("", authenticated, manageRoster, teamHandler.Create)
		teamV1.PATCH("/:id", authenticated, manageRoster, teamHandler.Update)
		teamV1.DELETE("/:id", authenticated, manageRoster, teamHandler.Delete)
	}

	venueV1 := router.Group("/api/v1/venues")
	{
		venueV1.GET("", venueHandler.List)
		venueV1.GET("/:id", venueHandler.Get)
		venueV1.POST("", authenticated, manageRoster, venueHandler.Create)
		venueV1.PATCH("/:id", authenticated, manageRoster, venueHandler.Update)
		venueV1.DELETE("/:id", authenticated, manageRoster, venueHandler.Delete)
	}

	playerV1 := router.Group("/api/v1/players")
	{
		playerV1.GET("", playerHandler.List)
		playerV1.GET("/:id", playerHandler.Get)
		playerV1.POST("", authenticated, manageRoster, playerHandler.Create)
		playerV1.PATCH("/:id", authenticated, manageRoster, playerHandler.Update)
		playerV1.DELETE("/:id", authenticated, manageRoster, playerHandler.Delete)
	}

	gameV1 := router.Group("/api/v1/games")
	{
		gameV1.GET("", gameHandler.List)
		gameV1.GET("/:id", gameHandler.Get)
		gameV1.POST("", authenticated, manageRoster, gameHandler.Create)
		gameV1.PATCH("/:id", authenticated, manageRoster, gameHandler.Update)
		gameV1.DELETE("/:id", authenticated, manageRoster, gameHandler.Delete)
	}

	// 라인업 구성: 변경은 감독 권한
	lineupV1 := router.Group("/api/v1/lineups")
	{
		lineupV1.GET("", lineupHandler.List)
		lineupV1.GET("/:id", lineupHandler.Get)
		lineupV1.GET("/:id/attendance", lineupHandler.GetAttendance)
		lineupV1.POST("", authenticated, manageLineup, lineupHandler.Create)
		lineupV1.PATCH("/:id", authenticated, manageLineup, lineupHandler.Update)
		lineupV1.DELETE("/:id", authenticated, manageLineup, lineupHandler.Delete)
		lineupV1.POST("/:id/players", authenticated, manageLineup, lineupHandler.AssignPlayer)
		lineupV1.PATCH("/:id/players/:lineupPlayerId/position", authenticated, manageLineup, lineupHandler.UpdatePosition)
		lineupV1.DELETE("/:id/players/:lineupPlayerId", authenticated, manageLineup, lineupHandler.RemovePlayer)
		lineupV1.POST("/:id/copy", authenticated, manageLineup, lineupHandler.Copy)
		lineupV1.PUT("/:id/attendance", authenticated, manageLineup, lineupHandler.SetAttendance)
	}

	// 출력물: 로그인한 사용자 누구나
	exportV1 := router.Group("/api/v1/exports")
	exportV1.Use(authenticated)
	{
		exportV1.GET("/lineups/:id/spreadsheet", exportHandler.LineupSpreadsheet)
		exportV1.GET("/lineups/:id/pdf", exportHandler.LineupPDF)
		exportV1.GET("/players/spreadsheet", exportHandler.RosterSpreadsheet)
	}
}
