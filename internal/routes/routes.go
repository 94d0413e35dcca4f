package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/audit"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/auth"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/cache"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/config"
	buyDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/buy"
	catalogDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/catalog"
	gameDomain "github.com/AllanOliveira2022/GameZone-sub000/internal/domain/game"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/handlers"
	infraRepo "github.com/AllanOliveira2022/GameZone-sub000/internal/infra/repository"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/middleware"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/models"
	ucAvaliation "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/avaliation"
	ucBuy "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/buy"
	ucCatalog "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/catalog"
	ucGame "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/game"
	ucUser "github.com/AllanOliveira2022/GameZone-sub000/internal/usecase/user"
	"github.com/AllanOliveira2022/GameZone-sub000/internal/validators"
)

// Deps reúne o que o main monta. GameCache, Covers e Payments são
// opcionais: nil desliga o recurso correspondente.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *slog.Logger

	GameCache gameDomain.Cache
	Covers    gameDomain.CoverStore
	Payments  buyDomain.PaymentGateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		otelgin.Middleware(cfg.ServiceName),
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	buyRepo := infraRepo.NewBuyGormRepository(d.DB)
	gameRepo := infraRepo.NewGameGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	avaliationRepo := infraRepo.NewAvaliationGormRepository(d.DB)

	auditLogger := audit.New(d.DB, d.Log)

	gameCache := d.GameCache
	if gameCache == nil {
		gameCache = cache.Nop{}
	}

	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)

	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES
	// ======================================================
	userSvc := ucUser.NewService(userRepo, hasher, tokens, auditLogger, checkDomain)
	avaliationSvc := ucAvaliation.NewService(avaliationRepo, auditLogger)

	genreSvc := ucCatalog.NewService[models.Genre](infraRepo.NewGenreGormRepository(d.DB), catalogDomain.GenreRules(), gameCache, auditLogger)
	platformSvc := ucCatalog.NewService[models.Platform](infraRepo.NewPlatformGormRepository(d.DB), catalogDomain.PlatformRules(), gameCache, auditLogger)
	developerSvc := ucCatalog.NewService[models.Developer](infraRepo.NewDeveloperGormRepository(d.DB), catalogDomain.DeveloperRules(), gameCache, auditLogger)

	var uploadCoverUC *ucGame.UploadCover
	if d.Covers != nil {
		uploadCoverUC = ucGame.NewUploadCover(gameRepo, d.Covers, gameCache, auditLogger)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userSvc)
	meHandler := handlers.NewMeHandler(userSvc)
	userHandler := handlers.NewUserHandler(userSvc)

	gameHandler := handlers.NewGameHandler(
		ucGame.NewCreateGame(gameRepo, auditLogger),
		ucGame.NewUpdateGame(gameRepo, gameCache, auditLogger),
		ucGame.NewDeleteGame(gameRepo, gameCache, auditLogger),
		ucGame.NewGetGame(gameRepo, gameCache, cfg.CacheTTL),
		ucGame.NewListGames(gameRepo),
		uploadCoverUC,
	)

	buyHandler := handlers.NewBuyHandler(
		ucBuy.NewCreateBuy(buyRepo, auditLogger),
		ucBuy.NewUpdateBuy(buyRepo, auditLogger),
		ucBuy.NewDeleteBuy(buyRepo, auditLogger),
		ucBuy.NewGetBuy(buyRepo),
		ucBuy.NewListBuys(buyRepo),
		ucBuy.NewCheckout(buyRepo, d.Payments, auditLogger),
	)

	avaliationHandler := handlers.NewAvaliationHandler(avaliationSvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireAdmin()

	// ======================================================
	// PÚBLICO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.GET("/games", gameHandler.List)
	r.GET("/games/:id", gameHandler.Get)

	r.GET("/avaliations", avaliationHandler.List)
	r.GET("/avaliations/:id", avaliationHandler.Get)

	registerCatalog(r, "/genres", handlers.NewCatalogHandler(genreSvc), authRequired, adminOnly)
	registerCatalog(r, "/platforms", handlers.NewCatalogHandler(platformSvc), authRequired, adminOnly)
	registerCatalog(r, "/developers", handlers.NewCatalogHandler(developerSvc), authRequired, adminOnly)

	// ======================================================
	// AUTENTICADO
	// ======================================================
	secured := r.Group("/")
	secured.Use(authRequired)
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)

		secured.POST("/avaliations", avaliationHandler.Create)
		secured.PUT("/avaliations/:id", avaliationHandler.Update)
		secured.DELETE("/avaliations/:id", avaliationHandler.Delete)

		// ------------------------------
		// COMPRAS
		// ------------------------------
		secured.POST("/buys", buyHandler.Create)
		secured.GET("/buys", buyHandler.List)
		secured.GET("/buys/:id", buyHandler.Get)
		secured.PUT("/buys/:id", buyHandler.Update)
		secured.DELETE("/buys/:id", buyHandler.Delete)
		if d.Payments != nil {
			secured.POST("/buys/:id/checkout", buyHandler.Checkout)
		}
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/")
	admin.Use(authRequired, adminOnly)
	{
		admin.GET("/users", userHandler.List)
		admin.DELETE("/users/:id", userHandler.Delete)

		admin.POST("/games", gameHandler.Create)
		admin.PUT("/games/:id", gameHandler.Update)
		admin.DELETE("/games/:id", gameHandler.Delete)
		if d.Covers != nil {
			admin.POST("/games/:id/cover", gameHandler.UploadCover)
		}

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}

func registerCatalog[T catalogDomain.Entity](
	r *gin.Engine,
	path string,
	h *handlers.CatalogHandler[T],
	authRequired, adminOnly gin.HandlerFunc,
) {
	r.GET(path, h.List)
	r.GET(path+"/:id", h.Get)
	r.POST(path, authRequired, adminOnly, h.Create)
	r.PUT(path+"/:id", authRequired, adminOnly, h.Update)
	r.DELETE(path+"/:id", authRequired, adminOnly, h.Delete)
}
