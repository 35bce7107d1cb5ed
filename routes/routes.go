package routes

import (
	"context"
	"net/http"

	"scoup/configs"
	"scoup/controllers"
	"scoup/middlewares"
	"scoup/pkg/idempotency"
	"scoup/pkg/metrics"
	"scoup/repository"
	"scoup/services"
	"scoup/utils"
	"scoup/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto r. rdb may
// be nil, which disables Idempotency-Key support. The event hub stops with ctx.
func RegisterRoutes(ctx context.Context, r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config, logger zerolog.Logger) {
	utils.RegisterValidators()

	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.Metrics())
	r.Use(middlewares.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cafeRepo := repository.NewCafeRepository(db)
	homeRepo := repository.NewHomeCafeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	stampRepo := repository.NewStampRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	eventRepo := repository.NewEventRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// Services
	resolver := services.NewMenuResolver(menuRepo, cfg.MenuPlaceholderImage)
	receiptSvc := services.NewReceiptService(db, userRepo, cafeRepo, stampRepo, orderRepo, resolver)
	cafeSvc := services.NewCafeService(db, userRepo, cafeRepo, homeRepo, stampRepo)
	menuSvc := services.NewMenuService(menuRepo, cafeRepo, orderRepo)
	eventSvc := services.NewEventService(eventRepo, cafeRepo, userRepo)
	couponSvc := services.NewCouponService(db, couponRepo, userRepo, cafeRepo)
	adminSvc := services.NewAdminService(db, userRepo, cafeRepo, homeRepo)

	hub := ws.NewEventHub(eventSvc)
	eventSvc.Publisher = hub
	go hub.Run(ctx)

	var idem *idempotency.Manager
	if rdb != nil {
		idem = idempotency.NewManager(idempotency.NewRedisStore(rdb))
	}

	// Controllers
	homeCtrl := controllers.NewHomeController(cafeSvc, menuSvc, eventSvc)
	shopCtrl := controllers.NewShopController(cafeSvc, menuSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	receiptCtrl := controllers.NewReceiptController(receiptSvc, idem, cfg.IdempotencyTTL)
	adminCtrl := controllers.NewAdminController(adminSvc, eventSvc, couponSvc)

	auth := r.Group("/", middlewares.AuthMiddleware(cfg))

	// Home screen
	home := auth.Group("/home")
	{
		home.GET("", homeCtrl.List)
		home.PATCH("", homeCtrl.Patch)
		home.DELETE("/:shopId", homeCtrl.Remove)
		home.GET("/:shopId/event", homeCtrl.Events)
		home.GET("/:shopId/:orderId", homeCtrl.OrderMenus)
	}

	// Cafes
	shop := auth.Group("/shop")
	{
		shop.GET("", shopCtrl.Search)
		shop.POST("/:shopId", shopCtrl.Add)
		shop.GET("/:shopId/menu", shopCtrl.Menus)
	}

	// My page
	mypage := auth.Group("/mypage")
	{
		mypage.GET("/coupon", couponCtrl.List)
		mypage.POST("/coupon/:couponId", couponCtrl.Redeem)
	}

	auth.POST("/receipt", receiptCtrl.Submit)
	auth.GET("/ws/shop/:shopId/event", hub.HandleWebSocket)

	// Admin (master flag checked in services)
	admin := auth.Group("/admin")
	{
		admin.POST("/shop", adminCtrl.CreateCafe)
		admin.PATCH("/shop/:shopId", adminCtrl.PatchCafe)
		admin.DELETE("/shop/:shopId", adminCtrl.DeleteCafe)
		admin.POST("/shop/:shopId/event", adminCtrl.CreateEvent)
		admin.DELETE("/event/:eventId", adminCtrl.DeleteEvent)
		admin.POST("/coupon", adminCtrl.IssueCoupon)
	}
}
