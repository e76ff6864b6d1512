package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/handler/auth"
	"github.com/Grefendor/drinks/internal/handler/products"
	"github.com/Grefendor/drinks/internal/handler/purchases"
	"github.com/Grefendor/drinks/internal/handler/users"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/middleware"
	"github.com/Grefendor/drinks/internal/service"
	"github.com/Grefendor/drinks/internal/worker"
)

// Deps 路由需要的相依元件
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Ledger  ledger.Service
	Limiter *service.AttemptLimiter
	Lookup  products.Lookuper
	Workers worker.Pool
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	// PIN 表單下載報表
	e.POST("/export", handler.ExportHandler(d.Ledger, d.Limiter, d.Workers))

	mw := middleware.NewAuth(d.Ledger)
	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache), mw.RequireAuth)

	// 首次設定與登入
	api.POST("/setup", auth.SetupHandler(d.Ledger))
	api.POST("/auth/login", auth.LoginHandler(d.Ledger, d.Limiter))

	// 商品：登入可讀，admin 可寫
	apiProducts := api.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(d.Ledger), mw.RequireAuth)
	apiProducts.GET("/:barcode", products.GetProductHandler(d.Ledger), mw.RequireAuth)
	apiProducts.GET("/lookup/:barcode", products.LookupHandler(d.Lookup), mw.RequireAdmin)
	apiProducts.POST("", products.CreateProductHandler(d.Ledger), mw.RequireAdmin)
	apiProducts.PUT("/:barcode", products.UpdateProductHandler(d.Ledger), mw.RequireAdmin)
	apiProducts.PUT("/:barcode/count", products.UpdateCountHandler(d.Ledger), mw.RequireAdmin)
	apiProducts.DELETE("/:barcode", products.DeleteProductHandler(d.Ledger), mw.RequireAdmin)

	// 消費紀錄
	apiPurchases := api.Group("/purchases", mw.RequireAuth)
	apiPurchases.POST("", purchases.PurchaseHandler(d.Ledger))
	apiPurchases.GET("", purchases.HistoryHandler(d.Ledger))

	// 當前使用者
	apiUsersMe := api.Group("/users/me", mw.RequireAuth)
	apiUsersMe.GET("", users.GetMeHandler(d.Ledger))
	apiUsersMe.PATCH("/pin", users.UpdateMyPinHandler(d.Ledger))
	apiUsersMe.GET("/summary", users.MySummaryHandler(d.Ledger))

	// 管理員專屬 Users 管理
	apiUsers := api.Group("/users", mw.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(d.Ledger))
	apiUsers.POST("", users.CreateUserHandler(d.Ledger))
	apiUsers.PATCH("/:name/pin", users.UpdatePinHandler(d.Ledger))
	apiUsers.DELETE("/:name", users.DeleteUserHandler(d.Ledger))
	apiUsers.DELETE("/id/:id", users.DeleteUserByIDHandler(d.Ledger))

	api.GET("/reports/consumption", handler.ConsumptionHandler(d.Ledger), mw.RequireAdmin)
}
