package routes

import (
	"FoodiePal-Backend/src/config"
	"FoodiePal-Backend/src/controllers"
	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/middleware"
	"FoodiePal-Backend/src/services/bookings"
	"FoodiePal-Backend/src/services/foods"
	"FoodiePal-Backend/src/services/orders"
	"FoodiePal-Backend/src/services/users"
	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Dependencies คือทุกอย่างที่ main สร้างแล้วส่งเข้ามา
type Dependencies struct {
	Config      *config.Config
	Collections database.Collections
	Blacklist   *utils.TokenBlacklist

	// Queue may be nil when Redis is not configured.
	Queue bookings.TaskEnqueuer
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config
	app := fiber.New(fiber.Config{AppName: "foodiePal"})

	app.Use(recover.New())
	app.Use(logger.New())
	// cookies need an explicit origin list; "*" cannot carry credentials
	allowCredentials := cfg.AllowedOrigins != "*"
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: allowCredentials,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	tokens := utils.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	foodService := foods.NewService(deps.Collections.Foods, foods.Options{
		Timeout:               cfg.StoreTimeout,
		AllowNegativeQuantity: cfg.AllowNegativeQuantity,
	})
	orderService := orders.NewService(deps.Collections.Orders, cfg.StoreTimeout)
	bookingService := bookings.NewService(deps.Collections.Bookings, cfg.StoreTimeout, deps.Queue)
	userService := users.NewService(deps.Collections.Users, cfg.StoreTimeout, cfg.HashUserPasswords)
	cookie := controllers.CookieOptions{TTL: cfg.CookieTTL, Secure: cfg.CookieSecure}

	InitRoutes(app, Handlers{
		Foods:      controllers.NewFoodController(foodService),
		Orders:     controllers.NewOrderController(orderService),
		Bookings:   controllers.NewBookingController(bookingService),
		Users:      controllers.NewUserController(userService),
		Auth:       controllers.NewAuthController(tokens, deps.Blacklist, cookie),
		WriteGuard: writeGuard(cfg, tokens, deps.Blacklist),
	})
	return app
}

// writeGuard returns the token check for mutating routes. Writes are public
// unless REQUIRE_AUTH_FOR_WRITES is set.
func writeGuard(cfg *config.Config, tokens *utils.TokenManager, blacklist *utils.TokenBlacklist) fiber.Handler {
	if cfg.RequireAuthForWrites {
		return middleware.AuthJWT(tokens, blacklist)
	}
	return func(c *fiber.Ctx) error { return c.Next() }
}

type Handlers struct {
	Foods      *controllers.FoodController
	Orders     *controllers.OrderController
	Bookings   *controllers.BookingController
	Users      *controllers.UserController
	Auth       *controllers.AuthController
	WriteGuard fiber.Handler
}

func InitRoutes(app *fiber.App, h Handlers) {
	foodRoutes(app, h.Foods, h.WriteGuard)
	orderRoutes(app, h.Orders, h.WriteGuard)
	bookingRoutes(app, h.Bookings, h.WriteGuard)
	userRoutes(app, h.Users)
	authRoutes(app, h.Auth)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("foodiePal is running")
	})
}
