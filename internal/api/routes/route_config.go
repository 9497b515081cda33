package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/macromate/macromate-backend/internal/api/handlers"
	"github.com/macromate/macromate-backend/internal/middleware"
)

type Config struct {
	App             *fiber.App
	MacroHandler    handlers.MacroHandler
	FavoriteHandler handlers.FavoriteHandler
	UserHandler     handlers.UserHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Health()
	c.Macros()
	c.Favorites()
	c.Users()
}

func (c *Config) Health() {
	c.App.Get("/health", c.MacroHandler.Health)
	c.App.Get("/api/test-service", c.MacroHandler.TestService)
}

func (c *Config) Macros() {
	api := c.App.Group("/api")

	api.Post("/calculate-macros", c.MacroHandler.CalculateMacros)
	api.Post("/calculate-image-macros", c.MacroHandler.CalculateImageMacros)
	api.Post("/barcode-macros", c.MacroHandler.CalculateBarcodeMacros)

	api.Get("/today-macros/:userId", c.MacroHandler.GetTodayMacros)
	api.Get("/day-macros/:userId/:date", c.MacroHandler.GetDayMacros)
	api.Get("/past-macros/:userId/:days?", c.MacroHandler.GetPastMacros)

	api.Delete("/macro-log/:logId", c.MacroHandler.DeleteMacroLog)
	api.Post("/relog-macro", c.MacroHandler.RelogMacro)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites")

	favorites.Get("/:userId", c.FavoriteHandler.GetFavorites)
	favorites.Post("/:userId/add-to-meals", c.FavoriteHandler.AddToMeals)
	favorites.Post("/:userId", c.FavoriteHandler.AddFavorite)
	favorites.Delete("/:userId/:favoriteId", c.FavoriteHandler.DeleteFavorite)
	favorites.Put("/:userId/:favoriteId", c.FavoriteHandler.RenameFavorite)
}

func (c *Config) Users() {
	c.App.Post("/api/migrate-user", c.UserHandler.MigrateUser)
}
