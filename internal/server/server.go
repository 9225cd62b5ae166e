package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"marketplace-backend/internal/cache"
	"marketplace-backend/internal/handler"
	appmw "marketplace-backend/internal/middleware"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/sample"
	"marketplace-backend/internal/service"
	"marketplace-backend/internal/storage"
)

// Deps are the optional collaborators wired into the server. Any of them may
// be nil: the DB is injected later via SetDB, the uploader/notifier/cache
// simply disable their feature.
type Deps struct {
	DB       *gorm.DB
	Identity *appmw.IdentityMiddleware
	Uploader *storage.Uploader
	Notifier service.Notifier
	Cache    *cache.Cache
	Fallback service.FallbackProvider
}

type Server struct {
	e           *echo.Echo
	listingRepo repository.ListingRepository
	messageRepo repository.MessageRepository
}

func New(d Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-User-Email"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return false, nil
			}
			if strings.HasSuffix(u.Hostname(), "vercel.app") {
				return true, nil
			}
			return false, nil
		},
	}))

	fallback := d.Fallback
	if fallback == nil {
		fallback = sample.NewProvider()
	}

	var listCache service.ListCache
	if d.Cache != nil {
		listCache = d.Cache
	}

	listingRepo := repository.NewListingRepository(d.DB)
	listingSvc := service.NewListingService(listingRepo, fallback, listCache)
	listingHandler := handler.NewListingHandler(listingSvc)

	messageRepo := repository.NewMessageRepository(d.DB)
	messageSvc := service.NewMessageService(messageRepo, listingSvc, d.Notifier)
	messageHandler := handler.NewMessageHandler(messageSvc, listingSvc)

	uploadHandler := handler.NewUploadHandler(d.Uploader)

	identity := d.Identity
	if identity == nil {
		identity = appmw.HeaderIdentity()
	}
	e.Use(identity.Resolve)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.GET("/listings", listingHandler.List)
	api.GET("/listings/:id", listingHandler.Get)
	api.GET("/categories", listingHandler.Categories)
	api.POST("/listings", listingHandler.Create, identity.RequireUser)
	api.DELETE("/listings/:id", listingHandler.Delete, identity.RequireUser)
	api.GET("/me/listings", listingHandler.ListMine, identity.RequireUser)
	api.POST("/listings/:id/messages", messageHandler.Send)
	api.GET("/listings/:id/messages", messageHandler.ListByListing, identity.RequireUser)
	api.POST("/uploads/images", uploadHandler.UploadImage, identity.RequireUser)

	return &Server{e: e, listingRepo: listingRepo, messageRepo: messageRepo}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the database once the background connect succeeds. Until
// then every repository call fails and reads serve the fallback set.
func (s *Server) SetDB(db *gorm.DB) {
	if s.listingRepo != nil {
		s.listingRepo.SetDB(db)
	}
	if s.messageRepo != nil {
		s.messageRepo.SetDB(db)
	}
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
