package router

import (
	"github.com/draperhq/storefront-api/internal/application"
	"github.com/draperhq/storefront-api/internal/container"
	pginfra "github.com/draperhq/storefront-api/internal/infrastructure/postgres"
	handlers "github.com/draperhq/storefront-api/internal/interface/http"
	"github.com/draperhq/storefront-api/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and registers it with the router registry. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	products := pginfra.NewProductRepository(pool)
	carts := pginfra.NewCartRepository(pool)
	orders := pginfra.NewOrderRepository(pool)
	stores := pginfra.NewStoreRepository(pool)
	contacts := pginfra.NewContactRepository(pool)

	userSvc := &application.UserService{
		Repo:          users,
		JWT:           jwt,
		Redis:         container.GetRedis(),
		GCS:           container.GetGCS(),
		GCSBucket:     cfg.GCSBucket,
		Publisher:     container.GetRabbitPub(),
		Logger:        logger,
		ResetURL:      cfg.ResetPasswordURL,
		ResetTokenTTL: cfg.ResetTokenTTL,
		CompanyName:   cfg.CompanyName,
		MailEnabled:   cfg.MailSendEnabled,
	}
	catalogSvc := &application.CatalogService{
		Repo:      products,
		Redis:     container.GetRedis(),
		CacheTTL:  cfg.CatalogCacheTTL,
		GCS:       container.GetGCS(),
		GCSBucket: cfg.GCSBucket,
		ES:        container.GetES(),
		ESIndex:   cfg.ESProductsIndex,
		Logger:    logger,
	}
	cartSvc := &application.CartService{
		Carts:    carts,
		Products: products,
		Logger:   logger,
	}
	checkoutSvc := &application.CheckoutService{
		Carts:       carts,
		Products:    products,
		Orders:      orders,
		Users:       users,
		Publisher:   container.GetRabbitPub(),
		Logger:      logger,
		CompanyName: cfg.CompanyName,
		MailEnabled: cfg.MailSendEnabled,
	}
	storeSvc := &application.StoreService{Repo: stores}
	contactSvc := &application.ContactService{
		Repo:        contacts,
		Publisher:   container.GetRabbitPub(),
		Logger:      logger,
		CompanyName: cfg.CompanyName,
		MailEnabled: cfg.MailSendEnabled,
	}

	r.Add(modules.NewUserModule(
		handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure), jwt))
	r.Add(modules.NewCatalogModule(handlers.NewProductHandler(catalogSvc, logger), jwt))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc), jwt))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(checkoutSvc), jwt))
	r.Add(modules.NewStoreModule(handlers.NewStoreHandler(storeSvc), jwt))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
