package handlers

import (
	"github.com/jmoiron/sqlx"

	"shopfront/internal/catalog"
	"shopfront/internal/metrics"
	"shopfront/internal/repos"
	"shopfront/internal/services"
	"shopfront/internal/session"
)

type Deps struct {
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, store catalog.Store, sessions session.Store, m *metrics.Metrics) *Deps {
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService(store)
	checkoutSvc := services.NewCheckoutService(cartSvc, orderRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		CartHandler:    &CartHandler{Cart: cartSvc, Sessions: sessions, Metrics: m},
		OrderHandler:   &OrderHandler{Cart: cartSvc, Checkout: checkoutSvc, Orders: orderRepo, Sessions: sessions, Metrics: m},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Orders: orderRepo},
	}
}
