package router

import (
	"net/http"

	"wce-catalog/app/controller"
)

type Controllers struct {
	Product  *controller.ProductController
	Draft    *controller.DraftController
	Catalog  *controller.CatalogController
	Customer *controller.CustomerController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Product routes
	http.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			controllers.Product.Create(w, r)
		case http.MethodGet:
			controllers.Product.List(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product by code - GET, PUT and DELETE
	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Product.GetByCode(w, r)
		case http.MethodPut:
			controllers.Product.Update(w, r)
		case http.MethodDelete:
			controllers.Product.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog draft routes (admin editing sessions)
	http.HandleFunc("/admin/drafts", controllers.Draft.Create)
	http.HandleFunc("/admin/drafts/", controllers.Draft.Route)

	// Stored catalog routes
	http.HandleFunc("/admin/catalogs", controllers.Catalog.List)
	http.HandleFunc("/admin/catalogs/", controllers.Catalog.Route)

	// Customer routes
	http.HandleFunc("/catalog", controllers.Customer.GetCatalog)
	http.HandleFunc("/catalog/order", controllers.Customer.Order)
}
