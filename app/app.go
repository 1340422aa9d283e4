package app

import (
	"log"
	"os"
	"path/filepath"

	"wce-catalog/app/controller"
	"wce-catalog/app/router"
	"wce-catalog/repository"
	"wce-catalog/service"
)

// Initialize wires the repositories, services and controllers and registers the routes.
func Initialize() error {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(filepath.Join(dataDir, "database", "database.json"))
	catalogRepo := repository.NewCatalogRepository(filepath.Join(dataDir, "customers"))

	// Initialize the remote sync adapter. Missing GitHub settings disable mirroring
	// rather than failing startup: local disk is the source of truth either way.
	var github service.GitHubServiceInterface
	token := os.Getenv("GITHUB_TOKEN")
	owner := os.Getenv("GITHUB_OWNER")
	repo := os.Getenv("GITHUB_REPO")
	if token != "" && owner != "" && repo != "" {
		github = service.NewGitHubService(service.GitHubConfig{
			Token:  token,
			Owner:  owner,
			Repo:   repo,
			Branch: os.Getenv("GITHUB_BRANCH"),
		})
		log.Printf("✓ Remote sync enabled for %s/%s", owner, repo)
	} else {
		log.Printf("⚠️  GITHUB_TOKEN/GITHUB_OWNER/GITHUB_REPO not set, remote sync disabled")
	}
	syncService := service.NewSyncService(github)

	// Initialize services
	productService := service.NewProductService(productRepo, syncService, dataDir)
	catalogService := service.NewCatalogService(catalogRepo, productRepo)
	draftService := service.NewDraftService(productRepo, catalogRepo, syncService, dataDir)

	// Create controllers
	controllers := &router.Controllers{
		Product:  controller.NewProductController(productService),
		Draft:    controller.NewDraftController(draftService),
		Catalog:  controller.NewCatalogController(catalogService, catalogRepo),
		Customer: controller.NewCustomerController(catalogService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
