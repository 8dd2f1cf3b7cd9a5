package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"estateadmin/internal/config"
	"estateadmin/internal/domain/models"
	"estateadmin/internal/repository/postgres"
	"estateadmin/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	clearData := flag.Bool("clear-data", false, "Clear all rows (keep schema)")
	adminPassword := flag.String("admin-password", "admin123", "Password for the seeded admin account")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *clearData {
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	log.Println("🧹 Clearing existing rows...")
	if err := postgres.TruncateTables(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to clear data: %v", err)
	}
	if *clearData {
		log.Println("✅ Data cleared successfully")
		return
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	txManager := postgres.NewTransactionManager(pool, logger)

	// Create services
	projectService := service.NewProjectService(postgres.NewProjectRepository(repoConfig), logger)
	developerService := service.NewDeveloperService(postgres.NewDeveloperRepository(repoConfig), logger)
	userService := service.NewUserService(postgres.NewUserRepository(repoConfig), logger)

	log.Println("📝 Seeding developers, projects and users...")

	err = txManager.ExecTx(ctx, func(ctx context.Context) error {
		developerIDs := make(map[string]int64)
		for _, d := range seedDevelopers() {
			created, err := developerService.CreateDeveloper(ctx, &d)
			if err != nil {
				return fmt.Errorf("developer %q: %w", d.Name, err)
			}
			developerIDs[created.Name] = created.ID
			log.Printf("✅ Developer %s (ID: %d)", created.Name, created.ID)
		}

		for _, sp := range seedProjects() {
			p := sp.project
			if id, ok := developerIDs[sp.developer]; ok {
				p.DeveloperID = &id
			}
			created, err := projectService.CreateProject(ctx, &p)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Name, err)
			}
			log.Printf("✅ Project %s (ID: %d, type: %s)", created.Name, created.ID, created.Type)
		}

		admin := &models.User{
			Username: "admin",
			Email:    "admin@example.com",
			FullName: "Quản trị viên",
			Role:     models.UserRoleAdmin,
			Password: *adminPassword,
		}
		if _, err := userService.CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("admin user: %w", err)
		}
		log.Printf("✅ User %s (ID: %d)", admin.Username, admin.ID)
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("🎉 Seeding complete!")
}

type seedProject struct {
	developer string
	project   models.Project
}

func seedDevelopers() []models.Developer {
	return []models.Developer{
		{Name: "Novaland", Website: "https://www.novaland.com.vn", Email: "info@novaland.com.vn", Phone: "1900 636 666"},
		{Name: "Hưng Thịnh", Website: "https://hungthinhcorp.com.vn", Email: "info@hungthinhcorp.com.vn", Phone: "1800 1036"},
		{Name: "Phú Mỹ Hưng", Website: "https://www.phumyhung.vn", Email: "info@phumyhung.vn", Phone: "028 5411 8888"},
	}
}

func seedProjects() []seedProject {
	return []seedProject{
		{"Novaland", models.Project{
			Name: "Sunrise City", Address: "23 Nguyễn Hữu Thọ", Ward: "Phường Tân Hưng", District: "Quận 7",
			Type: models.ProjectTypeApartment, Status: models.ProjectStatusCompleted,
			Area: 75, PriceFrom: 3_500_000_000, PriceTo: 7_000_000_000, TotalUnits: 2200,
		}},
		{"Hưng Thịnh", models.Project{
			Name: "Saigon Riverside", Address: "Đào Trí", Ward: "Phường Phú Thuận", District: "Quận 7",
			Type: models.ProjectTypeApartment, Status: models.ProjectStatusOpen,
			Area: 68, PriceFrom: 2_200_000_000, PriceTo: 3_800_000_000, TotalUnits: 2000,
		}},
		{"Phú Mỹ Hưng", models.Project{
			Name: "Nam Viên Villas", Address: "Nguyễn Văn Linh", Ward: "Phường Tân Phong", District: "Quận 7",
			Type: models.ProjectTypeVilla, Status: models.ProjectStatusSoldOut,
			Area: 300, PriceFrom: 40_000_000_000, PriceTo: 70_000_000_000, TotalUnits: 48,
		}},
		{"Phú Mỹ Hưng", models.Project{
			Name: "The Crescent Office", Address: "Tôn Dật Tiên", Ward: "Phường Tân Phú", District: "Quận 7",
			Type: models.ProjectTypeOffice, Status: models.ProjectStatusUpcoming,
			Area: 120, TotalUnits: 150,
		}},
		{"Novaland", models.Project{
			Name: "Riverside Shophouse", Address: "Huỳnh Tấn Phát", Ward: "Phường Phú Mỹ", District: "Quận 7",
			Type: models.ProjectTypeShophouse, Status: models.ProjectStatusOpen,
			Area: 140, PriceFrom: 12_000_000_000, PriceTo: 18_000_000_000, TotalUnits: 60,
		}},
	}
}
