package main

import (
	"fmt"
	"os"

	"campuschars/backend/internal/complaint"
	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/models"
	"campuschars/backend/internal/storage"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", "err", err)
	}

	storageSvc := storage.NewStorageService(db, nil, log) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: seed | add-technician <username> <password> <name> [skills...] | resolve-top")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "seed":
		if err := storageSvc.Migrate(); err != nil {
			log.Fatal("migration failed", "err", err)
		}
		if err := storageSvc.SeedUsers(); err != nil {
			log.Fatal("seeding failed", "err", err)
		}
		fmt.Println("Default users seeded.")

	case "add-technician":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin add-technician <username> <password> <name> [skills...]")
			os.Exit(1)
		}
		tech := &models.User{
			Username: os.Args[2],
			Password: os.Args[3],
			Role:     models.RoleTechnician,
			Name:     os.Args[4],
			Skills:   pq.StringArray(os.Args[5:]),
		}
		if err := db.Create(tech).Error; err != nil {
			log.Fatal("failed to create technician", "err", err)
		}
		fmt.Printf("Technician %s created.\n", tech.Username)

	case "resolve-top":
		svc := complaint.NewService(storageSvc)
		top, err := svc.ResolveTop()
		if err != nil {
			log.Fatal("resolve-top failed", "err", err)
		}
		if top == nil {
			fmt.Println("No pending complaints")
			return
		}
		fmt.Printf("Resolved complaint %s (score %d, %s)\n", top.ID, top.PriorityScore, top.Category)

	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
