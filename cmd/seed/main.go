package main

import (
	"fmt"
	"log"
	"os"

	"newshub/database"
	"newshub/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		if err := utils.SeedAll(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed")
	case "clear":
		if err := utils.ClearAll(); err != nil {
			log.Fatalf("Clearing failed: %v", err)
		}
		log.Println("All tables cleared")
	case "check":
		counts, err := utils.CountRows()
		if err != nil {
			log.Fatalf("Check failed: %v", err)
		}
		for table, count := range counts {
			log.Printf("%s: %d rows", table, count)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command>")
	fmt.Println("Commands:")
	fmt.Println("  seed   - wipe and insert development data")
	fmt.Println("  clear  - empty all tables")
	fmt.Println("  check  - print row counts per table")
}
