package migration

import (
	"Journal-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.JournalEntry{}); err != nil {
		log.Fatalf("Error migrating journal entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
