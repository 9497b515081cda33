package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/macromate/macromate-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.MacroLog{}); err != nil {
		log.Fatalf("Error migrating macro log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FavoriteFood{}); err != nil {
		log.Fatalf("Error migrating favorite food database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
