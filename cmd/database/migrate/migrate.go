package migration

import (
	"ShareMeal-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodRequest{}); err != nil {
		log.Fatalf("Error migrating food request database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
