package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the relational tables owned by this service
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&RefundRequests{}, &AirlineRecord{}, &AirportRecord{})
}
