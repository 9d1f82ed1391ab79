package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Tub{},
		&Image{},
		&Reservation{},
		&Address{},
		&Rating{},
		&Discount{},
		&Faq{},
	)
}
