package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTubNotFound = errors.New("tub not found")

type Tub struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string

	PricePerDay  decimal.Decimal  `gorm:"type:numeric(10,2);not null"`
	PricePerWeek *decimal.Decimal `gorm:"type:numeric(10,2)"`

	LogoImg string

	// Children follow the tub to the grave; a deleted tub leaves no
	// orphaned bookings, ratings or codes behind.
	Images       []Image       `gorm:"foreignKey:TubID;constraint:OnDelete:CASCADE"`
	Discounts    []Discount    `gorm:"foreignKey:TubID;constraint:OnDelete:CASCADE"`
	Ratings      []Rating      `gorm:"foreignKey:TubID;constraint:OnDelete:CASCADE"`
	Reservations []Reservation `gorm:"foreignKey:TubID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Image struct {
	ID    uint   `gorm:"primaryKey"`
	TubID uint   `gorm:"not null;index"`
	URL   string `gorm:"not null"`
}

type TubDAO struct {
	db *gorm.DB
}

func NewTubDAO(db *gorm.DB) *TubDAO {
	return &TubDAO{
		db: db,
	}
}

func (d *TubDAO) Insert(ctx context.Context, tub Tub) (Tub, error) {
	result := d.db.WithContext(ctx).Create(&tub)
	if result.Error != nil {
		return Tub{}, translateStorageErr(result.Error)
	}

	return tub, nil
}

func (d *TubDAO) FindByID(ctx context.Context, id uint) (Tub, error) {
	var tub Tub

	result := d.db.WithContext(ctx).Preload("Images").First(&tub, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Tub{}, ErrTubNotFound
		}

		return Tub{}, translateStorageErr(result.Error)
	}

	return tub, nil
}

func (d *TubDAO) FindAll(ctx context.Context) ([]Tub, error) {
	var tubs []Tub

	result := d.db.WithContext(ctx).Preload("Images").Find(&tubs)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return tubs, nil
}

func (d *TubDAO) Update(ctx context.Context, tub Tub) (Tub, error) {
	result := d.db.WithContext(ctx).Model(&Tub{ID: tub.ID}).Updates(map[string]interface{}{
		"name":           tub.Name,
		"description":    tub.Description,
		"price_per_day":  tub.PricePerDay,
		"price_per_week": tub.PricePerWeek,
		"logo_img":       tub.LogoImg,
	})
	if result.Error != nil {
		return Tub{}, translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Tub{}, ErrTubNotFound
	}

	return d.FindByID(ctx, tub.ID)
}

func (d *TubDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Tub{}, id)
	if result.Error != nil {
		return translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTubNotFound
	}

	return nil
}
