package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDiscountNotFound    = errors.New("discount not found")
	ErrDiscountAlreadyUsed = errors.New("discount has already been used")
)

type Discount struct {
	ID uint `gorm:"primaryKey"`

	TubID *uint `gorm:"index"`

	Code       string `gorm:"column:main;not null"`
	Active     bool   `gorm:"not null;default:true"`
	Used       bool   `gorm:"not null;default:false"`
	IsMultiUse bool   `gorm:"not null;default:false"`
	Value      int    `gorm:"not null;check:value >= 1 AND value <= 100"`
}

type DiscountDAO struct {
	db *gorm.DB
}

func NewDiscountDAO(db *gorm.DB) *DiscountDAO {
	return &DiscountDAO{
		db: db,
	}
}

func (d *DiscountDAO) Insert(ctx context.Context, discount Discount) (Discount, error) {
	result := d.db.WithContext(ctx).Create(&discount)
	if result.Error != nil {
		return Discount{}, translateStorageErr(result.Error)
	}

	return discount, nil
}

func (d *DiscountDAO) FindByID(ctx context.Context, id uint) (Discount, error) {
	var discount Discount

	result := d.db.WithContext(ctx).First(&discount, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Discount{}, ErrDiscountNotFound
		}

		return Discount{}, translateStorageErr(result.Error)
	}

	return discount, nil
}

func (d *DiscountDAO) FindAll(ctx context.Context) ([]Discount, error) {
	var discounts []Discount

	result := d.db.WithContext(ctx).Find(&discounts)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return discounts, nil
}

func (d *DiscountDAO) Update(ctx context.Context, discount Discount) (Discount, error) {
	result := d.db.WithContext(ctx).Model(&Discount{ID: discount.ID}).Updates(map[string]interface{}{
		"tub_id":       discount.TubID,
		"main":         discount.Code,
		"active":       discount.Active,
		"used":         discount.Used,
		"is_multi_use": discount.IsMultiUse,
		"value":        discount.Value,
	})
	if result.Error != nil {
		return Discount{}, translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Discount{}, ErrDiscountNotFound
	}

	return d.FindByID(ctx, discount.ID)
}

func (d *DiscountDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Discount{}, id)
	if result.Error != nil {
		return translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDiscountNotFound
	}

	return nil
}
