package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFaqNotFound = errors.New("faq not found")

type Faq struct {
	ID uint `gorm:"primaryKey"`

	Question string `gorm:"size:255"`
	Answer   string `gorm:"size:511"`

	UserID      *uint `gorm:"index"`
	IsPublished bool  `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type FaqDAO struct {
	db *gorm.DB
}

func NewFaqDAO(db *gorm.DB) *FaqDAO {
	return &FaqDAO{
		db: db,
	}
}

func (d *FaqDAO) Insert(ctx context.Context, faq Faq) (Faq, error) {
	result := d.db.WithContext(ctx).Create(&faq)
	if result.Error != nil {
		return Faq{}, translateStorageErr(result.Error)
	}

	return faq, nil
}

func (d *FaqDAO) FindByID(ctx context.Context, id uint) (Faq, error) {
	var faq Faq

	result := d.db.WithContext(ctx).First(&faq, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Faq{}, ErrFaqNotFound
		}

		return Faq{}, translateStorageErr(result.Error)
	}

	return faq, nil
}

func (d *FaqDAO) FindAll(ctx context.Context) ([]Faq, error) {
	var faqs []Faq

	result := d.db.WithContext(ctx).Find(&faqs)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return faqs, nil
}

func (d *FaqDAO) FindPublished(ctx context.Context) ([]Faq, error) {
	var faqs []Faq

	result := d.db.WithContext(ctx).Where("is_published = ?", true).Find(&faqs)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return faqs, nil
}

func (d *FaqDAO) Update(ctx context.Context, faq Faq) (Faq, error) {
	result := d.db.WithContext(ctx).Model(&Faq{ID: faq.ID}).Updates(map[string]interface{}{
		"question":     faq.Question,
		"answer":       faq.Answer,
		"is_published": faq.IsPublished,
	})
	if result.Error != nil {
		return Faq{}, translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Faq{}, ErrFaqNotFound
	}

	return d.FindByID(ctx, faq.ID)
}
