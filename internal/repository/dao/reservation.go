package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationOverlap  = errors.New("tub already reserved for the selected dates")
)

type Reservation struct {
	ID uint `gorm:"primaryKey"`

	TubID  *uint `gorm:"index"`
	UserID *uint `gorm:"index"`

	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CountedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`

	Status string `gorm:"type:varchar(16);not null;default:'pending';index"`

	Address *Address `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Address struct {
	ID            uint   `gorm:"primaryKey"`
	ReservationID uint   `gorm:"not null;index"`
	City          string `gorm:"not null"`
	Street        string `gorm:"not null"`
	HomeNumber    string `gorm:"not null"`
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// Insert books a tub in a single transaction. The tub row is locked
// FOR UPDATE so the overlap check and the insert are serialized per
// tub; two concurrent bookings for the same free slot cannot both
// pass. When consumeDiscountID is set, the single-use code is claimed
// with a conditional update in the same transaction, so a raced
// redemption rolls the whole booking back.
func (d *ReservationDAO) Insert(ctx context.Context, reservation Reservation, address Address, consumeDiscountID *uint) (Reservation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tub Tub
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tub, *reservation.TubID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTubNotFound
			}

			return err
		}

		// Inclusive interval intersection, blind to status. A pending
		// reservation blocks the slot until it is deleted.
		var count int64
		err := tx.Model(&Reservation{}).
			Where("tub_id = ? AND start_date <= ? AND end_date >= ?",
				*reservation.TubID, reservation.EndDate, reservation.StartDate).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrReservationOverlap
		}

		if consumeDiscountID != nil {
			result := tx.Model(&Discount{}).
				Where("id = ? AND active = ? AND used = ?", *consumeDiscountID, true, false).
				Updates(map[string]interface{}{"active": false, "used": true})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrDiscountAlreadyUsed
			}
		}

		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		address.ReservationID = reservation.ID
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		reservation.Address = &address

		return nil
	})
	if err != nil {
		return Reservation{}, translateStorageErr(err)
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByID(ctx context.Context, id uint) (Reservation, error) {
	var reservation Reservation

	result := d.db.WithContext(ctx).Preload("Address").First(&reservation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Reservation{}, ErrReservationNotFound
		}

		return Reservation{}, translateStorageErr(result.Error)
	}

	return reservation, nil
}

func (d *ReservationDAO) FindByTubID(ctx context.Context, tubID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Preload("Address").Where("tub_id = ?", tubID).Find(&reservations)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return reservations, nil
}

func (d *ReservationDAO) FindByUserID(ctx context.Context, userID uint) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Preload("Address").Where("user_id = ?", userID).Find(&reservations)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return reservations, nil
}

func (d *ReservationDAO) FindAll(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Preload("Address").Find(&reservations)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return reservations, nil
}

func (d *ReservationDAO) FindByStatus(ctx context.Context, status string) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Preload("Address").Where("status = ?", status).Find(&reservations)
	if result.Error != nil {
		return nil, translateStorageErr(result.Error)
	}

	return reservations, nil
}

func (d *ReservationDAO) UpdateStatus(ctx context.Context, id uint, status string) (Reservation, error) {
	result := d.db.WithContext(ctx).Model(&Reservation{ID: id}).Update("status", status)
	if result.Error != nil {
		return Reservation{}, translateStorageErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return Reservation{}, ErrReservationNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes the reservation and its address in one transaction.
func (d *ReservationDAO) Delete(ctx context.Context, id uint) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&Reservation{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReservationNotFound
		}

		return tx.Where("reservation_id = ?", id).Delete(&Address{}).Error
	})
	if err != nil {
		return translateStorageErr(err)
	}

	return nil
}
