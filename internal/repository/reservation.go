package repository

import (
	"context"
	"fmt"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository/dao"
)

var (
	ErrReservationNotFound = dao.ErrReservationNotFound
	ErrReservationOverlap  = dao.ErrReservationOverlap
)

type ReservationDAO interface {
	Insert(ctx context.Context, reservation dao.Reservation, address dao.Address, consumeDiscountID *uint) (dao.Reservation, error)
	FindByID(ctx context.Context, id uint) (dao.Reservation, error)
	FindByTubID(ctx context.Context, tubID uint) ([]dao.Reservation, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Reservation, error)
	FindAll(ctx context.Context) ([]dao.Reservation, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Reservation, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type ReservationRepository struct {
	dao ReservationDAO
}

func NewReservationRepository(dao ReservationDAO) *ReservationRepository {
	return &ReservationRepository{
		dao: dao,
	}
}

// Create persists the reservation and its address atomically.
// consumeDiscountID, when set, claims a single-use code inside the
// same transaction.
func (r *ReservationRepository) Create(ctx context.Context, reservation domain.Reservation, consumeDiscountID *uint) (domain.Reservation, error) {
	address := dao.Address{}
	if reservation.Address != nil {
		address.City = reservation.Address.City
		address.Street = reservation.Address.Street
		address.HomeNumber = reservation.Address.HomeNumber
	}

	created, err := r.dao.Insert(ctx, r.domainToDao(reservation), address, consumeDiscountID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uint) (domain.Reservation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReservationRepository) FindByTubID(ctx context.Context, tubID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindByTubID(ctx, tubID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTubID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) FindByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	found, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) (domain.Reservation, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ReservationRepository) domainToDao(res domain.Reservation) dao.Reservation {
	return dao.Reservation{
		ID:           res.ID,
		TubID:        res.TubID,
		UserID:       res.UserID,
		Price:        res.Price,
		CountedPrice: res.CountedPrice,
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		Status:       string(res.Status),
	}
}

func (r *ReservationRepository) daoToDomain(res dao.Reservation) domain.Reservation {
	reservation := domain.Reservation{
		ID:           res.ID,
		TubID:        res.TubID,
		UserID:       res.UserID,
		Price:        res.Price,
		CountedPrice: res.CountedPrice,
		StartDate:    res.StartDate,
		EndDate:      res.EndDate,
		Status:       domain.ReservationStatus(res.Status),
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}

	if res.Address != nil {
		reservation.Address = &domain.Address{
			City:       res.Address.City,
			Street:     res.Address.Street,
			HomeNumber: res.Address.HomeNumber,
		}
	}

	return reservation
}

func (r *ReservationRepository) daosToDomain(found []dao.Reservation) []domain.Reservation {
	reservations := make([]domain.Reservation, len(found))
	for i, res := range found {
		reservations[i] = r.daoToDomain(res)
	}

	return reservations
}
