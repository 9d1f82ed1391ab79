package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/repository"
)

var (
	ErrTubNotFound         = repository.ErrTubNotFound
	ErrReservationNotFound = repository.ErrReservationNotFound
	ErrReservationOverlap  = repository.ErrReservationOverlap
	ErrMissingDates        = errors.New("start date and end date are required")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation domain.Reservation, consumeDiscountID *uint) (domain.Reservation, error)
	FindByID(ctx context.Context, id uint) (domain.Reservation, error)
	FindByTubID(ctx context.Context, tubID uint) ([]domain.Reservation, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) (domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type ReservationTubRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Tub, error)
}

// DiscountLedger is the validation half of the discount workflow.
// Consumption of single-use codes is handled inside the booking
// transaction, keyed by the id this returns.
type DiscountLedger interface {
	Validate(ctx context.Context, discountID, tubID uint) (domain.Discount, error)
}

// CreateReservationCommand carries everything the booking workflow
// needs. PriceOverride is only honored for managers and only when no
// discount is supplied; regular clients cannot set their own price.
type CreateReservationCommand struct {
	TubID         uint
	User          *domain.User
	StartDate     time.Time
	EndDate       time.Time
	Address       domain.Address
	DiscountID    *uint
	PriceOverride *decimal.Decimal
}

type CreateReservationResult struct {
	Reservation   domain.Reservation
	Discount      *domain.Discount
	OriginalPrice decimal.Decimal
}

type ReservationService struct {
	repo    ReservationRepository
	tubRepo ReservationTubRepository
	ledger  DiscountLedger
}

func NewReservationService(repo ReservationRepository, tubRepo ReservationTubRepository, ledger DiscountLedger) *ReservationService {
	return &ReservationService{
		repo:    repo,
		tubRepo: tubRepo,
		ledger:  ledger,
	}
}

// Create books a tub. Validation order: tub existence, dates, discount
// checks; then the repository inserts reservation and address and
// claims a single-use code in one transaction. Any failure creates
// nothing and consumes nothing.
func (s *ReservationService) Create(ctx context.Context, cmd CreateReservationCommand) (CreateReservationResult, error) {
	tub, err := s.tubRepo.FindByID(ctx, cmd.TubID)
	if err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return CreateReservationResult{}, ErrTubNotFound
		}

		return CreateReservationResult{}, fmt.Errorf("s.tubRepo.FindByID -> %w", err)
	}

	if cmd.StartDate.IsZero() || cmd.EndDate.IsZero() {
		return CreateReservationResult{}, ErrMissingDates
	}
	if cmd.EndDate.Before(cmd.StartDate) {
		return CreateReservationResult{}, ErrInvalidDateRange
	}

	price := tub.PricePerDay
	countedPrice := price

	if cmd.PriceOverride != nil && cmd.DiscountID == nil && cmd.User != nil && cmd.User.IsManager {
		countedPrice = *cmd.PriceOverride
	}

	var (
		discount          *domain.Discount
		consumeDiscountID *uint
	)
	if cmd.DiscountID != nil {
		validated, err := s.ledger.Validate(ctx, *cmd.DiscountID, tub.ID)
		if err != nil {
			return CreateReservationResult{}, err
		}

		discount = &validated
		countedPrice = ComputeEffectivePrice(price, discount)
		if !validated.IsMultiUse {
			consumeDiscountID = &validated.ID
		}
	}

	tubID := tub.ID
	reservation := domain.Reservation{
		TubID:        &tubID,
		Price:        price,
		CountedPrice: countedPrice,
		StartDate:    cmd.StartDate,
		EndDate:      cmd.EndDate,
		Status:       domain.ReservationPending,
		Address:      &cmd.Address,
	}
	if cmd.User != nil {
		userID := cmd.User.ID
		reservation.UserID = &userID
	}

	created, err := s.repo.Create(ctx, reservation, consumeDiscountID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationOverlap):
			return CreateReservationResult{}, ErrReservationOverlap
		case errors.Is(err, repository.ErrDiscountAlreadyUsed):
			return CreateReservationResult{}, ErrDiscountAlreadyUsed
		case errors.Is(err, repository.ErrTubNotFound):
			return CreateReservationResult{}, ErrTubNotFound
		}

		return CreateReservationResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return CreateReservationResult{
		Reservation:   created,
		Discount:      discount,
		OriginalPrice: price,
	}, nil
}

// Accept moves a pending reservation to accepted. There is no
// transition back.
func (s *ReservationService) Accept(ctx context.Context, id uint) (domain.Reservation, error) {
	accepted, err := s.repo.UpdateStatus(ctx, id, domain.ReservationAccepted)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return domain.Reservation{}, ErrReservationNotFound
		}

		return domain.Reservation{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return accepted, nil
}

// Delete hard-deletes the reservation together with its address.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return ErrReservationNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ReservationService) ListForTub(ctx context.Context, tubID uint) ([]domain.Reservation, error) {
	if _, err := s.tubRepo.FindByID(ctx, tubID); err != nil {
		if errors.Is(err, repository.ErrTubNotFound) {
			return nil, ErrTubNotFound
		}

		return nil, fmt.Errorf("s.tubRepo.FindByID -> %w", err)
	}

	reservations, err := s.repo.FindByTubID(ctx, tubID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTubID -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) ListByStatus(ctx context.Context, accepted bool) ([]domain.Reservation, error) {
	status := domain.ReservationPending
	if accepted {
		status = domain.ReservationAccepted
	}

	reservations, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return reservations, nil
}

func (s *ReservationService) ListForUser(ctx context.Context, userID uint) ([]domain.Reservation, error) {
	reservations, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return reservations, nil
}
