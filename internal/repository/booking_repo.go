package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/alexndrfrd/programatorultau/internal/domain"
)

const defaultListLimit = 100

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{}, &domain.ContactMessage{})
}

// Create commits a new booking with a single INSERT. There is no row
// locking and no transaction around a pre-check: the unique index on
// (date, time) is the authority, and a constraint violation surfaces as
// domain.ErrSlotTaken so concurrent writers for the same slot resolve to
// exactly one winner.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

// IsSlotAvailable is a pure read used as a fast path; it makes no
// correctness guarantee under concurrency (see Create).
func (r *BookingRepo) IsSlotAvailable(ctx context.Context, date, timeSlot string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("date = ? AND time = ?", date, timeSlot).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}
	return count == 0, nil
}

func (r *BookingRepo) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	return out, nil
}

func (r *BookingRepo) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Order("date DESC, time ASC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepo) SaveContact(ctx context.Context, m *domain.ContactMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// either already translated by gorm or as a raw Postgres SQLSTATE 23505.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
