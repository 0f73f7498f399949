package service

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexndrfrd/programatorultau/internal/domain"
	"github.com/alexndrfrd/programatorultau/internal/events"
)

// BookingStore is the slice of the slot ledger the booking service needs.
// The concrete implementation lives in internal/repository.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	IsSlotAvailable(ctx context.Context, date, timeSlot string) (bool, error)
	ListByDate(ctx context.Context, date string) ([]domain.Booking, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

const defaultSlotCacheSize = 256

type BookingSvc struct {
	repo  BookingStore
	pub   Publisher
	slots map[string]struct{}
	cache *lru.Cache[string, []string] // booked slot times per date
}

func NewBookingSvc(repo BookingStore, pub Publisher, slotTimes []string, cacheSize int) (*BookingSvc, error) {
	if cacheSize <= 0 {
		cacheSize = defaultSlotCacheSize
	}
	cache, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return nil, err
	}
	slots := make(map[string]struct{}, len(slotTimes))
	for _, t := range slotTimes {
		slots[t] = struct{}{}
	}
	return &BookingSvc{repo: repo, pub: pub, slots: slots, cache: cache}, nil
}

// Create books the (date, time) slot for the given contact. The
// availability pre-check is only a latency optimization: when the race
// window between check and insert is lost, the storage constraint reports
// the conflict and the caller sees the same ErrSlotTaken either way.
func (s *BookingSvc) Create(ctx context.Context, date, timeSlot, name, email, phone string) (*domain.Booking, error) {
	if _, ok := s.slots[timeSlot]; !ok {
		return nil, domain.ErrUnknownSlot
	}

	free, err := s.repo.IsSlotAvailable(ctx, date, timeSlot)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, domain.ErrSlotTaken
	}

	b := &domain.Booking{Date: date, Time: timeSlot, Name: name, Email: email, Phone: phone}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.cache.Remove(date)

	// Fire-and-forget: a lost notification never fails a committed booking.
	_ = s.pub.PublishJSON(ctx, events.RKBookingCreated, events.BookingCreated{
		BookingID: b.ID,
		Date:      b.Date,
		Time:      b.Time,
		Name:      b.Name,
		Email:     b.Email,
	})
	return b, nil
}

// GetByDate returns the bookings for one date ordered by time ascending,
// plus the occupied slot times. The slot list is refreshed into the cache.
func (s *BookingSvc) GetByDate(ctx context.Context, date string) ([]domain.Booking, []string, error) {
	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	slots := make([]string, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.Time)
	}
	s.cache.Add(date, slots)
	return bookings, slots, nil
}

// BookedSlots serves the occupied slot times for a date through the LRU
// cache; entries are dropped on create so staleness is bounded to the
// window between a concurrent commit and its invalidation.
func (s *BookingSvc) BookedSlots(ctx context.Context, date string) ([]string, error) {
	if slots, ok := s.cache.Get(date); ok {
		return slots, nil
	}
	bookings, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	slots := make([]string, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, b.Time)
	}
	s.cache.Add(date, slots)
	return slots, nil
}

func (s *BookingSvc) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.repo.ListAll(ctx, limit, offset)
}
