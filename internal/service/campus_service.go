package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kiit_connect/internal/model"
	"kiit_connect/internal/repository"
)

var ErrDuplicateEntry = errors.New("an entry with this name already exists")

// CampusService serves cafeteria and hostel data
type CampusService interface {
	ListCafeterias(ctx context.Context) ([]model.Cafeteria, error)
	CreateCafeteria(ctx context.Context, req model.CreateCafeteriaRequest) (*model.Cafeteria, error)
	ListHostels(ctx context.Context) ([]model.Hostel, error)
	CreateHostel(ctx context.Context, req model.CreateHostelRequest) (*model.Hostel, error)
}

type campusService struct {
	repo   repository.CampusRepository
	logger *slog.Logger
}

// NewCampusService creates a new CampusService. With a nil repository the
// lists come from built-in demo data and writes fail with ErrStoreUnavailable.
func NewCampusService(repo repository.CampusRepository, logger *slog.Logger) CampusService {
	if logger == nil {
		logger = slog.Default()
	}
	return &campusService{repo: repo, logger: logger.With("component", "campus")}
}

func (s *campusService) ListCafeterias(ctx context.Context) ([]model.Cafeteria, error) {
	if s.repo == nil {
		return demoCafeterias(), nil
	}
	cafeterias, err := s.repo.ListCafeterias(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return cafeterias, nil
}

func (s *campusService) CreateCafeteria(ctx context.Context, req model.CreateCafeteriaRequest) (*model.Cafeteria, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	cafeteria := &model.Cafeteria{
		Name:         req.Name,
		Location:     req.Location,
		Cuisine:      nonNil(req.Cuisine),
		OpeningHours: req.OpeningHours,
		Rating:       req.Rating,
	}
	if err := s.repo.CreateCafeteria(ctx, cafeteria); err != nil {
		return nil, s.writeError(err)
	}
	s.logger.InfoContext(ctx, "cafeteria created", "id", cafeteria.ID, "name", cafeteria.Name)
	return cafeteria, nil
}

func (s *campusService) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	if s.repo == nil {
		return demoHostels(), nil
	}
	hostels, err := s.repo.ListHostels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return hostels, nil
}

func (s *campusService) CreateHostel(ctx context.Context, req model.CreateHostelRequest) (*model.Hostel, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	hostel := &model.Hostel{
		Name:       req.Name,
		Type:       req.Type,
		Capacity:   req.Capacity,
		Warden:     req.Warden,
		Contact:    req.Contact,
		Facilities: nonNil(req.Facilities),
	}
	if err := s.repo.CreateHostel(ctx, hostel); err != nil {
		return nil, s.writeError(err)
	}
	s.logger.InfoContext(ctx, "hostel created", "id", hostel.ID, "name", hostel.Name)
	return hostel, nil
}

func (s *campusService) writeError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrDuplicateEntry
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func demoCafeterias() []model.Cafeteria {
	return []model.Cafeteria{
		{
			Name:         "Food Court 1",
			Location:     "Campus Center",
			Cuisine:      []string{"Indian", "Chinese", "Fast Food"},
			OpeningHours: "8:00 AM - 10:00 PM",
			Rating:       4.2,
		},
		{
			Name:         "Cafe Coffee Day",
			Location:     "Near Library",
			Cuisine:      []string{"Coffee", "Snacks", "Beverages"},
			OpeningHours: "7:00 AM - 11:00 PM",
			Rating:       4.5,
		},
	}
}

func demoHostels() []model.Hostel {
	return []model.Hostel{
		{
			Name:       "King's Palace 1 (Boys)",
			Type:       "Boys",
			Capacity:   200,
			Warden:     "Dr. R. K. Patel",
			Contact:    "9876543210",
			Facilities: []string{"WiFi", "Gym", "Laundry", "AC"},
		},
		{
			Name:       "Queen's Castle 4 (Girls)",
			Type:       "Girls",
			Capacity:   180,
			Warden:     "Dr. S. Mohanty",
			Contact:    "9876543211",
			Facilities: []string{"WiFi", "Gym", "Laundry", "AC", "24/7 Security"},
		},
	}
}
