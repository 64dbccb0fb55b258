package repository

import (
	"context"
	"fmt"

	"kiit_connect/internal/model"
)

// CampusRepository defines operations for cafeteria and hostel data
type CampusRepository interface {
	ListCafeterias(ctx context.Context) ([]model.Cafeteria, error)
	CreateCafeteria(ctx context.Context, c *model.Cafeteria) error
	ListHostels(ctx context.Context) ([]model.Hostel, error)
	CreateHostel(ctx context.Context, h *model.Hostel) error
}

type campusRepository struct {
	db DBTX
}

// NewCampusRepository creates a new CampusRepository
func NewCampusRepository(db DBTX) CampusRepository {
	return &campusRepository{db: db}
}

func (r *campusRepository) ListCafeterias(ctx context.Context) ([]model.Cafeteria, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, location, cuisine, opening_hours, rating FROM cafeterias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cafeterias: %w", err)
	}
	defer rows.Close()

	cafeterias := []model.Cafeteria{}
	for rows.Next() {
		var c model.Cafeteria
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Cuisine, &c.OpeningHours, &c.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan cafeteria row: %w", err)
		}
		cafeterias = append(cafeterias, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cafeteria rows: %w", err)
	}
	return cafeterias, nil
}

func (r *campusRepository) CreateCafeteria(ctx context.Context, c *model.Cafeteria) error {
	sql := `INSERT INTO cafeterias (name, location, cuisine, opening_hours, rating)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, c.Name, c.Location, c.Cuisine, c.OpeningHours, c.Rating).Scan(&c.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("cafeteria %q: %w", c.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create cafeteria: %w", err)
	}
	return nil
}

func (r *campusRepository) ListHostels(ctx context.Context) ([]model.Hostel, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, type, capacity, warden, contact, facilities FROM hostels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hostels: %w", err)
	}
	defer rows.Close()

	hostels := []model.Hostel{}
	for rows.Next() {
		var h model.Hostel
		if err := rows.Scan(&h.ID, &h.Name, &h.Type, &h.Capacity, &h.Warden, &h.Contact, &h.Facilities); err != nil {
			return nil, fmt.Errorf("failed to scan hostel row: %w", err)
		}
		hostels = append(hostels, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hostel rows: %w", err)
	}
	return hostels, nil
}

func (r *campusRepository) CreateHostel(ctx context.Context, h *model.Hostel) error {
	sql := `INSERT INTO hostels (name, type, capacity, warden, contact, facilities)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, h.Name, h.Type, h.Capacity, h.Warden, h.Contact, h.Facilities).Scan(&h.ID); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("hostel %q: %w", h.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create hostel: %w", err)
	}
	return nil
}
