package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kiit_connect/internal/model"
)

const (
	locationsFile = "locations.json"
	personnelFile = "personnel.json"
)

// DirectoryService serves the map locations and staff directory
type DirectoryService interface {
	Locations(ctx context.Context) []model.Location
	Personnel(ctx context.Context) []model.Personnel
}

type directoryService struct {
	dataDir string
	logger  *slog.Logger
}

// NewDirectoryService reads its lists from JSON files in dataDir. A missing or
// unreadable file falls back to the built-in list.
func NewDirectoryService(dataDir string, logger *slog.Logger) DirectoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &directoryService{dataDir: dataDir, logger: logger.With("component", "directory")}
}

func (s *directoryService) Locations(ctx context.Context) []model.Location {
	var locations []model.Location
	if err := readJSONFile(filepath.Join(s.dataDir, locationsFile), &locations); err != nil {
		s.logger.DebugContext(ctx, "using built-in locations", "error", err)
		return demoLocations()
	}
	return locations
}

func (s *directoryService) Personnel(ctx context.Context) []model.Personnel {
	var personnel []model.Personnel
	if err := readJSONFile(filepath.Join(s.dataDir, personnelFile), &personnel); err != nil {
		s.logger.DebugContext(ctx, "using built-in personnel", "error", err)
		return demoPersonnel()
	}
	return personnel
}

func readJSONFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func demoLocations() []model.Location {
	return []model.Location{
		{Name: "Campus 3 Academic Block", Type: "academic", Lat: 20.352761, Lng: 85.817242},
		{Name: "Central Library", Type: "library", Lat: 20.354055, Lng: 85.816373},
		{Name: "Food Court 1", Type: "cafeteria", Lat: 20.355000, Lng: 85.817000},
		{Name: "King's Palace 1", Type: "hostel", Lat: 20.354401, Lng: 85.820217},
		{Name: "KIIT Cricket Field", Type: "sports", Lat: 20.357353, Lng: 85.817941},
	}
}

func demoPersonnel() []model.Personnel {
	return []model.Personnel{
		{
			Title:  "Director General",
			Name:   "Prof. Sasmita Samanta",
			Office: "Campus 3, Administrative Block",
			Room:   "DG Office, 3rd Floor",
			Campus: "Campus 3",
			Phone:  "0674-272-7777",
		},
		{
			Title:  "Dean - School of Computer Engineering",
			Name:   "Prof. Amiya Kumar Rath",
			Office: "Campus 3",
			Room:   "Room 301, CS Building",
			Campus: "Campus 3",
			Phone:  "0674-272-8888",
		},
	}
}
