package model

// Cafeteria represents a food outlet on campus
type Cafeteria struct {
	ID           int      `json:"id,omitempty"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Cuisine      []string `json:"cuisine"`
	OpeningHours string   `json:"opening_hours"`
	Rating       float64  `json:"rating"`
}

// Hostel represents a residence block
type Hostel struct {
	ID         int      `json:"id,omitempty"`
	Name       string   `json:"name"`
	Type       string   `json:"type"` // "Boys" or "Girls"
	Capacity   int      `json:"capacity"`
	Warden     string   `json:"warden"`
	Contact    string   `json:"contact"`
	Facilities []string `json:"facilities"`
}

// Location is a point of interest on the campus map
type Location struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Personnel is a directory entry for university staff
type Personnel struct {
	Title  string `json:"title"`
	Name   string `json:"name"`
	Office string `json:"office"`
	Room   string `json:"room"`
	Campus string `json:"campus"`
	Phone  string `json:"phone"`
}

// CreateCafeteriaRequest is used by admins to add a cafeteria
type CreateCafeteriaRequest struct {
	Name         string   `json:"name" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Cuisine      []string `json:"cuisine"`
	OpeningHours string   `json:"opening_hours"`
	Rating       float64  `json:"rating" binding:"gte=0,lte=5"`
}

// CreateHostelRequest is used by admins to add a hostel
type CreateHostelRequest struct {
	Name       string   `json:"name" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=Boys Girls"`
	Capacity   int      `json:"capacity" binding:"gte=0"`
	Warden     string   `json:"warden"`
	Contact    string   `json:"contact"`
	Facilities []string `json:"facilities"`
}

// ChatRequest is the body of POST /api/chatbot
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
