package models

import (
	"time"
)

type RoomType struct {
	Name  string  `json:"name"`
	Area  float64 `json:"area"`  // sqft
	Price float64 `json:"price"` // dollars per year
}

type DormFeature struct {
	Name        string `json:"name"`
	Exists      bool   `json:"exists"`
	Description string `json:"description,omitempty"`
}

type Dorm struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;not null;index" json:"name"`
	Year     string `gorm:"size:50" json:"year"` // Freshman, Sophomore, etc.
	Key      string `gorm:"size:100;index" json:"key"`
	Styles   string `gorm:"size:100" json:"styles"` // e.g. "Suite/Traditional"
	PerSuite int    `json:"per_suite"`

	FloorCount     int `json:"floor_count"`
	Occupancy      int `json:"occupancy"`
	StaffOccupancy int `json:"staff_occupancy"`

	HasThemeCommunity  bool   `json:"has_theme_community"`
	IsCoEd             bool   `json:"is_co_ed"`
	HasGenderInclusive bool   `json:"has_gender_inclusive"`
	GenderBreakdown    string `gorm:"size:35" json:"gender_breakdown"`

	HasFloorRestrooms        bool   `json:"has_floor_restrooms"`
	HasRoomRestrooms         bool   `json:"has_room_restrooms"`
	HasCleaning              bool   `json:"has_cleaning"`
	CleaningFrequency        string `gorm:"size:35" json:"cleaning_frequency"`
	HasGenderNeutralRestroom bool   `json:"has_gender_neutral_restroom"`

	RoomTypes []RoomType    `gorm:"serializer:json" json:"room_types"`
	Furniture []DormFeature `gorm:"serializer:json" json:"furniture"`
	Amenities []DormFeature `gorm:"serializer:json" json:"amenities"`

	ClosestDiningHall string    `gorm:"size:50" json:"closest_dining_hall"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Filled at query time, never stored.
	Rating int `gorm:"-" json:"rating"`
}
