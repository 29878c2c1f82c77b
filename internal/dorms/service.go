// Package dorms manages the dorm directory: admin-maintained building
// records (manual or scraped), the public listing with aggregate rating
// scores, and dorm voting with its rate limit.
package dorms

import (
	"context"
	"errors"
	"strings"
	"time"

	"dormlife/internal/apperr"
	"dormlife/internal/models"
	"dormlife/internal/ratings"
	"dormlife/internal/scraper"

	"gorm.io/gorm"
)

// Students may cast at most this many non-neutral dorm votes per window.
const (
	voteLimit  = 2
	voteWindow = 90 * 24 * time.Hour
)

type Service struct {
	db      *gorm.DB
	scraper *scraper.Client
}

func NewService(db *gorm.DB, sc *scraper.Client) *Service {
	return &Service{db: db, scraper: sc}
}

// Values carries caller-supplied dorm attributes. Nil fields are left
// untouched on update.
type Values struct {
	Name     *string `json:"name"`
	Year     *string `json:"year"`
	Key      *string `json:"key"`
	Styles   *string `json:"styles"`
	PerSuite *int    `json:"per_suite"`

	FloorCount     *int `json:"floor_count"`
	Occupancy      *int `json:"occupancy"`
	StaffOccupancy *int `json:"staff_occupancy"`

	HasThemeCommunity  *bool   `json:"has_theme_community"`
	IsCoEd             *bool   `json:"is_co_ed"`
	HasGenderInclusive *bool   `json:"has_gender_inclusive"`
	GenderBreakdown    *string `json:"gender_breakdown"`

	HasFloorRestrooms        *bool   `json:"has_floor_restrooms"`
	HasRoomRestrooms         *bool   `json:"has_room_restrooms"`
	HasCleaning              *bool   `json:"has_cleaning"`
	CleaningFrequency        *string `json:"cleaning_frequency"`
	HasGenderNeutralRestroom *bool   `json:"has_gender_neutral_restroom"`

	RoomTypes *[]models.RoomType    `json:"room_types"`
	Furniture *[]models.DormFeature `json:"furniture"`
	Amenities *[]models.DormFeature `json:"amenities"`

	ClosestDiningHall *string `json:"closest_dining_hall"`
}

// List returns dorms sorted by name, optionally filtered by a
// case-insensitive name substring, each with its aggregate rating score.
func (s *Service) List(search string) ([]models.Dorm, error) {
	q := s.db.Order("name ASC")
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var dorms []models.Dorm
	if err := q.Find(&dorms).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, len(dorms))
	for i, d := range dorms {
		ids[i] = d.ID
	}
	scores, err := ratings.SumAll(s.db, models.TargetDorm, ids)
	if err != nil {
		return nil, err
	}
	for i := range dorms {
		dorms[i].Rating = scores[dorms[i].ID]
	}
	return dorms, nil
}

// Create adds a manually described dorm.
func (s *Service) Create(v Values) (*models.Dorm, error) {
	if v.Name == nil || strings.TrimSpace(*v.Name) == "" {
		return nil, apperr.NewValidationError("name", "is required")
	}

	var dorm models.Dorm
	applyValues(&dorm, v)
	if err := s.db.Create(&dorm).Error; err != nil {
		return nil, err
	}
	return &dorm, nil
}

// CreateFromKey scrapes the student-living page for the given building
// key and stores the result.
func (s *Service) CreateFromKey(ctx context.Context, key string) (*models.Dorm, error) {
	building, err := s.scraper.FetchBuilding(ctx, key)
	if err != nil {
		return nil, err
	}

	dorm := models.Dorm{Key: key}
	applyBuilding(&dorm, building)
	if err := s.db.Create(&dorm).Error; err != nil {
		return nil, err
	}
	return &dorm, nil
}

// Update applies the provided values to an existing dorm.
func (s *Service) Update(id uint, v Values) (*models.Dorm, error) {
	dorm, err := s.get(id)
	if err != nil {
		return nil, err
	}
	applyValues(dorm, v)
	if err := s.db.Save(dorm).Error; err != nil {
		return nil, err
	}
	return dorm, nil
}

// Delete removes a dorm record. Its reviews and questions stay behind and
// keep rendering under the dangling reference until cleaned up by hand.
func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.Dorm{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// RefreshAll re-scrapes every dorm that has a building key. Manual dorms
// are skipped.
func (s *Service) RefreshAll(ctx context.Context) error {
	var dorms []models.Dorm
	if err := s.db.Where("key <> ''").Find(&dorms).Error; err != nil {
		return err
	}

	for i := range dorms {
		building, err := s.scraper.FetchBuilding(ctx, dorms[i].Key)
		if err != nil {
			return err
		}
		applyBuilding(&dorms[i], building)
		if err := s.db.Save(&dorms[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Vote records a dorm vote, enforcing the per-student limit on
// non-neutral votes inside the rolling window.
func (s *Service) Vote(actor *models.Student, dormID uint, d ratings.Direction) error {
	if d.Value() != 0 {
		count, err := ratings.CountRecentNonNeutral(s.db, actor.ID, models.TargetDorm, time.Now().Add(-voteWindow))
		if err != nil {
			return err
		}
		if count >= voteLimit {
			return apperr.ErrUnauthorized
		}
	}

	if _, err := s.get(dormID); err != nil {
		return err
	}
	return ratings.Upsert(s.db, actor.ID, models.TargetDorm, dormID, d)
}

func (s *Service) get(id uint) (*models.Dorm, error) {
	var dorm models.Dorm
	if err := s.db.First(&dorm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &dorm, nil
}

func applyValues(dorm *models.Dorm, v Values) {
	if v.Name != nil {
		dorm.Name = *v.Name
	}
	if v.Year != nil {
		dorm.Year = *v.Year
	}
	if v.Key != nil {
		dorm.Key = *v.Key
	}
	if v.Styles != nil {
		dorm.Styles = *v.Styles
	}
	if v.PerSuite != nil {
		dorm.PerSuite = *v.PerSuite
	}
	if v.FloorCount != nil {
		dorm.FloorCount = *v.FloorCount
	}
	if v.Occupancy != nil {
		dorm.Occupancy = *v.Occupancy
	}
	if v.StaffOccupancy != nil {
		dorm.StaffOccupancy = *v.StaffOccupancy
	}
	if v.HasThemeCommunity != nil {
		dorm.HasThemeCommunity = *v.HasThemeCommunity
	}
	if v.IsCoEd != nil {
		dorm.IsCoEd = *v.IsCoEd
	}
	if v.HasGenderInclusive != nil {
		dorm.HasGenderInclusive = *v.HasGenderInclusive
	}
	if v.GenderBreakdown != nil {
		dorm.GenderBreakdown = *v.GenderBreakdown
	}
	if v.HasFloorRestrooms != nil {
		dorm.HasFloorRestrooms = *v.HasFloorRestrooms
	}
	if v.HasRoomRestrooms != nil {
		dorm.HasRoomRestrooms = *v.HasRoomRestrooms
	}
	if v.HasCleaning != nil {
		dorm.HasCleaning = *v.HasCleaning
	}
	if v.CleaningFrequency != nil {
		dorm.CleaningFrequency = *v.CleaningFrequency
	}
	if v.HasGenderNeutralRestroom != nil {
		dorm.HasGenderNeutralRestroom = *v.HasGenderNeutralRestroom
	}
	if v.RoomTypes != nil {
		dorm.RoomTypes = *v.RoomTypes
	}
	if v.Furniture != nil {
		dorm.Furniture = *v.Furniture
	}
	if v.Amenities != nil {
		dorm.Amenities = *v.Amenities
	}
	if v.ClosestDiningHall != nil {
		dorm.ClosestDiningHall = *v.ClosestDiningHall
	}
}

func applyBuilding(dorm *models.Dorm, b *scraper.Building) {
	dorm.Name = b.Name
	dorm.Year = b.Year
	dorm.Styles = b.Styles
	dorm.PerSuite = b.PerSuite
	dorm.FloorCount = b.FloorCount
	dorm.Occupancy = b.Occupancy
	dorm.StaffOccupancy = b.StaffOccupancy
	dorm.HasThemeCommunity = b.HasThemeCommunity
	dorm.IsCoEd = b.IsCoEd
	dorm.HasGenderInclusive = b.HasGenderInclusive
	dorm.GenderBreakdown = b.GenderBreakdown
	dorm.HasFloorRestrooms = b.HasFloorRestrooms
	dorm.HasRoomRestrooms = b.HasRoomRestrooms
	dorm.HasCleaning = b.HasCleaning
	dorm.CleaningFrequency = b.CleaningFrequency
	dorm.HasGenderNeutralRestroom = b.HasGenderNeutralRestroom
	dorm.RoomTypes = b.RoomTypes
	dorm.Furniture = b.Furniture
	dorm.Amenities = b.Amenities
	dorm.ClosestDiningHall = b.ClosestDiningHall
}
