package repository

import (
	"context"
	"errors"
	"strings"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPlaceRepository implements the PlaceRepository interface
type GormPlaceRepository struct {
	db *gorm.DB
}

// NewGormPlaceRepository creates a new GORM place repository
func NewGormPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &GormPlaceRepository{
		db: db,
	}
}

// GetByID finds a place by its external id
func (r *GormPlaceRepository) GetByID(ctx context.Context, id int) (*entity.Place, error) {
	var place entity.Place
	result := r.db.WithContext(ctx).Preload("Type").First(&place, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, "place", id)
	}
	return &place, nil
}

// GetOrCreate returns the stored place, inserting it on first sighting.
// Existing rows keep their original attributes.
func (r *GormPlaceRepository) GetOrCreate(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	var existing entity.Place
	err := r.db.WithContext(ctx).Preload("Type").First(&existing, "id = ?", place.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(place).Error; err != nil {
		return nil, err
	}
	return place, nil
}

// CityFor resolves the city-level place for an airport-level place. Matching
// is a best-effort name-prefix heuristic: a unique match on the first word of
// the name wins, otherwise the first match on the first two words. Returns
// nil when nothing matches.
func (r *GormPlaceRepository) CityFor(ctx context.Context, place *entity.Place) (*entity.Place, error) {
	if place.Type.Name == "City" {
		return place, nil
	}
	words := strings.Fields(place.Name)
	if len(words) == 0 {
		return nil, nil
	}

	cityType := r.db.Model(&entity.PlaceType{}).Select("id").Where("name = ?", "City")

	var matches []entity.Place
	err := r.db.WithContext(ctx).Preload("Type").
		Where("name = ? AND type_id IN (?)", words[0], cityType).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if len(matches) == 1 {
		return &matches[0], nil
	}
	if len(words) < 2 {
		return nil, nil
	}

	var city entity.Place
	err = r.db.WithContext(ctx).Preload("Type").
		Where("name = ? AND type_id IN (?)", strings.Join(words[:2], " "), cityType).
		First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// List returns all known places
func (r *GormPlaceRepository) List(ctx context.Context) ([]entity.Place, error) {
	var places []entity.Place
	err := r.db.WithContext(ctx).Preload("Type").Order("id").Find(&places).Error
	return places, err
}

// GormPlaceTypeRepository implements the PlaceTypeRepository interface
type GormPlaceTypeRepository struct {
	db *gorm.DB
}

// NewGormPlaceTypeRepository creates a new GORM place type repository
func NewGormPlaceTypeRepository(db *gorm.DB) repository.PlaceTypeRepository {
	return &GormPlaceTypeRepository{
		db: db,
	}
}

// GetOrCreateByName finds a place type by name, inserting it when unseen
func (r *GormPlaceTypeRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.PlaceType, error) {
	var placeType entity.PlaceType
	err := r.db.WithContext(ctx).Where(entity.PlaceType{Name: name}).FirstOrCreate(&placeType).Error
	if err != nil {
		return nil, err
	}
	return &placeType, nil
}
