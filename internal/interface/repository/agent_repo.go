package repository

import (
	"context"
	"errors"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements the AgentRepository interface
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GORM agent repository
func NewGormAgentRepository(db *gorm.DB) repository.AgentRepository {
	return &GormAgentRepository{
		db: db,
	}
}

// GetByID finds an agent by its external id
func (r *GormAgentRepository) GetByID(ctx context.Context, id int) (*entity.Agent, error) {
	var agent entity.Agent
	result := r.db.WithContext(ctx).Preload("Type").First(&agent, "id = ?", id)
	if result.Error != nil {
		return nil, translateNotFound(result.Error, "agent", id)
	}
	return &agent, nil
}

// GetOrCreate returns the stored agent, inserting it on first sighting
func (r *GormAgentRepository) GetOrCreate(ctx context.Context, agent *entity.Agent) (*entity.Agent, error) {
	var existing entity.Agent
	err := r.db.WithContext(ctx).Preload("Type").First(&existing, "id = ?", agent.ID).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(agent).Error; err != nil {
		return nil, err
	}
	return agent, nil
}

// List returns all known agents
func (r *GormAgentRepository) List(ctx context.Context) ([]entity.Agent, error) {
	var agents []entity.Agent
	err := r.db.WithContext(ctx).Preload("Type").Order("id").Find(&agents).Error
	return agents, err
}

// GormAgentTypeRepository implements the AgentTypeRepository interface
type GormAgentTypeRepository struct {
	db *gorm.DB
}

// NewGormAgentTypeRepository creates a new GORM agent type repository
func NewGormAgentTypeRepository(db *gorm.DB) repository.AgentTypeRepository {
	return &GormAgentTypeRepository{
		db: db,
	}
}

// GetOrCreateByName finds an agent type by name, inserting it when unseen
func (r *GormAgentTypeRepository) GetOrCreateByName(ctx context.Context, name string) (*entity.AgentType, error) {
	var agentType entity.AgentType
	err := r.db.WithContext(ctx).Where(entity.AgentType{Name: name}).FirstOrCreate(&agentType).Error
	if err != nil {
		return nil, err
	}
	return &agentType, nil
}
