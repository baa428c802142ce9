package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// AgentRepository defines the interface for booking agent operations
type AgentRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Agent, error)
	GetOrCreate(ctx context.Context, agent *entity.Agent) (*entity.Agent, error)
	List(ctx context.Context) ([]entity.Agent, error)
}

// AgentTypeRepository defines the interface for agent type operations,
// keyed by name
type AgentTypeRepository interface {
	GetOrCreateByName(ctx context.Context, name string) (*entity.AgentType, error)
}
