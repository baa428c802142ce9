package usecase

import (
	"context"
	"fmt"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
)

// ReferenceResolver materializes the shared dimension entities of one
// response: places, carriers and agents keyed by external id, place types,
// agent types and journey modes keyed by name. Rows are created on first
// sighting only; attributes of existing rows are never touched, so an
// upstream rename silently keeps the stored value.
type ReferenceResolver struct {
	repos *repository.Repositories
}

// NewReferenceResolver creates a resolver over one repository set
func NewReferenceResolver(repos *repository.Repositories) *ReferenceResolver {
	return &ReferenceResolver{
		repos: repos,
	}
}

// EnsurePlaces resolves every raw place of the response
func (rr *ReferenceResolver) EnsurePlaces(ctx context.Context, places []entity.RawPlace) error {
	for _, raw := range places {
		placeType, err := rr.repos.PlaceTypes.GetOrCreateByName(ctx, raw.Type)
		if err != nil {
			return fmt.Errorf("resolve place type %q: %w", raw.Type, err)
		}
		_, err = rr.repos.Places.GetOrCreate(ctx, &entity.Place{
			ID:       raw.ID,
			Code:     raw.Code,
			Name:     raw.Name,
			TypeID:   placeType.ID,
			ParentID: raw.ParentID,
		})
		if err != nil {
			return fmt.Errorf("resolve place %d: %w", raw.ID, err)
		}
	}
	return nil
}

// EnsureCarriers resolves every raw carrier of the response
func (rr *ReferenceResolver) EnsureCarriers(ctx context.Context, carriers []entity.RawCarrier) error {
	for _, raw := range carriers {
		_, err := rr.repos.Carriers.GetOrCreate(ctx, &entity.Carrier{
			ID:          raw.ID,
			Code:        raw.Code,
			DisplayCode: raw.DisplayCode,
			Name:        raw.Name,
			ImageURL:    raw.ImageURL,
		})
		if err != nil {
			return fmt.Errorf("resolve carrier %d: %w", raw.ID, err)
		}
	}
	return nil
}

// EnsureAgents resolves every raw booking agent of the response
func (rr *ReferenceResolver) EnsureAgents(ctx context.Context, agents []entity.RawAgent) error {
	for _, raw := range agents {
		agentType, err := rr.repos.AgentTypes.GetOrCreateByName(ctx, raw.Type)
		if err != nil {
			return fmt.Errorf("resolve agent type %q: %w", raw.Type, err)
		}
		_, err = rr.repos.Agents.GetOrCreate(ctx, &entity.Agent{
			ID:                 raw.ID,
			Name:               raw.Name,
			TypeID:             agentType.ID,
			ImageURL:           raw.ImageURL,
			OptimisedForMobile: raw.OptimisedForMobile,
		})
		if err != nil {
			return fmt.Errorf("resolve agent %d: %w", raw.ID, err)
		}
	}
	return nil
}
