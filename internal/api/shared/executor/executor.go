package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.temporal.io/api/serviceerror"

	"github.com/shopwalk/aisle-engine/internal/api/shared/dto"
	apierrors "github.com/shopwalk/aisle-engine/internal/api/shared/errors"
	"github.com/shopwalk/aisle-engine/internal/archiver"
	"github.com/shopwalk/aisle-engine/internal/domain"
	"github.com/shopwalk/aisle-engine/internal/listorder"
	"github.com/shopwalk/aisle-engine/internal/ordering"
	"github.com/shopwalk/aisle-engine/internal/providers/temporal"
	"github.com/shopwalk/aisle-engine/internal/store"
	"github.com/shopwalk/aisle-engine/internal/types"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CompleteList archives a shopping list into a trip and schedules learning from it
	CompleteList(ctx context.Context, listID string) (*dto.CompleteListResponse, error)

	// GetShoppingOrder sorts a shopping list into the learned walking order of a store
	GetShoppingOrder(ctx context.Context, listID string, storeID *string) (*dto.ShoppingOrderResponse, error)

	// ResolveHierarchicalOrder resolves group, sub-group and product orders for arbitrary items
	ResolveHierarchicalOrder(ctx context.Context, req *dto.HierarchicalOrderRequest) (*dto.HierarchicalOrderResponse, error)

	// GetCategoryOrder resolves the flat category order of a store, the cross-store order when storeID is nil
	GetCategoryOrder(ctx context.Context, storeID *string) (*dto.CategoryOrderResponse, error)

	// TriggerTripLearning starts the learning workflow of an archived trip
	TriggerTripLearning(ctx context.Context, tripID string) (*dto.TriggerLearningResponse, error)
}

type executor struct {
	store                 store.Store
	archiver              archiver.Archiver
	sorter                listorder.Sorter
	resolver              ordering.Resolver
	flatResolver          ordering.FlatResolver
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

func NewExecutor(
	store store.Store,
	archiver archiver.Archiver,
	sorter listorder.Sorter,
	resolver ordering.Resolver,
	flatResolver ordering.FlatResolver,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Executor {
	return &executor{
		store:                 store,
		archiver:              archiver,
		sorter:                sorter,
		resolver:              resolver,
		flatResolver:          flatResolver,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

func (e *executor) CompleteList(ctx context.Context, listID string) (*dto.CompleteListResponse, error) {
	id, err := parseID("list_id", listID)
	if err != nil {
		return nil, err
	}

	tripID, err := e.archiver.ArchiveTripAndLearn(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListNotFound):
			return nil, apierrors.NewNotFoundError("List not found")
		case errors.Is(err, domain.ErrListAlreadyCompleted):
			return nil, apierrors.NewConflictError("List already completed")
		default:
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to complete list: %v", err))
		}
	}

	response := &dto.CompleteListResponse{ListID: id.String()}
	if tripID != nil {
		response.TripID = types.StringPtr(tripID.String())
	}

	return response, nil
}

func (e *executor) GetShoppingOrder(ctx context.Context, listID string, storeID *string) (*dto.ShoppingOrderResponse, error) {
	id, err := parseID("list_id", listID)
	if err != nil {
		return nil, err
	}

	order, err := e.sorter.ShoppingOrder(ctx, id, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			return nil, apierrors.NewNotFoundError("List not found")
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to sort list: %v", err))
	}

	return dto.MapShoppingOrderToDTO(order), nil
}

func (e *executor) ResolveHierarchicalOrder(ctx context.Context, req *dto.HierarchicalOrderRequest) (*dto.HierarchicalOrderResponse, error) {
	order, err := e.resolver.ResolveHierarchicalOrder(ctx, req.HierarchyInput())
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to resolve order: %v", err))
	}

	return dto.MapHierarchicalOrderToDTO(req.StoreID, order), nil
}

func (e *executor) GetCategoryOrder(ctx context.Context, storeID *string) (*dto.CategoryOrderResponse, error) {
	positions, err := e.flatResolver.ResolveFlatCategoryOrder(ctx, storeID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to resolve category order: %v", err))
	}

	return dto.MapCategoryOrderToDTO(storeID, positions), nil
}

func (e *executor) TriggerTripLearning(ctx context.Context, tripID string) (*dto.TriggerLearningResponse, error) {
	id, err := parseID("trip_id", tripID)
	if err != nil {
		return nil, err
	}

	trip, err := e.store.GetTrip(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get trip: %v", err))
	}
	if trip == nil {
		return nil, apierrors.NewNotFoundError("Trip not found")
	}
	if types.StringNilOrEmpty(trip.StoreID) {
		return nil, apierrors.NewValidationError("trip has no store, nothing to learn")
	}

	run, err := temporal.StartTripLearning(ctx, e.orchestrator, e.orchestratorTaskQueue, trip.ID.String())
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, apierrors.NewConflictError("Learning already completed or running for trip")
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start learning workflow: %v", err))
	}

	return &dto.TriggerLearningResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", field, value))
	}
	return id, nil
}
