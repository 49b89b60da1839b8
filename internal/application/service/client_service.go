package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiopos/salon-api/internal/domain/entity"
	"github.com/studiopos/salon-api/internal/domain/repository"
	"github.com/studiopos/salon-api/pkg/apperror"
)

// ClientService handles client management
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Code  string
	Name  string
	Phone string
	Email string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	existing, err := s.clientRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A client with this code already exists")
	}

	client := &entity.Client{
		Code: input.Code,
		Name: input.Name,
	}
	if input.Phone != "" {
		client.Phone = &input.Phone
	}
	if input.Email != "" {
		client.Email = &input.Email
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists all clients
func (s *ClientService) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.List(ctx)
}

// UpdateClientInput represents the update client input. Nil fields are left
// unchanged.
type UpdateClientInput struct {
	Name  *string
	Phone *string
	Email *string
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Email != nil {
		client.Email = input.Email
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client. Purchase history rows stay attached to
// the soft-deleted record.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// ListPurchases returns a client's purchase history, newest first
func (s *ClientService) ListPurchases(ctx context.Context, id uuid.UUID) ([]entity.ClientPurchase, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.ListPurchases(ctx, id)
}
