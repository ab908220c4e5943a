// Package character defines the interface for finalized character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/d20forge/srd35-engine/internal/repositories/character Repository

import (
	"context"

	"github.com/d20forge/srd35-engine/internal/entities/srd35"
)

// Repository defines the interface for character persistence. Only raw
// selections are stored; derived statistics are recomputed by the engine
// on every load.
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character's stored selections
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its index entries
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID returns all of a player's characters
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *srd35.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *srd35.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *srd35.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *srd35.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *srd35.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's characters
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's characters
type ListByPlayerIDOutput struct {
	Characters []*srd35.Character
}
