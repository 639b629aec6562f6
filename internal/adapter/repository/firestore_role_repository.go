package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"marketplus/internal/domain/entity"
	"marketplus/internal/domain/repository"
	"marketplus/pkg/errors"
)

type firestoreRoleRepository struct {
	client *firestore.Client
}

func NewFirestoreRoleRepository(client *firestore.Client) repository.RoleRepository {
	return &firestoreRoleRepository{
		client: client,
	}
}

func (r *firestoreRoleRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.RoleAssignment, error) {
	iter := r.client.Collection("user_roles").Where("userId", "==", userID).Documents(ctx)

	var roles []*entity.RoleAssignment
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate role assignments", err)
		}

		var role entity.RoleAssignment
		if err := doc.DataTo(&role); err != nil {
			return nil, errors.Internal("Failed to parse role assignment", err)
		}
		roles = append(roles, &role)
	}

	return roles, nil
}

func (r *firestoreRoleRepository) Grant(ctx context.Context, userID, role string) error {
	existing, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, assignment := range existing {
		if assignment.Role == role {
			return nil
		}
	}

	doc := r.client.Collection("user_roles").NewDoc()
	assignment := &entity.RoleAssignment{
		ID:        doc.ID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if _, err := doc.Set(ctx, assignment); err != nil {
		return errors.Internal("Failed to grant role", err)
	}
	return nil
}
