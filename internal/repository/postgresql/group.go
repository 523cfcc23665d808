package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/group"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type groupRepository struct {
	db *database.DB
}

// GetByID implements group.GroupRepository.
func (g *groupRepository) GetByID(ctx context.Context, id int64) (group.Group, error) {
	q := GetQuerier(ctx, g.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	var gr group.Group
	err := q.QueryRow(ctx, query, id).Scan(&gr.ID, &gr.Name, &gr.CreatedAt, &gr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("failed to get group: %w", err)
	}

	return gr, nil
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepository{db: db}
}
