package postgres

import (
	"context"

	"sales-dashboard-service/internal/dashboard/core/domain"
	"sales-dashboard-service/internal/dashboard/core/ports"
)

type GoalRepository struct {
	db DB
}

func NewGoalRepository(db DB) *GoalRepository {
	return &GoalRepository{db: db}
}

var _ ports.GoalRepositoryPort = (*GoalRepository)(nil)

const selectGoalSQL = `
SELECT goal
FROM monthly_goals
ORDER BY updated_at DESC
LIMIT 1;
`

// Goal history is append-only; the latest row wins.
const insertGoalSQL = `
INSERT INTO monthly_goals (goal, updated_at)
VALUES ($1, now());
`

func (r *GoalRepository) CurrentGoal(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, selectGoalSQL)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if rows.Next() {
		var goal int64
		if err := rows.Scan(&goal); err != nil {
			return 0, err
		}
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return int(goal), nil
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	return domain.DefaultMonthlyGoal, nil
}

func (r *GoalRepository) SetGoal(ctx context.Context, goal int) error {
	_, err := r.db.ExecContext(ctx, insertGoalSQL, goal)
	return err
}
