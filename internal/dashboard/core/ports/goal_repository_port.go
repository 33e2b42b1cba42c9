package ports

import "context"

type GoalRepositoryPort interface {
	// CurrentGoal returns the most recently set goal, or the default when
	// nothing has been stored yet.
	CurrentGoal(ctx context.Context) (int, error)
	SetGoal(ctx context.Context, goal int) error
}
