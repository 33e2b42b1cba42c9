package usecase

import (
	"context"
	"errors"

	"sales-dashboard-service/internal/dashboard/core/ports"
)

var ErrInvalidGoal = errors.New("goal must be greater than zero")

type SetGoalUseCase struct {
	goals ports.GoalRepositoryPort
}

func NewSetGoalUseCase(goals ports.GoalRepositoryPort) *SetGoalUseCase {
	return &SetGoalUseCase{goals: goals}
}

func (uc *SetGoalUseCase) Execute(ctx context.Context, goal int) error {
	if goal <= 0 {
		return ErrInvalidGoal
	}
	return uc.goals.SetGoal(ctx, goal)
}
