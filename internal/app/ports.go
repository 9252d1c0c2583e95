package app

import "context"

type PlanUseCase interface {
	Generate(ctx context.Context, req PlanRequest) (*PlanResponse, error)
	Resolve(ctx context.Context, req ResolveRequest) (*PlanResponse, error)
	Show(ctx context.Context, req ShowRequest) (*ShowResponse, error)
}

type DailyUseCase interface {
	Daily(ctx context.Context, req DailyRequest) (*DailyResponse, error)
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)
	Week(ctx context.Context, req WeekRequest) (*WeekResponse, error)
}
