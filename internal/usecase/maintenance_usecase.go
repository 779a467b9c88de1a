package usecase

import "context"

// SeedResult reports how many default catalog rows were inserted.
type SeedResult struct {
	Species   int `json:"species"`
	Locations int `json:"locations"`
}

// MaintenanceUsecase groups operator tasks that are not part of request handling
type MaintenanceUsecase interface {
	// SeedDefaults fills each empty catalog with its default entries.
	SeedDefaults(ctx context.Context) (*SeedResult, error)
}
