package settlement

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Talha3818/gaming-site-sub001/internal/services/settlement Service

// Service defines the interface for match settlement and arbitration
type Service interface {
	// Complete settles an in-progress challenge: pays the pot to the winner
	// and updates both players' statistics, exactly once per challenge
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)

	// AdminResolve arbitrates a disputed or stuck in-progress challenge,
	// either designating a winner or refunding both bets
	AdminResolve(ctx context.Context, input *AdminResolveInput) (*AdminResolveOutput, error)
}
