package billing

import (
	"context"
	"errors"

	"github.com/altozano/altozano/internal/platform/httpx"
)

// UnknownResidenceName is the placeholder used when the residence lookup
// returns no row. The balance still computes and the call still succeeds.
const UnknownResidenceName = "Residencia Desconocida"

// ComputePendingBalance fetches a residence's pending dues and pending
// fines and sums them into the pending balance. Read-only: any query
// failure aborts the whole computation, never a partial result.
func (s *Service) ComputePendingBalance(ctx context.Context, residenceID int64) (*PendingBalance, error) {
	name, err := s.repo.ResidenceName(ctx, residenceID)
	if errors.Is(err, httpx.ErrNotFound) {
		name = UnknownResidenceName
	} else if err != nil {
		return nil, err
	}

	dues, err := s.repo.PendingDues(ctx, residenceID)
	if err != nil {
		return nil, err
	}
	fines, err := s.repo.PendingFines(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, d := range dues {
		total += d.Amount
	}
	for _, f := range fines {
		total += f.Amount
	}

	return &PendingBalance{
		ResidenceID:   residenceID,
		ResidenceName: name,
		Dues:          dues,
		Fines:         fines,
		Total:         total,
	}, nil
}
