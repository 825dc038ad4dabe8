package handlers

import (
	"github.com/settleup/settleup/internal/api/dto"
	"github.com/settleup/settleup/internal/engine"
	"github.com/settleup/settleup/internal/models"
)

func toEngineContributors(contributors []dto.ContributorRequest) []engine.Contributor {
	out := make([]engine.Contributor, len(contributors))
	for i, c := range contributors {
		out[i] = engine.Contributor{Name: c.Name, AmountPaid: c.AmountPaid}
	}
	return out
}

func modelToEngineContributors(contributors []models.Contributor) []engine.Contributor {
	out := make([]engine.Contributor, len(contributors))
	for i, c := range contributors {
		out[i] = engine.Contributor{Name: c.Name, AmountPaid: c.AmountPaid}
	}
	return out
}

func toModelContributors(contributors []dto.ContributorRequest) []models.Contributor {
	out := make([]models.Contributor, len(contributors))
	for i, c := range contributors {
		out[i] = models.Contributor{Name: c.Name, AmountPaid: c.AmountPaid}
	}
	return out
}

func toModelTransfers(transfers []engine.Transfer) []models.Transfer {
	out := make([]models.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = models.Transfer{From: t.From, To: t.To, Amount: t.Amount}
	}
	return out
}

func balancesToDTO(balances []engine.Balance) []dto.BalanceResponse {
	out := make([]dto.BalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = dto.BalanceResponse{Name: b.Name, Net: b.Net}
	}
	return out
}

func transfersToDTO(transfers []models.Transfer) []dto.TransferResponse {
	// Always a non-nil slice so the JSON is [] rather than null.
	out := make([]dto.TransferResponse, len(transfers))
	for i, t := range transfers {
		out[i] = dto.TransferResponse{From: t.From, To: t.To, Amount: t.Amount}
	}
	return out
}

// splitToResponse builds the full split view. Fair share and balances
// are cheap pure derivations, so they are recomputed rather than
// stored.
func splitToResponse(split *models.Split) dto.SplitResponse {
	contributors := make([]dto.ContributorResponse, len(split.Contributors))
	for i, c := range split.Contributors {
		contributors[i] = dto.ContributorResponse{Name: c.Name, AmountPaid: c.AmountPaid}
	}

	ec := modelToEngineContributors(split.Contributors)
	return dto.SplitResponse{
		ID:           split.ID,
		Title:        split.Title,
		Currency:     split.Currency,
		Contributors: contributors,
		FairShare:    engine.FairShare(ec),
		Balances:     balancesToDTO(engine.Balances(ec)),
		Transfers:    transfersToDTO(split.Transfers),
		CreatedAt:    split.CreatedAt,
	}
}

func splitToSummary(split *models.Split) dto.SplitSummary {
	total := 0.0
	for _, c := range split.Contributors {
		total += c.AmountPaid
	}
	return dto.SplitSummary{
		ID:               split.ID,
		Title:            split.Title,
		Currency:         split.Currency,
		Total:            total,
		ContributorCount: len(split.Contributors),
		CreatedAt:        split.CreatedAt,
	}
}
