package handlers

import (
	"net/http"

	"github.com/settleup/settleup/internal/api/dto"
	"github.com/settleup/settleup/internal/engine"
	"github.com/settleup/settleup/internal/metrics"
)

// SettleHandler exposes the settlement engine as a pure computation
// endpoint: contributors in, transfers out, nothing persisted.
type SettleHandler struct{}

// NewSettleHandler creates a new settle handler.
func NewSettleHandler() *SettleHandler {
	return &SettleHandler{}
}

// Settle handles POST /api/settle.
func (h *SettleHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	// Fewer than two contributors is not an error here: the engine
	// settles nothing and the response carries an empty transfer list.
	if err := validateContributors(req.Contributors, false); err != nil {
		WriteError(w, http.StatusBadRequest, dto.CodeInvalidRequest, err.Error())
		return
	}

	contributors := toEngineContributors(req.Contributors)
	transfers := engine.Settle(contributors)

	metrics.SettlementsComputed.Inc()
	metrics.TransfersPerSettlement.Observe(float64(len(transfers)))

	WriteJSON(w, http.StatusOK, dto.SettleResponse{
		FairShare: engine.FairShare(contributors),
		Balances:  balancesToDTO(engine.Balances(contributors)),
		Transfers: transfersToDTO(toModelTransfers(transfers)),
	})
}
