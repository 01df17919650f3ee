package server

import (
	"net/http"

	"github.com/mattcarrick/folio/internal/common"
)

// --- Portfolio handlers ---

// handlePortfolioStocks handles GET /portfolio/stocks?symbol=AAPL.
func (s *Server) handlePortfolioStocks(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Missing required query parameter: symbol")
		return
	}

	valuation, err := s.app.ValuationService.ValueSymbol(r.Context(), symbol)
	if err != nil {
		WriteError(w, common.HTTPStatus(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, valuation)
}

// handlePortfolioBuckets handles GET /portfolio/buckets?name=bucket-a.
func (s *Server) handlePortfolioBuckets(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		WriteError(w, http.StatusBadRequest, "Missing required query parameter: name")
		return
	}

	valuation, err := s.app.BucketService.ValueBucket(r.Context(), name)
	if err != nil {
		WriteError(w, common.HTTPStatus(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, valuation)
}
