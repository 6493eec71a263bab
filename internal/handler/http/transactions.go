// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/utils"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/go-chi/chi/v5"
)

// Query parameters accepted by GET /transactions.
const (
	paramSkip      = "skip"
	paramLimit     = "limit"
	paramType      = "type"
	paramCategory  = "category"
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req models.TransactionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return
	}

	created, err := h.services.TransactionService.Create(ctx, principal, req)
	if err != nil {
		log.Err(err).Msg("transaction creation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	filter, err := parseTransactionFilter(r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid transaction filter")
		writeServiceError(w, err)
		return
	}

	page, err := h.services.TransactionService.List(ctx, principal, filter)
	if err != nil {
		log.Err(err).Msg("transaction listing failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	summary, err := h.services.TransactionService.Summary(ctx, principal)
	if err != nil {
		log.Err(err).Msg("summary calculation failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := transactionIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeServiceError(w, err)
		return
	}

	transaction, err := h.services.TransactionService.Get(ctx, principal, id)
	if err != nil {
		log.Err(err).Int64("transaction_id", id).Msg("transaction lookup failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, transaction, http.StatusOK)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := transactionIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeServiceError(w, err)
		return
	}

	var req models.TransactionUpdate
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeServiceError(w, ErrInvalidJSON)
		return
	}

	updated, err := h.services.TransactionService.Update(ctx, principal, id, req)
	if err != nil {
		log.Err(err).Int64("transaction_id", id).Msg("transaction update failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := principalOrUnauthorized(w, r)
	if !ok {
		return
	}

	id, err := transactionIDFromPath(r)
	if err != nil {
		log.Err(err).Send()
		writeServiceError(w, err)
		return
	}

	if err = h.services.TransactionService.Delete(ctx, principal, id); err != nil {
		log.Err(err).Int64("transaction_id", id).Msg("transaction deletion failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Transaction deleted"}, http.StatusOK)
}

// principalOrUnauthorized reads the user stored by the auth middleware.
// When it is missing the request is answered with 401 and ok is false.
func principalOrUnauthorized(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in request context")
		unauthorized(w)
	}
	return principal, ok
}

func transactionIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTransactionID, raw)
	}
	return id, nil
}

// parseTransactionFilter reads the listing query string. A missing limit
// means the default page size; an explicit limit=0 is kept. Paging and date
// range semantics are checked later by the service.
func parseTransactionFilter(query url.Values) (models.TransactionFilter, error) {
	var err error
	filter := models.TransactionFilter{Limit: models.DefaultTransactionLimit}

	if raw := query.Get(paramSkip); raw != "" {
		if filter.Skip, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return filter, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramSkip)
		}
	}
	if raw := query.Get(paramLimit); raw != "" {
		if filter.Limit, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return filter, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramLimit)
		}
	}
	if raw := query.Get(paramType); raw != "" {
		t := models.TransactionType(raw)
		if !t.Valid() {
			return filter, fmt.Errorf("%w: %s", ErrInvalidQueryParam, paramType)
		}
		filter.Type = &t
	}
	if raw := query.Get(paramCategory); raw != "" {
		filter.Category = &raw
	}
	if filter.StartDate, err = parseDateParam(query, paramStartDate); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDateParam(query, paramEndDate); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseDateParam(query url.Values, name string) (*models.Date, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQueryParam, name)
	}
	return &d, nil
}
