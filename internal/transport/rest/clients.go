package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/service/client"
)

type clientService interface {
	ListClients(ctx context.Context, q client.ClientQuery) ([]domain.Client, error)
	GetClient(ctx context.Context, id int64) (*domain.Client, error)
	CreateClient(ctx context.Context, input client.ClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, input client.ClientInput) error
	DeleteClient(ctx context.Context, id int64) error
	RecentSearches() []domain.SearchParameter
	RecentSearchesFromStore(ctx context.Context) ([]domain.SearchParameter, error)
}

// ClientHandler serves /api/clients endpoints.
type ClientHandler struct {
	svc clientService
	log *slog.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc clientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: logger.With("handler", "clients")}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type clientRequest struct {
	Email        string           `json:"email"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	MobileNumber string           `json:"mobileNumber"`
	PersonalID   string           `json:"personalId"`
	Sex          *int             `json:"sex"`
	Address      *addressPayload  `json:"address"`
	Accounts     []accountPayload `json:"accounts"`
	ProfilePhoto *string          `json:"profilePhoto"`
}

type addressPayload struct {
	ID      int64  `json:"id,omitempty"`
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
	ZipCode string `json:"zipCode"`
}

type accountPayload struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Currency      string `json:"currency"`
}

type clientResponse struct {
	ID           int64            `json:"id"`
	Email        string           `json:"email"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	MobileNumber string           `json:"mobileNumber"`
	PersonalID   string           `json:"personalId"`
	Sex          int              `json:"sex"`
	AddressID    int64            `json:"addressId"`
	Address      *addressPayload  `json:"address"`
	Accounts     []accountPayload `json:"accounts"`
	ProfilePhoto string           `json:"profilePhoto"`
}

type searchEntry struct {
	Search   string `json:"search"`
	Sort     string `json:"sort"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type storedSearchEntry struct {
	ID        int64     `json:"id"`
	Search    string    `json:"search"`
	Sort      string    `json:"sort"`
	Page      int       `json:"page"`
	PageSize  int       `json:"pageSize"`
	CreatedAt time.Time `json:"createdAt"`
}

func (req clientRequest) toInput() client.ClientInput {
	in := client.ClientInput{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		PersonalID:   req.PersonalID,
		Sex:          req.Sex,
		ProfilePhoto: req.ProfilePhoto,
	}
	if req.Address != nil {
		in.Address = &client.AddressInput{
			Country: req.Address.Country,
			City:    req.Address.City,
			Street:  req.Address.Street,
			ZipCode: req.Address.ZipCode,
		}
	}
	for _, a := range req.Accounts {
		in.Accounts = append(in.Accounts, client.AccountInput{
			ID:            a.ID,
			AccountNumber: a.AccountNumber,
			Currency:      a.Currency,
		})
	}
	return in
}

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		ID:           c.ID,
		Email:        c.Email,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		MobileNumber: c.MobileNumber,
		PersonalID:   c.PersonalID,
		Sex:          int(c.Sex),
		AddressID:    c.AddressID,
		Accounts:     make([]accountPayload, 0, len(c.Accounts)),
		ProfilePhoto: c.ProfilePhoto,
	}
	if c.Address != nil {
		resp.Address = &addressPayload{
			ID:      c.Address.ID,
			Country: c.Address.Country,
			City:    c.Address.City,
			Street:  c.Address.Street,
			ZipCode: c.Address.ZipCode,
		}
	}
	for _, a := range c.Accounts {
		resp.Accounts = append(resp.Accounts, accountPayload{
			ID:            a.ID,
			AccountNumber: a.AccountNumber,
			Currency:      a.Currency,
		})
	}
	return resp
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List handles GET /api/clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := client.ClientQuery{
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}

	var err error
	if query.Page, err = intParam(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	if query.PageSize, err = intParam(q.Get("pageSize")); err != nil {
		writeError(w, http.StatusBadRequest, "pageSize must be an integer")
		return
	}

	clients, err := h.svc.ListClients(r.Context(), query)
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	resp := make([]clientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, toClientResponse(&clients[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err, clientNotFound(id))
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Create handles POST /api/clients/addClientWithAccounts.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClient(w, r)
	if !ok {
		return
	}

	c, err := h.svc.CreateClient(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/clients/%d", c.ID))
	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

// Update handles PUT /api/clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeClient(w, r)
	if !ok {
		return
	}

	if err := h.svc.UpdateClient(r.Context(), id, req.toInput()); err != nil {
		handleError(h.log, w, r, err, clientNotFound(id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteClient(r.Context(), id); err != nil {
		handleError(h.log, w, r, err, clientNotFound(id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchHistory handles GET /api/clients/search-history.
func (h *ClientHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.RecentSearches()
	resp := make([]searchEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, searchEntry{Search: e.Search, Sort: e.Sort, Page: e.Page, PageSize: e.PageSize})
	}
	writeJSON(w, http.StatusOK, resp)
}

// StoredSearchHistory handles GET /api/clients/search-history-db.
func (h *ClientHandler) StoredSearchHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.RecentSearchesFromStore(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "")
		return
	}

	resp := make([]storedSearchEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, storedSearchEntry{
			ID:        e.ID,
			Search:    e.Search,
			Sort:      e.Sort,
			Page:      e.Page,
			PageSize:  e.PageSize,
			CreatedAt: e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func clientNotFound(id int64) string {
	return fmt.Sprintf("Client with ID %d not found.", id)
}

// intParam parses an optional integer query parameter. Empty means 0.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func decodeClient(w http.ResponseWriter, r *http.Request) (clientRequest, bool) {
	var req clientRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	switch {
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "Client data is required.")
		return req, false
	case err != nil:
		writeError(w, http.StatusBadRequest, msgBadBody)
		return req, false
	}
	return req, true
}
