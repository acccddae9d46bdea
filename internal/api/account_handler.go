package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/social-api/internal/api/shared"
	"github.com/phrazzld/social-api/internal/domain"
	"github.com/phrazzld/social-api/internal/platform/logger"
	"github.com/phrazzld/social-api/internal/service"
	"github.com/phrazzld/social-api/internal/service/auth"
)

// AccountHandler handles registration and login.
type AccountHandler struct {
	accounts   service.AccountService
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAccountHandler creates a new AccountHandler. jwtService may be nil, in
// which case no bearer token is issued.
func NewAccountHandler(
	accounts service.AccountService,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AccountHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountHandler{
		accounts:   accounts,
		jwtService: jwtService,
		logger:     logger.With("component", "account_handler"),
	}
}

// Register handles POST /register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.Account
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	account, err := h.accounts.RegisterAccount(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if !h.issueToken(w, r, account.ID) {
		return
	}

	log.Info("account registered", "account_id", account.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// Login handles POST /login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	result, err := h.accounts.LoginAccount(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	account, ok := result.Get()
	if !ok {
		log.Debug("login rejected", "username", req.Username)
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if !h.issueToken(w, r, account.ID) {
		return
	}

	log.Debug("login succeeded", "account_id", account.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, account)
}

// issueToken sets the Authorization header when tokens are enabled. It writes
// a 500 and returns false if signing fails.
func (h *AccountHandler) issueToken(w http.ResponseWriter, r *http.Request, accountID int64) bool {
	if h.jwtService == nil {
		return true
	}

	token, err := h.jwtService.GenerateToken(r.Context(), accountID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return false
	}

	w.Header().Set(AuthorizationHeader, "Bearer "+token)
	return true
}
