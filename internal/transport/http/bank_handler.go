package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"millionaire-service/internal/app"
	"millionaire-service/internal/bank"
)

// BankHandler serves the mock online banking endpoints.
type BankHandler struct {
	ledger  *bank.Ledger
	games   *app.GameService
	cookies sessions.Store
	log     *zap.Logger
	now     func() time.Time
}

func NewBankHandler(ledger *bank.Ledger, games *app.GameService, cookies sessions.Store, log *zap.Logger) *BankHandler {
	return &BankHandler{ledger: ledger, games: games, cookies: cookies, log: log, now: time.Now}
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type amountRequest struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient,omitempty"`
}

type winningsRequest struct {
	GameID string `json:"gameId"`
}

type transactionResponse struct {
	Transaction bank.Transaction `json:"transaction"`
	Balance     bank.Money       `json:"balance"`
	Display     string           `json:"display"`
}

func (h *BankHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.ledger.Authenticate(req.PIN); err != nil {
		writeError(w, h.log, err)
		return
	}
	cookie := loadCookie(h.cookies, r)
	cookie.setBankAuthenticated(true)
	if err := cookie.save(w, r); err != nil {
		writeError(w, h.log, fmt.Errorf("save cookie: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, h.ledger.Account())
}

func (h *BankHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie := loadCookie(h.cookies, r)
	cookie.setBankAuthenticated(false)
	if err := cookie.save(w, r); err != nil {
		h.log.Warn("save cookie", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BankHandler) Account(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Account())
}

func (h *BankHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, func(amount bank.Money, _ string) (bank.Transaction, error) {
		return h.ledger.Deposit(amount)
	})
}

func (h *BankHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, func(amount bank.Money, _ string) (bank.Transaction, error) {
		return h.ledger.Withdraw(amount)
	})
}

func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.ledger.Transfer)
}

// Winnings deposits a finished game's prize. Each game pays out once.
func (h *BankHandler) Winnings(w http.ResponseWriter, r *http.Request) {
	var req winningsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if req.GameID == "" {
		req.GameID = loadCookie(h.cookies, r).gameID()
	}
	label, err := h.games.ClaimWinnings(r.Context(), req.GameID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	amount, err := bank.FromPrizeLabel(label)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	tx, err := h.ledger.DepositWinnings(amount)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Info("winnings deposited", zap.String("game", req.GameID), zap.String("amount", amount.String()))
	h.respondTx(w, http.StatusCreated, tx)
}

// Receipt validates the deposit form, posts the deposit and returns the
// plain-text record as a download.
func (h *BankHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	var details bank.DepositDetails
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, h.log, err)
		return
	}
	amount, err := details.Validate()
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	tx, err := h.ledger.Deposit(amount)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	now := h.now()
	var buf bytes.Buffer
	if err := bank.RenderReceipt(&buf, bank.Receipt{
		Transaction: tx,
		Details:     details,
		Account:     h.ledger.Account(),
		GeneratedAt: now,
	}); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bank.ReceiptFilename(tx.ID, now)))
	w.WriteHeader(http.StatusCreated)
	_, _ = buf.WriteTo(w)
}

// RequireLogin rejects bank requests from cookies that have not logged in.
func (h *BankHandler) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !loadCookie(h.cookies, r).bankAuthenticated() {
			writeError(w, h.log, errUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *BankHandler) post(w http.ResponseWriter, r *http.Request, op func(bank.Money, string) (bank.Transaction, error)) {
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	amount, err := bank.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	tx, err := op(amount, req.Recipient)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.respondTx(w, http.StatusCreated, tx)
}

func (h *BankHandler) respondTx(w http.ResponseWriter, status int, tx bank.Transaction) {
	balance := h.ledger.Account().Balance
	writeJSON(w, status, transactionResponse{
		Transaction: tx,
		Balance:     balance,
		Display:     fmt.Sprintf("%s %s, balance %s", tx.Type, tx.Amount.Signed(), balance),
	})
}
