package bank

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TypeDeposit     TransactionType = "deposit"
	TypeWithdrawal  TransactionType = "withdrawal"
	TypeTransfer    TransactionType = "transfer"
	TypeQuizWinning TransactionType = "quiz_winning"
)

// TransactionStatus is the settlement state of an entry. The mock only ever
// produces completed entries; the other values exist for seeded history.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

const dateLayout = "2006-01-02"

// Transaction is one entry in the account history. Debits carry a negative Amount.
type Transaction struct {
	ID          string            `json:"id" yaml:"id"`
	Type        TransactionType   `json:"type" yaml:"type"`
	Amount      Money             `json:"amount" yaml:"amount"`
	Description string            `json:"description" yaml:"description"`
	Date        string            `json:"date" yaml:"date"`
	Status      TransactionStatus `json:"status" yaml:"status"`
}

// Account is a snapshot of the mock account.
type Account struct {
	AccountNumber string        `json:"accountNumber"`
	AccountType   string        `json:"accountType"`
	Balance       Money         `json:"balance"`
	Transactions  []Transaction `json:"transactions"`
}

// Options seeds a Ledger.
type Options struct {
	AccountNumber  string
	AccountType    string
	OpeningBalance Money
	History        []Transaction
	PINs           []string
	Now            func() time.Time
	NewID          func() string
}

// DefaultOptions mirrors the demo account shown to players.
func DefaultOptions() Options {
	return Options{
		AccountNumber:  "****-****-****-4582",
		AccountType:    "Premium Checking",
		OpeningBalance: Money(1542050),
		History: []Transaction{
			{ID: "001", Type: TypeDeposit, Amount: Dollars(2500), Description: "Salary Deposit - TechCorp Inc.", Date: "2024-06-20", Status: StatusCompleted},
			{ID: "002", Type: TypeWithdrawal, Amount: Dollars(-250), Description: "ATM Withdrawal - Downtown Branch", Date: "2024-06-19", Status: StatusCompleted},
			{ID: "003", Type: TypeTransfer, Amount: Dollars(-500), Description: "Transfer to Savings Account", Date: "2024-06-18", Status: StatusCompleted},
		},
		PINs: []string{"1234", "0000"},
	}
}

// Ledger is the in-memory mock account. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	account Account
	pins    map[string]struct{}
	now     func() time.Time
	newID   func() string
}

// NewLedger builds a ledger from opts, filling unset fields from DefaultOptions.
func NewLedger(opts Options) *Ledger {
	def := DefaultOptions()
	if opts.AccountNumber == "" {
		opts.AccountNumber = def.AccountNumber
	}
	if opts.AccountType == "" {
		opts.AccountType = def.AccountType
	}
	if len(opts.PINs) == 0 {
		opts.PINs = def.PINs
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	pins := make(map[string]struct{}, len(opts.PINs))
	for _, pin := range opts.PINs {
		pins[pin] = struct{}{}
	}
	return &Ledger{
		account: Account{
			AccountNumber: opts.AccountNumber,
			AccountType:   opts.AccountType,
			Balance:       opts.OpeningBalance,
			Transactions:  append([]Transaction(nil), opts.History...),
		},
		pins:  pins,
		now:   opts.Now,
		newID: opts.NewID,
	}
}

// Authenticate checks a login PIN.
func (l *Ledger) Authenticate(pin string) error {
	if _, ok := l.pins[strings.TrimSpace(pin)]; !ok {
		return ErrInvalidPIN
	}
	return nil
}

// Account returns a snapshot with the newest transaction first.
func (l *Ledger) Account() Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := l.account
	out.Transactions = append([]Transaction(nil), l.account.Transactions...)
	return out
}

// Deposit credits cash to the account.
func (l *Ledger) Deposit(amount Money) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	return l.post(TypeDeposit, amount, "Cash Deposit - Online Banking", 0)
}

// DepositWinnings credits quiz winnings to the account.
func (l *Ledger) DepositWinnings(amount Money) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	return l.post(TypeQuizWinning, amount, "Quiz Game Winnings - Millionaire Challenge", 0)
}

// Withdraw debits cash from the account.
func (l *Ledger) Withdraw(amount Money) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	return l.post(TypeWithdrawal, -amount, "Cash Withdrawal - Online Banking", amount)
}

// Transfer debits the account in favour of a named recipient.
func (l *Ledger) Transfer(amount Money, to string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return Transaction{}, ErrMissingRecipient
	}
	return l.post(TypeTransfer, -amount, fmt.Sprintf("Transfer to %s", to), amount)
}

// post records an entry; debit is the amount that must be covered by the balance.
func (l *Ledger) post(kind TransactionType, signed Money, description string, debit Money) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if debit > l.account.Balance {
		return Transaction{}, ErrInsufficientFunds
	}
	if signed > 0 && l.account.Balance > math.MaxInt64-signed {
		return Transaction{}, fmt.Errorf("%w: balance limit exceeded", ErrInvalidAmount)
	}
	tx := Transaction{
		ID:          l.newID(),
		Type:        kind,
		Amount:      signed,
		Description: description,
		Date:        l.now().Format(dateLayout),
		Status:      StatusCompleted,
	}
	l.account.Balance += signed
	l.account.Transactions = append([]Transaction{tx}, l.account.Transactions...)
	return tx, nil
}
