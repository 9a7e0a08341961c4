package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AccountBucket is the ledger account an entry is booked against.
type AccountBucket string

const (
	AccountCustomer  AccountBucket = "customer"
	AccountRevenue   AccountBucket = "revenue"
	AccountOperating AccountBucket = "operating"
)

// EntryType tags why an entry was posted.
type EntryType string

const (
	EntryTypeTransfer   EntryType = "transfer"
	EntryTypeFee        EntryType = "fee"
	EntryTypeSettlement EntryType = "settlement"
)

// MoneyScale is the number of decimal places money is posted at. Journal
// columns hold more, so anything finer would round per row on insert.
const MoneyScale = 2

// HasMoneyScale reports whether amount carries no digits past MoneyScale.
func HasMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyScale))
}

var (
	ErrEntryMissingReference = errors.New("ledger entry has no transaction reference")
	ErrEntryNegativeAmount   = errors.New("ledger entry has a negative amount")
	ErrEntryOneSided         = errors.New("ledger entry must have exactly one non-zero side")
	ErrEntryUnknownAccount   = errors.New("ledger entry has an unknown account bucket")
)

// LedgerEntry is one row of the append-only journal. IDs are ULIDs so
// entries sort by posting time.
type LedgerEntry struct {
	ID             string            `json:"id"`
	TransactionRef string            `json:"transaction_ref"`
	EntryDate      time.Time         `json:"entry_date"`
	Account        AccountBucket     `json:"account"`
	Debit          decimal.Decimal   `json:"debit"`
	Credit         decimal.Decimal   `json:"credit"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description"`
	EntryType      EntryType         `json:"entry_type"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// Validate checks the single-entry invariants. Balance across a set of
// entries is the caller's responsibility.
func (e *LedgerEntry) Validate() error {
	if e.TransactionRef == "" {
		return ErrEntryMissingReference
	}
	switch e.Account {
	case AccountCustomer, AccountRevenue, AccountOperating:
	default:
		return ErrEntryUnknownAccount
	}
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return ErrEntryNegativeAmount
	}
	if e.Debit.IsZero() == e.Credit.IsZero() {
		return ErrEntryOneSided
	}
	return nil
}

// DebitEntry builds a debit against account.
func DebitEntry(ref string, account AccountBucket, amount decimal.Decimal, currency, description string, entryType EntryType) LedgerEntry {
	return LedgerEntry{
		TransactionRef: ref,
		Account:        account,
		Debit:          amount,
		Credit:         decimal.Zero,
		Currency:       currency,
		Description:    description,
		EntryType:      entryType,
	}
}

// CreditEntry builds a credit against account.
func CreditEntry(ref string, account AccountBucket, amount decimal.Decimal, currency, description string, entryType EntryType) LedgerEntry {
	return LedgerEntry{
		TransactionRef: ref,
		Account:        account,
		Debit:          decimal.Zero,
		Credit:         amount,
		Currency:       currency,
		Description:    description,
		EntryType:      entryType,
	}
}

// LedgerTotals sums both sides of a set of entries.
func LedgerTotals(entries []LedgerEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// IsBalanced reports whether total debits equal total credits.
func IsBalanced(entries []LedgerEntry) bool {
	d, c := LedgerTotals(entries)
	return d.Equal(c)
}
