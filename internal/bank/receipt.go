package bank

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

// DepositDetails is the three-step form filled in before a receipt is issued.
type DepositDetails struct {
	BeneficiaryName    string `json:"beneficiaryName"`
	BeneficiaryAccount string `json:"beneficiaryAccount"`
	BeneficiaryIFSC    string `json:"beneficiaryIfsc"`
	PaymentType        string `json:"paymentType"`
	Amount             string `json:"amount"`
	Remark             string `json:"remark"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
}

// Validate checks the form step by step and reports the first incomplete one.
func (d DepositDetails) Validate() (Money, error) {
	if blank(d.BeneficiaryName) || blank(d.BeneficiaryAccount) || blank(d.BeneficiaryIFSC) {
		return 0, fmt.Errorf("%w: step 1 needs beneficiary name, account and IFSC", ErrIncompleteDetails)
	}
	if blank(d.PaymentType) {
		return 0, fmt.Errorf("%w: step 2 needs a payment type", ErrIncompleteDetails)
	}
	amount, err := ParseAmount(d.Amount)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("%w: step 2 needs a positive amount", ErrIncompleteDetails)
	}
	if blank(d.Mobile) || blank(d.Email) {
		return 0, fmt.Errorf("%w: step 3 needs mobile and email", ErrIncompleteDetails)
	}
	return amount, nil
}

// Receipt is everything printed on a deposit record.
type Receipt struct {
	Transaction Transaction
	Details     DepositDetails
	Account     Account
	GeneratedAt time.Time
}

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"upper":     strings.ToUpper,
	"orNA":      orNA,
	"timestamp": func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
}).Parse(`
=== Deposit Transaction Record ===
Transaction ID: {{.Transaction.ID}}
Date: {{.Transaction.Date}}
Amount: {{.Transaction.Amount}}
Description: {{.Transaction.Description}}
Status: {{.Transaction.Status}}

=== Beneficiary Information ===
Beneficiary Name: {{.Details.BeneficiaryName}}
Account Number: {{.Details.BeneficiaryAccount}}
IFSC Code: {{upper .Details.BeneficiaryIFSC}}

=== Payment Details ===
Payment Type: {{.Details.PaymentType}}
Remark: {{orNA .Details.Remark}}

=== Contact Information ===
Mobile Number: {{.Details.Mobile}}
Email Address: {{.Details.Email}}

=== Your Account Details ===
Account Number: {{.Account.AccountNumber}}
Account Type: {{.Account.AccountType}}
Current Balance: {{.Account.Balance}}

=== Important Notes ===
- Keep this transaction record for your reference
- For any disputes, quote Transaction ID: {{.Transaction.ID}}
- This is an auto-generated record from a demo account; no money was moved

Generated on: {{timestamp .GeneratedAt}}
`))

// RenderReceipt writes the plain-text deposit record.
func RenderReceipt(w io.Writer, r Receipt) error {
	if err := receiptTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return nil
}

// ReceiptFilename names the downloaded record.
func ReceiptFilename(txID string, at time.Time) string {
	return fmt.Sprintf("Deposit_%s_%s.txt", txID, at.Format(dateLayout))
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func orNA(s string) string {
	if blank(s) {
		return "N/A"
	}
	return s
}
