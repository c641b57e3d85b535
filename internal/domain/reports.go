package domain

import "github.com/shopspring/decimal"

// RejectedOperation records an operation the account refused and why.
type RejectedOperation struct {
	Operation Operation `json:"operation"`
	Reason    string    `json:"reason"`
}

// ReplayReport is the top-level structure for the JSON output of a journal replay.
type ReplayReport struct {
	AccountID    string              `json:"account_id"`
	Applied      int                 `json:"applied"`
	Rejected     []RejectedOperation `json:"rejected"`
	FinalBalance decimal.Decimal     `json:"final_balance"`
}
