package models

// PartnerBalance is the read-time reconciliation of a partner's ledger. It is
// recomputed from rentals and withdrawals on every read and never comes from
// the stored referral_balance field; Posted carries that stored field so the
// two figures can be compared by callers.
type PartnerBalance struct {
	Earned    float64 `json:"earned"`
	Pending   float64 `json:"pending"`
	Withdrawn float64 `json:"withdrawn"`
	Available float64 `json:"available"`
	Posted    float64 `json:"posted"`
}
