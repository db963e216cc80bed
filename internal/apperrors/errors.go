package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("operation not allowed for this role")

	ErrRentalNotFound     = errors.New("rental not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrChairNotFound      = errors.New("chair not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrInvalidStatus      = errors.New("invalid rental status")
	ErrRentalCompleted    = errors.New("rental is in a terminal status")
	ErrStatusConflict     = errors.New("rental status changed concurrently")
	ErrInvalidTotalValue  = errors.New("invalid total value")
	ErrInvalidLeadInput   = errors.New("invalid lead input")
	ErrInvalidReferral    = errors.New("invalid referral code")
	ErrReferralCodeTaken  = errors.New("referral code already in use")
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrNotAPartner        = errors.New("user has no referral code")
	ErrInvalidWithdrawal  = errors.New("invalid withdrawal amount")
	ErrInsufficientFunds  = errors.New("withdrawal exceeds available balance")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrAlreadyDecided     = errors.New("withdrawal already decided")
	ErrInvalidDecision    = errors.New("invalid withdrawal decision")
)
