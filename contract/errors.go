package contract

import "github.com/pkg/errors"

// Every operation validates all preconditions before touching state; a
// returned error therefore always means "nothing changed". The sentinels
// below are the full failure taxonomy callers can match with errors.Is.
var (
	ErrNotInitialized     = errors.New("presale: contract not initialized")
	ErrAlreadyInitialized = errors.New("presale: contract already initialized")
	ErrUnauthorized       = errors.New("presale: unauthorized")

	ErrInvalidConfiguration  = errors.New("presale: invalid configuration")
	ErrInsufficientFunding   = errors.New("presale: insufficient funding")
	ErrNoSuchSale            = errors.New("presale: no such sale")
	ErrWrongPhase            = errors.New("presale: wrong phase")
	ErrDuplicateContribution = errors.New("presale: duplicate contribution")
	ErrNoSuchContribution    = errors.New("presale: no such contribution")
	ErrHardCapExceeded       = errors.New("presale: hard cap exceeded")
	ErrNotWhitelisted        = errors.New("presale: not whitelisted")
	ErrLimitViolation        = errors.New("presale: limit violation")
)

// Internal defect signals: these indicate a broken invariant, not a bad call.
// They are never expected during normal operation and tests treat them as fatal.
var (
	ErrNumericOverflow  = errors.New("presale: numeric overflow in allocation")
	ErrReserveUnderflow = errors.New("presale: reserve underflow")
	ErrCorruptState     = errors.New("presale: corrupt state record")
)
