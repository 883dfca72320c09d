package pumpfun

import (
	"errors"
	"fmt"
)

var (
	// ErrBondingCurveComplete is returned when a buy or sell is attempted
	// against a curve whose completion flag is set. A completed curve has
	// migrated its liquidity out of the program and will reject trades.
	ErrBondingCurveComplete = errors.New("bonding curve is complete")

	// ErrCalculationOverflow is returned when intermediate pricing
	// arithmetic leaves the representable range.
	ErrCalculationOverflow = errors.New("pricing calculation overflow")

	// ErrInvalidTolerance is returned for slippage tolerances above 10000
	// basis points (100%).
	ErrInvalidTolerance = errors.New("slippage tolerance exceeds 10000 basis points")

	// ErrBondingCurveNotFound is returned when no off-curve bump exists for
	// a mint's bonding curve derivation. This is a fatal precondition
	// failure, never silently substituted.
	ErrBondingCurveNotFound = errors.New("bonding curve address not found")

	// ErrAccountNotFound is returned when a required on-chain account does
	// not exist or is unfunded.
	ErrAccountNotFound = errors.New("account not found")
)

// DecodeError reports malformed account bytes: wrong length, an unknown
// discriminator, or a truncated field.
type DecodeError struct {
	Account string
	Reason  string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s account: %s: %v", e.Account, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %s account: %s", e.Account, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UploadMetadataError reports a failure while uploading token metadata to
// the external hosting service.
type UploadMetadataError struct {
	Err error
}

func (e *UploadMetadataError) Error() string {
	return fmt.Sprintf("upload token metadata: %v", e.Err)
}

func (e *UploadMetadataError) Unwrap() error { return e.Err }
