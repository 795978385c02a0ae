package totp

import "errors"

var (
	// ErrMissingSecret indicates the seed contained no secret to derive
	// codes from.
	ErrMissingSecret = errors.New("totp seed has no secret")

	// ErrUnsupportedOTPType indicates an otpauth URL for something other
	// than totp (e.g. hotp), which this package does not generate.
	ErrUnsupportedOTPType = errors.New("unsupported otpauth type")

	// ErrUnsupportedAlgorithm indicates an otpauth URL requesting a hash
	// algorithm other than sha1, sha256, or sha512.
	ErrUnsupportedAlgorithm = errors.New("unsupported totp algorithm")
)
