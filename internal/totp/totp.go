// Package totp generates time-based one-time passwords from the seeds
// password managers attach to login items: either a full otpauth:// URL or a
// bare base32 secret.
package totp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pquerna/otp"
	totplib "github.com/pquerna/otp/totp"
)

const defaultPeriod = 30

// Generator produces codes for a single TOTP seed.
type Generator struct {
	secret    string
	digits    otp.Digits
	algorithm otp.Algorithm
	period    uint
}

// Parse builds a [Generator] from a seed string.
//
// Seeds starting with the otpauth scheme are parsed as otpauth://totp/ URLs
// honouring the secret, digits, algorithm (sha1, sha256, sha512), and period
// query parameters. Anything else is treated as a bare base32 secret with
// spaces stripped. Unspecified parameters fall back to the usual defaults:
// six digits, SHA-1, a 30 second period.
func Parse(seed string) (*Generator, error) {
	seed = strings.TrimSpace(seed)

	if strings.HasPrefix(strings.ToLower(seed), "otpauth:") {
		return parseURL(seed)
	}

	g := defaultGenerator(strings.ReplaceAll(seed, " ", ""))
	if g.secret == "" {
		return nil, ErrMissingSecret
	}
	return g, nil
}

func defaultGenerator(secret string) *Generator {
	return &Generator{
		secret:    secret,
		digits:    otp.DigitsSix,
		algorithm: otp.AlgorithmSHA1,
		period:    defaultPeriod,
	}
}

func parseURL(seed string) (*Generator, error) {
	u, err := url.Parse(seed)
	if err != nil {
		return nil, fmt.Errorf("parse otpauth url: %w", err)
	}

	if !strings.EqualFold(u.Host, "totp") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOTPType, u.Host)
	}

	query := u.Query()

	g := defaultGenerator(strings.ReplaceAll(query.Get("secret"), " ", ""))
	if g.secret == "" {
		return nil, ErrMissingSecret
	}

	if digits := query.Get("digits"); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > 10 {
			return nil, fmt.Errorf("invalid totp digits %q", digits)
		}
		g.digits = otp.Digits(n)
	}

	if algorithm := query.Get("algorithm"); algorithm != "" {
		switch strings.ToLower(algorithm) {
		case "sha1":
			g.algorithm = otp.AlgorithmSHA1
		case "sha256":
			g.algorithm = otp.AlgorithmSHA256
		case "sha512":
			g.algorithm = otp.AlgorithmSHA512
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
		}
	}

	if period := query.Get("period"); period != "" {
		n, err := strconv.Atoi(period)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid totp period %q", period)
		}
		g.period = uint(n)
	}

	return g, nil
}

// At returns the code valid at the given time.
func (g *Generator) At(t time.Time) (string, error) {
	code, err := totplib.GenerateCodeCustom(g.secret, t, totplib.ValidateOpts{
		Period:    g.period,
		Digits:    g.digits,
		Algorithm: g.algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("generate totp code: %w", err)
	}
	return code, nil
}

// Now returns the code valid at the current time.
func (g *Generator) Now() (string, error) {
	return g.At(time.Now())
}
