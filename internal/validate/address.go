// Package validate holds the boundary checks applied to trip endpoints
// before any external lookup happens.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidAddress is wrapped by every validation failure so callers can
// map the whole family to a client-error response.
var ErrInvalidAddress = errors.New("invalid address")

const (
	minAddressLen = 5
	maxAddressLen = 200
)

// SanitizeAddress collapses whitespace and strips characters that have no
// business in a street address, truncating overly long input.
func SanitizeAddress(address string) string {
	address = strings.Join(strings.Fields(address), " ")
	address = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'':
			return -1
		}
		return r
	}, address)

	if len(address) > maxAddressLen {
		// Cut on a rune boundary so a multi-byte character straddling the
		// limit does not become invalid UTF-8.
		cut := maxAddressLen
		for cut > 0 && !utf8.RuneStart(address[cut]) {
			cut--
		}
		address = address[:cut]
	}

	return address
}

// CheckAddressFormat applies basic shape checks: length limits and the
// presence of both digits and letters, which a usable street address needs.
func CheckAddressFormat(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("%w: address must not be empty", ErrInvalidAddress)
	}
	if len(address) < minAddressLen {
		return fmt.Errorf("%w: address is too short", ErrInvalidAddress)
	}
	if len(address) > maxAddressLen {
		return fmt.Errorf("%w: address is too long", ErrInvalidAddress)
	}

	hasDigit := strings.ContainsFunc(address, unicode.IsDigit)
	hasLetter := strings.ContainsFunc(address, unicode.IsLetter)
	if !hasDigit || !hasLetter {
		return fmt.Errorf("%w: address should contain both numbers and letters", ErrInvalidAddress)
	}

	return nil
}

// CheckEndpoints validates a start/end pair for trip planning.
func CheckEndpoints(start, end string) error {
	if err := CheckAddressFormat(start); err != nil {
		return fmt.Errorf("start address: %w", err)
	}
	if err := CheckAddressFormat(end); err != nil {
		return fmt.Errorf("end address: %w", err)
	}

	if strings.EqualFold(strings.TrimSpace(start), strings.TrimSpace(end)) {
		return fmt.Errorf("%w: start and end addresses must differ", ErrInvalidAddress)
	}

	return nil
}
