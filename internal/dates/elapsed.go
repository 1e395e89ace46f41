// Package dates computes the time left on an option from the two date
// formats the feed uses.
package dates

import (
	"errors"
	"regexp"
	"time"
)

// The observation timestamp is month-first, the expiration date day-first.
// The asymmetry comes from the upstream feed and is part of the contract.
var (
	observedRe   = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(0?[1-9]|[12][0-9]|3[01])/(20[0-9][0-9]) (0?[0-9]|1[0-9]|2[0-3]):([0-5][0-9])$`)
	expirationRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

var (
	// ErrObservedFormat reports an observation timestamp that does not
	// match M/D/YYYY H:MM on a 24-hour clock.
	ErrObservedFormat = errors.New("invalid observation timestamp format")
	// ErrExpirationFormat reports an expiration date that does not match
	// DD/MM/YYYY.
	ErrExpirationFormat = errors.New("invalid expiration date format")
	// ErrExpired reports an expiration instant before the observation.
	ErrExpired = errors.New("expiration precedes observation")
)

const secondsPerYear = 365 * 24 * 60 * 60

// ValidExpiration reports whether s has the DD/MM/YYYY shape expected of a
// run's expiration date.
func ValidExpiration(s string) bool {
	return expirationRe.MatchString(s)
}

// YearsBetween returns the elapsed wall-clock time from an observation
// timestamp (M/D/YYYY H:MM) to an expiration date (DD/MM/YYYY, midnight),
// expressed in 365-day years. The expiration must not precede the
// observation; options here are forward-looking.
func YearsBetween(observed, expiration string) (float64, error) {
	if !observedRe.MatchString(observed) {
		return 0, ErrObservedFormat
	}
	if !expirationRe.MatchString(expiration) {
		return 0, ErrExpirationFormat
	}

	obs, err := time.Parse("1/2/2006 15:04", observed)
	if err != nil {
		return 0, ErrObservedFormat
	}
	exp, err := time.Parse("02/01/2006", expiration)
	if err != nil {
		return 0, ErrExpirationFormat
	}

	if exp.Before(obs) {
		return 0, ErrExpired
	}

	return exp.Sub(obs).Seconds() / secondsPerYear, nil
}
