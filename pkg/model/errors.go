// SPDX-License-Identifier: MIT

package model

// Error is a sentinel error type
type Error string

const (
	ErrASNNotFound   Error = "ASN not found in PeeringDB"
	ErrCacheMiss     Error = "key not found in cache"
	ErrCacheClosed   Error = "cache is closed"
	ErrInvalidFormat Error = "invalid output format"
	ErrRateLimited   Error = "rate limited by upstream service"
)

func (e Error) Error() string {
	return string(e)
}
