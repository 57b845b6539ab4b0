// Package signer derives the per-call integrity token attached to every
// backend request. The token is not a keyed MAC; it only detects accidental
// parameter tampering between the link and the backend.
package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Logical endpoint names used as signing input. These match the backend's
// endpoint registry and are independent of URL paths.
const (
	EndpointFetchAllData = "get-fetch-all-date-mgt"
	EndpointGenerateOTP  = "generate-otp-mgt"
	EndpointResendOTP    = "regenerate-otp-mgt"
	EndpointValidateOTP  = "validate-otp-mgt"
)

// Sign returns the apiCode for one call: uppercase hex SHA-256 over the
// application reference concatenated with the logical endpoint name.
func Sign(refID, endpoint string) string {
	sum := sha256.Sum256([]byte(refID + endpoint))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
