package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	MetadataBookingID = "booking_id"
	MetadataKind      = "kind"

	signatureTimestampKey = "t"
	signatureSchemeV1     = "v1"
)

var (
	ErrMalformedSignature = errors.New("malformed signature header")
	ErrSignatureMismatch  = errors.New("signature does not match payload")
	ErrSignatureExpired   = errors.New("signature timestamp outside tolerance")
	ErrMissingSecret      = errors.New("webhook secret is not configured")
)

// VerifySignature validates a "t=<unix>,v1=<hex>" header where each v1 value is
// HMAC-SHA256(secret, "<t>.<payload>"). A zero tolerance disables the age check.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if secret == "" {
		return ErrMissingSecret
	}

	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		age := now.Sub(time.Unix(timestamp, 0))
		if age > tolerance || age < -tolerance {
			return ErrSignatureExpired
		}
	}

	expected := computeSignature(payload, secret, timestamp)

	for _, candidate := range signatures {
		if hmac.Equal(expected, candidate) {
			return nil
		}
	}

	return ErrSignatureMismatch
}

// SignatureHeader builds the header the gateway would send for payload.
func SignatureHeader(payload []byte, secret string, at time.Time) string {
	timestamp := at.Unix()

	return signatureTimestampKey + "=" + strconv.FormatInt(timestamp, 10) + "," +
		signatureSchemeV1 + "=" + hex.EncodeToString(computeSignature(payload, secret, timestamp))
}

func computeSignature(payload []byte, secret string, timestamp int64) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}

func parseSignatureHeader(header string) (int64, [][]byte, error) {
	var (
		timestamp  int64
		hasTime    bool
		signatures [][]byte
	)

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, ErrMalformedSignature
		}

		switch key {
		case signatureTimestampKey:
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedSignature
			}

			timestamp = parsed
			hasTime = true
		case signatureSchemeV1:
			decoded, err := hex.DecodeString(value)
			if err != nil {
				continue
			}

			signatures = append(signatures, decoded)
		}
	}

	if !hasTime || len(signatures) == 0 {
		return 0, nil, ErrMalformedSignature
	}

	return timestamp, signatures, nil
}
