package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Signature payload limits. The capture widget serializes freehand strokes as
// vector JSON; anything beyond these bounds is rejected before storage.
const (
	MaxSignatureStrokes      = 256
	MaxSignaturePointsPerStr = 4096
)

// ErrEmptySignature is returned for a payload with no drawable content.
var ErrEmptySignature = errors.New("signature is empty")

// SignaturePoint is one sampled pen position.
type SignaturePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ParseSignature decodes and validates a vector signature payload: a JSON
// array of strokes, each stroke an array of points. An empty string or an
// array with no points counts as no signature.
func ParseSignature(raw string) ([][]SignaturePoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptySignature
	}

	var strokes [][]SignaturePoint
	if err := json.Unmarshal([]byte(raw), &strokes); err != nil {
		return nil, fmt.Errorf("invalid signature payload: %w", err)
	}

	if len(strokes) > MaxSignatureStrokes {
		return nil, fmt.Errorf("signature has too many strokes (%d)", len(strokes))
	}

	points := 0
	for _, stroke := range strokes {
		if len(stroke) > MaxSignaturePointsPerStr {
			return nil, fmt.Errorf("signature stroke has too many points (%d)", len(stroke))
		}
		points += len(stroke)
	}
	if points == 0 {
		return nil, ErrEmptySignature
	}

	return strokes, nil
}

// HasSignature reports whether raw holds a valid, non-empty signature.
func HasSignature(raw string) bool {
	_, err := ParseSignature(raw)
	return err == nil
}

var shopPhonePattern = regexp.MustCompile(`^(\+90|0)?[0-9]{10}$`)

// ValidatePhone validates a Turkish phone number, digits only with an
// optional +90/0 prefix. Empty is allowed: phone is optional everywhere.
func ValidatePhone(phone string) bool {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if phone == "" {
		return true
	}
	return shopPhonePattern.MatchString(phone)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address format. Empty is allowed.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}
