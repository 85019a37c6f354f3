package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// PhoneNumber is either a known country code + number pair or Unknown.
// The backend sends each part as a number, a numeric string or null.
type PhoneNumber struct {
	known       bool
	CountryCode string
	Number      string
}

// UnknownPhone returns the Unknown variant.
func UnknownPhone() PhoneNumber {
	return PhoneNumber{}
}

// KnownPhone returns a known phone number. Empty parts yield Unknown.
func KnownPhone(countryCode, number string) PhoneNumber {
	countryCode = strings.TrimPrefix(strings.TrimSpace(countryCode), "+")
	number = strings.TrimSpace(number)
	if !isDigits(countryCode) || !isDigits(number) {
		return UnknownPhone()
	}
	return PhoneNumber{known: true, CountryCode: countryCode, Number: number}
}

// Known reports whether both parts of the number are present.
func (p PhoneNumber) Known() bool {
	return p.known
}

// String renders "+<cc><number>", or "N/A" for Unknown.
func (p PhoneNumber) String() string {
	if !p.known {
		return "N/A"
	}
	return "+" + p.CountryCode + p.Number
}

// MobileWire is the backend's nested phone representation.
type MobileWire struct {
	CountryCode  json.RawMessage `json:"countryCode"`
	MobileNumber json.RawMessage `json:"mobileNumber"`
}

// NewMobileWire builds a numeric wire value.
func NewMobileWire(countryCode, number int64) *MobileWire {
	return &MobileWire{
		CountryCode:  json.RawMessage(strconv.FormatInt(countryCode, 10)),
		MobileNumber: json.RawMessage(strconv.FormatInt(number, 10)),
	}
}

// Phone converts the wire value into a PhoneNumber.
func (m *MobileWire) Phone() PhoneNumber {
	if m == nil {
		return UnknownPhone()
	}
	cc, ok := phonePart(m.CountryCode)
	if !ok {
		return UnknownPhone()
	}
	num, ok := phonePart(m.MobileNumber)
	if !ok {
		return UnknownPhone()
	}
	return KnownPhone(cc, num)
}

func phonePart(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimPrefix(strings.TrimSpace(s), "+")
		return s, isDigits(s)
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", false
	}
	if f < 0 || f != math.Trunc(f) {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
