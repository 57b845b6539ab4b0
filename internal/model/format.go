package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatAmountBDT renders a taka amount in crore/lakh units for the loan
// amount hero. Unparseable input renders raw.
func FormatAmountBDT(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	switch {
	case n >= 10000000:
		return fmt.Sprintf("%.2f Cr", float64(n)/10000000)
	case n >= 100000:
		return fmt.Sprintf("%.2f L", float64(n)/100000)
	default:
		return GroupDigits(strconv.FormatInt(n, 10))
	}
}

// FormatEMI renders the monthly installment with digit grouping.
// Unparseable input renders raw.
func FormatEMI(raw string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return raw
	}
	return GroupDigits(strconv.FormatInt(n, 10))
}

// GroupDigits inserts commas in the South Asian grouping used on the page:
// the last three digits, then pairs (12,34,567).
func GroupDigits(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	head := digits[:len(digits)-3]
	out := digits[len(digits)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	out = head + "," + out
	if neg {
		return "-" + out
	}
	return out
}

// dateLayouts are the wire formats the backend has been seen to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006 15:04:05",
}

// FormatDate renders a wire date as "02 Jan 2006". Unparseable input
// renders raw; empty input renders empty.
func FormatDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02 Jan 2006")
		}
	}
	return raw
}
