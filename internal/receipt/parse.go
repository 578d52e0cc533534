package receipt

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type reply struct {
	Date        string          `json:"date"`
	Amount      json.RawMessage `json:"amount"`
	Total       json.RawMessage `json:"total"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

var (
	jsonBlockRe = regexp.MustCompile(`\{[\s\S]*\}`)
	ordinalRe   = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	numberRe    = regexp.MustCompile(`[0-9][0-9.,]*`)
	totalLineRe = regexp.MustCompile(`(?i)\b(grand total|total|amount due|jumlah|sum)\b`)
	dateRes     = []struct {
		re     *regexp.Regexp
		layout func(m []string) string
	}{
		{regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`), func(m []string) string { return m[0] }},
		{regexp.MustCompile(`\b(\d{1,2})[/.](\d{1,2})[/.](\d{4})\b`), func(m []string) string { return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])) }},
		{regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`), func(m []string) string { return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])) }},
		{regexp.MustCompile(`\b(\d{1,2})\s+([A-Za-z]{3,})\s+(\d{4})\b`), func(m []string) string { return m[0] }},
		{regexp.MustCompile(`\b([A-Za-z]{3,})\s+(\d{1,2}),?\s+(\d{4})\b`), func(m []string) string { return m[0] }},
	}
)

// Day first, as receipts outside the US print it.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02-01-06",
	"02/01/06",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseReply reads a draft from the text a model returned.
//
// The text is parsed as JSON first. If that fails, the first block
// enclosed in braces is parsed. If there is none, the text is parsed
// as the plain text of a receipt.
func ParseReply(text string, categories []string) (Draft, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Draft{}, ErrNotRecognized
	}

	var r reply
	err := json.Unmarshal([]byte(text), &r)
	if err != nil {
		block := jsonBlockRe.FindString(text)
		if block == "" || json.Unmarshal([]byte(block), &r) != nil {
			d := parseText(text, categories)
			if d.empty() {
				return Draft{}, ErrNotRecognized
			}
			return d, nil
		}
	}

	// The prompt asks for "total", some models answer with "amount"
	amount := parseAmount(string(r.Total))
	if amount.IsZero() {
		amount = parseAmount(string(r.Amount))
	}

	d := Draft{
		Date:        parseDate(r.Date),
		Amount:      amount,
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
	}

	if d.empty() {
		return Draft{}, ErrNotRecognized
	}

	return d, nil
}

func (d Draft) empty() bool {
	return d.Date.IsZero() && d.Amount.IsZero() && d.Category == "" && d.Description == ""
}

// parseText guesses a draft from free text.
func parseText(text string, categories []string) Draft {
	return Draft{
		Date:        guessDate(text),
		Amount:      guessAmount(text),
		Category:    guessCategory(text, categories),
		Description: guessDescription(text),
	}
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(ordinalRe.ReplaceAllString(s, "$1"))
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return time.Time{}
}

// parseAmount reads a JSON number, or a JSON string with currency symbols
// and thousands separators such as "Rp 45.000" or "$1,234.50".
func parseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return decimal.Zero
	}

	var s string
	if json.Unmarshal([]byte(raw), &s) == nil {
		return parseNumber(s)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d.Abs()
}

// parseNumber reads the first number in s.
func parseNumber(s string) decimal.Decimal {
	number := numberRe.FindString(s)
	if number == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(normalizeNumber(number))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// normalizeNumber removes thousands separators and uses "." as the
// decimal separator. A separator followed by exactly three digits is a
// thousands separator unless both kinds are present.
func normalizeNumber(s string) string {
	s = strings.TrimRight(s, ".,")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	decimalSep := -1
	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimalSep = max(lastDot, lastComma)
	case lastDot >= 0 && strings.Count(s, ".") == 1 && len(s)-lastDot-1 != 3:
		decimalSep = lastDot
	case lastComma >= 0 && strings.Count(s, ",") == 1 && len(s)-lastComma-1 != 3:
		decimalSep = lastComma
	}

	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case i == decimalSep:
			b.WriteRune('.')
		}
	}
	return b.String()
}

func guessDate(text string) time.Time {
	for _, d := range dateRes {
		if m := d.re.FindStringSubmatch(text); len(m) > 0 {
			if t := parseDate(d.layout(m)); !t.IsZero() {
				return t
			}
		}
	}
	return time.Time{}
}

// guessAmount prefers the number on a line naming the total and falls
// back to the largest number in the text.
func guessAmount(text string) decimal.Decimal {
	for _, line := range nonEmptyLines(text) {
		if !totalLineRe.MatchString(line) || strings.Contains(strings.ToLower(line), "subtotal") {
			continue
		}

		numbers := numberRe.FindAllString(line, -1)
		if len(numbers) > 0 {
			return parseNumber(numbers[len(numbers)-1])
		}
	}

	largest := decimal.Zero
	for _, n := range numberRe.FindAllString(text, -1) {
		if d := parseNumber(n); d.GreaterThan(largest) {
			largest = d
		}
	}
	return largest
}

func guessCategory(text string, categories []string) string {
	l := strings.ToLower(text)
	for _, c := range categories {
		if c != "" && strings.Contains(l, strings.ToLower(c)) {
			return c
		}
	}
	return ""
}

func guessDescription(text string) string {
	for _, l := range nonEmptyLines(text) {
		if totalLineRe.MatchString(l) {
			continue
		}
		if hasLetters(l) {
			return truncate(l, 64)
		}
	}
	return ""
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if t := strings.TrimSpace(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
