package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	spaceRe   = regexp.MustCompile(`\s+`)
	dashRunRe = regexp.MustCompile(`-+`)
)

// Slugify lowercases text, strips punctuation and joins words with dashes.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonWordRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, "-")
	s = dashRunRe.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

// FormatPrice renders a rupee amount with Indian digit grouping and no fraction, e.g. ₹1,20,000.
func FormatPrice(price float64) string {
	n := int64(math.Round(price))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
