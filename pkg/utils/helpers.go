package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ReplaceQueryParams rewrites :name placeholders into positional $n args.
func ReplaceQueryParams(namedQuery string, params map[string]interface{}) (string, []interface{}) {
	var (
		i    int = 1
		args []interface{}
	)

	for k, v := range params {
		if k != "" {
			namedQuery = strings.ReplaceAll(namedQuery, ":"+k, "$"+strconv.Itoa(i))

			args = append(args, v)
			i++
		}
	}

	return namedQuery, args
}

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CompactSQL flattens a multi-line query into one log-friendly line.
func CompactSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

// NormalizePhone strips every non-digit rune; wa.me links want bare digits
// with the country code, no plus sign.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}
