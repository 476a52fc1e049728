package server

import (
	"strconv"
	"strings"
)

// parsePage parses the page query parameter; anything unusable means page 1.
func parsePage(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 1
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed < 1 {
		return 1
	}
	return parsed
}
