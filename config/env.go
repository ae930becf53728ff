package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// MustEnv returns the value of a required environment variable and
// aborts synthesis when it is missing.
func MustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("WARNING: %s environment variable is required!", key)
	}
	return value
}

// EnvOrDefault returns the value of an environment variable, or the
// given fallback when it is unset or empty.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SplitList parses a comma-separated environment value into a list,
// trimming whitespace and dropping empty entries. The result is never
// nil so callers can embed it straight into the rule payload.
func SplitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// ParseCodePoints parses a comma-separated list of decimal Unicode code
// points (the ord() values of the characters to require in a tweet).
func ParseCodePoints(raw string) ([]int, error) {
	points := []int{}
	for _, item := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		point, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid code point %q: %w", trimmed, err)
		}
		points = append(points, point)
	}
	return points, nil
}
