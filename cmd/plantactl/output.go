package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseWhen acepta RFC 3339 o YYYY-MM-DD (UTC).
func parseWhen(flag, raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --%s %q: se espera RFC 3339 o YYYY-MM-DD", flag, raw)
}

func parseWindow(from, to string) (time.Time, time.Time, error) {
	f, err := parseWhen("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := parseWhen("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return f, t, nil
}
