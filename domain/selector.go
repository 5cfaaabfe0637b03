package domain

import (
	"fmt"
	"strings"
)

type LabelSelector struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseSelector parses a selector string of the form "key1:value1,key2:value2"
// into an ordered selector. Entries without a colon are dropped; an entry with
// an empty key is rejected so a stray comma or colon cannot widen the match.
func ParseSelector(s string) ([]LabelSelector, error) {
	var selector []LabelSelector
	for _, entry := range strings.Split(s, ",") {
		if !strings.Contains(entry, ":") {
			continue
		}
		key, value, _ := strings.Cut(entry, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("label selector entry %q has an empty key", entry)
		}
		selector = append(selector, LabelSelector{Key: key, Value: value})
	}
	return selector, nil
}

// MatchLabels reports whether every selector entry is present in labels with
// an exactly equal value. An empty selector matches by convention; callers
// that must not act fleet-wide reject empty selectors before discovery.
func MatchLabels(labels map[string]string, selector []LabelSelector) bool {
	if len(selector) == 0 {
		return true
	}
	if len(labels) == 0 {
		return false
	}
	for _, sel := range selector {
		if labels[sel.Key] != sel.Value {
			return false
		}
	}
	return true
}
