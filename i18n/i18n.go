// Package i18n provides an explicit key→string translation table.
// Tables are constructed once and injected into handlers; there is no
// ambient global lookup.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Table is an immutable translation lookup for one language.
type Table struct {
	lang    string
	entries map[string]string
}

// Lang returns the language tag the table was built for.
func (t *Table) Lang() string {
	return t.lang
}

// T returns the translation for key. Unknown keys fall back to the
// built-in English entry, then to the key itself.
func (t *Table) T(key string) string {
	if v, ok := t.entries[key]; ok {
		return v
	}
	if v, ok := english[key]; ok {
		return v
	}
	return key
}

// Default returns the built-in English table.
func Default() *Table {
	return &Table{lang: "en", entries: english}
}

// Load reads <dir>/<lang>.yaml and overlays it on the English table.
func Load(dir, lang string) (*Table, error) {
	data, err := os.ReadFile(filepath.Join(dir, lang+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("read locale %q: %w", lang, err)
	}

	var loaded map[string]string
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", lang, err)
	}

	entries := make(map[string]string, len(english)+len(loaded))
	for k, v := range english {
		entries[k] = v
	}
	for k, v := range loaded {
		entries[k] = v
	}

	return &Table{lang: lang, entries: entries}, nil
}

var english = map[string]string{
	"nav.alerts":   "Alerts",
	"nav.gap":      "Funding",
	"nav.recovery": "Recovery",

	"alerts.title":       "Live Alerts",
	"alerts.subtitle":    "Search verified updates for your area",
	"alerts.placeholder": "Ask about shelters, closures, aid...",
	"alerts.search":      "Search",
	"alerts.sources":     "Sources",
	"alerts.loading":     "Fetching live updates...",

	"gap.title":        "Funding Assistance",
	"gap.tab.grants":   "Grants",
	"gap.tab.advances": "Advances",
	"gap.tab.payments": "Payments",

	"gap.grants.title": "Critical Needs Grants",
	"gap.grants.body":  "One-time grants for households with urgent, disaster-caused expenses. No repayment required.",

	"gap.advances.title": "Recovery Advances",
	"gap.advances.body":  "Short-term advances against approved assistance awards to bridge the gap until funds arrive.",

	"gap.payments.title": "Direct Payments",
	"gap.payments.body":  "Scheduled disbursements for ongoing housing and repair support, paid directly to your account.",

	"recovery.title":    "Recovery Status",
	"recovery.subtitle": "Contractor teams working in your area",
	"recovery.verified": "Verified",
	"recovery.viewlogs": "View logs",
}
