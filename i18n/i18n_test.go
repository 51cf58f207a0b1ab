package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	tr := Default()

	require.Equal(t, "en", tr.Lang())
	require.Equal(t, "Live Alerts", tr.T("alerts.title"))
	require.Equal(t, "Grants", tr.T("gap.tab.grants"))
	require.Equal(t, "missing.key", tr.T("missing.key"), "unknown keys fall back to the key itself")
}

func TestLoadOverlaysEnglish(t *testing.T) {
	dir := t.TempDir()
	locale := "alerts.title: Alertas en vivo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.yaml"), []byte(locale), 0o644))

	tr, err := Load(dir, "es")
	require.NoError(t, err)
	require.Equal(t, "es", tr.Lang())
	require.Equal(t, "Alertas en vivo", tr.T("alerts.title"))
	// Keys missing from the locale file keep their English values.
	require.Equal(t, "Recovery Status", tr.T("recovery.title"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "fr")
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("nav.alerts: [\n"), 0o644))

	_, err := Load(dir, "en")
	require.Error(t, err)
}
