package service

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"repoinventory/internal/core/normalize"
	"repoinventory/internal/platform/logger"
	"repoinventory/internal/services/consolidate/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logBuf receives every log line written by this package's tests
var logBuf lockedBuffer

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.Reset()
}

// entries decodes the captured lines at the given level
func (l *lockedBuffer) entries(t *testing.T, level string) []map[string]any {
	t.Helper()
	l.mu.Lock()
	raw := l.b.String()
	l.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		if m["level"] == level {
			out = append(out, m)
		}
	}
	return out
}

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: &logBuf})
	os.Exit(m.Run())
}

func TestDeduper_WarnsOncePerMalformedRow(t *testing.T) {
	fixedNow(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	logBuf.Reset()

	d := NewDeduper(normalize.New(), domain.DatePolicyNow, nil)
	d.Add(owner("Ledger", "yesterday", "first"), 2)
	// compares against the malformed winner: re-parsed, but not a new warning
	d.Add(owner("ledger", "2025-01-01T00:00:00Z", "second"), 3)
	d.Add(owner("ledger", "2025-02-01T00:00:00Z", "third"), 4)
	d.Add(owner("audit", "2025-13-01", "bad month"), 5)

	warns := logBuf.entries(t, "warn")
	require.Len(t, warns, 2, "one warning per malformed row")

	assert.Equal(t, "Ledger", warns[0]["repo"])
	assert.Equal(t, "yesterday", warns[0]["last_commit_date"])
	assert.EqualValues(t, 2, warns[0]["line"])
	assert.Equal(t, "now", warns[0]["policy"])

	assert.Equal(t, "audit", warns[1]["repo"])
	assert.Equal(t, "2025-13-01", warns[1]["last_commit_date"])
	assert.EqualValues(t, 5, warns[1]["line"])
}

func TestDeduper_NoWarningForValidDates(t *testing.T) {
	logBuf.Reset()

	d := NewDeduper(normalize.New(), domain.DatePolicyEpoch, nil)
	d.Add(owner("a", "2025-01-01T00:00:00Z", "x"), 2)
	d.Add(owner("A", "2025-02-01T00:00:00Z", "y"), 3)

	assert.Empty(t, logBuf.entries(t, "warn"))
}
