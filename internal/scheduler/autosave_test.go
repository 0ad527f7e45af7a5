package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaver struct {
	mu       sync.Mutex
	modified bool
	writes   int
	err      error
}

func (f *fakeSaver) IsModified() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.modified
}

func (f *fakeSaver) WritePersistenceXmlInformation() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.modified = false
	return nil
}

func (f *fakeSaver) setModified() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modified = true
}

func (f *fakeSaver) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func TestNewAutosave(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		enabled bool
		wantErr bool
	}{
		{"descriptor", "@every 5m", true, false},
		{"standard", "*/10 * * * *", true, false},
		{"disabled", DisabledSpec, false, false},
		{"invalid", "every five minutes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			autosave, err := NewAutosave(tt.spec, &fakeSaver{}, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.enabled, autosave.Enabled())
		})
	}
}

func TestAutosave_RunOnce(t *testing.T) {
	saver := &fakeSaver{}
	autosave, err := NewAutosave(DisabledSpec, saver, zerolog.Nop())
	require.NoError(t, err)

	written, err := autosave.RunOnce()
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, 0, saver.writeCount())

	saver.setModified()
	written, err = autosave.RunOnce()
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, 1, saver.writeCount())

	written, err = autosave.RunOnce()
	require.NoError(t, err)
	assert.False(t, written)
}

func TestAutosave_RunOnceError(t *testing.T) {
	saver := &fakeSaver{modified: true, err: errors.New("disk full")}
	autosave, err := NewAutosave(DisabledSpec, saver, zerolog.Nop())
	require.NoError(t, err)

	written, err := autosave.RunOnce()
	assert.False(t, written)
	assert.EqualError(t, err, "disk full")
}

func TestAutosave_StartStop(t *testing.T) {
	saver := &fakeSaver{modified: true}
	autosave, err := NewAutosave("@every 1s", saver, zerolog.Nop())
	require.NoError(t, err)

	autosave.Start()
	autosave.Start()
	assert.Len(t, autosave.cron.Entries(), 1)

	assert.Eventually(t, func() bool { return saver.writeCount() == 1 }, 5*time.Second, 50*time.Millisecond)

	autosave.Stop()
	autosave.Stop()
	saver.setModified()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, 1, saver.writeCount())
}

func TestAutosave_DisabledStartIsNoop(t *testing.T) {
	autosave, err := NewAutosave(DisabledSpec, &fakeSaver{modified: true}, zerolog.Nop())
	require.NoError(t, err)

	autosave.Start()
	assert.False(t, autosave.started)
	autosave.Stop()
}
