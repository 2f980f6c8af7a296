package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		for _, debug := range []bool{false, true} {
			log, err := New(json, debug)
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Equal(t, debug, log.Core().Enabled(zapcore.DebugLevel))
		}
	}
}
