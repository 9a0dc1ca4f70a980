// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr_test

import (
	"testing"

	"github.com/MaulingMonkey/winstr"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	winstr.SetLogger(zap.New(core))
	t.Cleanup(winstr.EnableTracing)
	return logs
}

func TestAllocationFailureIsTraced(t *testing.T) {
	logs := observe(t)
	a := tracked(t)
	a.FailAfter = 1
	keep := winstr.MustFromString("one")
	defer keep.Free()

	_, err := winstr.FromString("two")
	assert.ErrorIs(t, err, winstr.ErrOutOfMemory)
	assert.Equal(t, 1, logs.FilterMessage("BSTR allocation failed").Len())
}

func TestRejectedPointerIsTraced(t *testing.T) {
	logs := observe(t)
	a := tracked(t)
	b := winstr.MustFromString("corrupt")
	defer b.Free()

	a.SetPrefix(b.BSTR(), 7)
	_, ok := winstr.FromBSTR(b.BSTR())
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("rejected incoming BSTR").Len())
}

func TestEnableTracingReadsLevel(t *testing.T) {
	t.Setenv(winstr.LogEnv, "debug")
	winstr.EnableTracing()
	assert.True(t, winstr.Logger().Core().Enabled(zapcore.DebugLevel))

	t.Setenv(winstr.LogEnv, "error")
	winstr.EnableTracing()
	assert.False(t, winstr.Logger().Core().Enabled(zapcore.WarnLevel))

	winstr.SetLogger(nil)
	assert.False(t, winstr.Logger().Core().Enabled(zapcore.ErrorLevel))
	winstr.EnableTracing()
}
