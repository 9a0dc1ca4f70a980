// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package winstr_test

import (
	"testing"
	"unicode/utf16"

	"github.com/MaulingMonkey/winstr"
	"github.com/MaulingMonkey/winstr/internal/native"
)

func init() {
	// Always enable tracing
	winstr.EnableTracing()
}

// tracked installs a fresh TrackingAllocator as the process allocator for the duration of t.
// Any free of a pointer that is not live fails the test.
func tracked(t *testing.T) *native.TrackingAllocator {
	t.Helper()
	a := native.NewTrackingAllocator()
	a.OnViolation = func(p *uint16) {
		t.Errorf("free of a BSTR that is not live: %p", p)
	}
	restore := native.Install(a)
	t.Cleanup(restore)
	return a
}

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
