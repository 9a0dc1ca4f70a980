// Copyright (c) MaulingMonkey.
// Licensed under the MIT License.

package benchmarks

import (
	"testing"

	"github.com/MaulingMonkey/winstr"
	"github.com/MaulingMonkey/winstr/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The corpus must round-trip through BSTRs for the benchmarks to measure anything meaningful.
func TestCorpusRoundTrips(t *testing.T) {
	a := native.NewTrackingAllocator()
	t.Cleanup(native.Install(a))

	corpus := Corpus(12)
	require.Len(t, corpus, 12)
	for _, s := range corpus {
		bs, err := winstr.FromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, bs.String())
		assert.Equal(t, winstr.HashString(s), winstr.Hash(bs))
		bs.Free()
	}
	assert.Zero(t, a.Live())
	assert.Equal(t, int64(len(Long())), TotalBytes([]string{Long()}))
}
