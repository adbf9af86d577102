// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import (
	"sync"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapabilityParser_Defaults(t *testing.T) {
	parser := NewCapabilityParser()

	assert.NotNil(t, parser.loggerFactory)
	assert.NotNil(t, parser.log)
	assert.Equal(t, AudioCodecOpus, parser.audioCodecLookup("opus"))
	assert.Equal(t, VideoCodecVP8, parser.videoCodecLookup("vp8"))
}

func TestNewCapabilityParser_Options(t *testing.T) {
	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.DefaultLogLevel = logging.LogLevelDisabled

	parser := NewCapabilityParser(
		WithLoggerFactory(loggerFactory),
		WithAudioCodecLookup(func(string) AudioCodec { return AudioCodecPCMA }),
		WithVideoCodecLookup(func(string) VideoCodec { return VideoCodecH265 }),
	)

	caps, err := parser.ParseSubscriptionCapabilities([]byte(
		`{"audio":{"format":{"codec":"opus"}},"video":{"format":{"codec":"vp8"}}}`,
	))
	require.NoError(t, err)

	// The injected resolvers replace the built-in name tables.
	assert.Equal(t, AudioCodecPCMA, caps.Audio.Codecs[0].Codec)
	assert.Equal(t, VideoCodecH265, caps.Video.Codecs[0].Codec)
}

func TestCapabilityParser_ConcurrentParses(t *testing.T) {
	parser := NewCapabilityParser()
	doc := []byte(`{"audio":{"format":{"codec":"opus","channelNum":2,"sampleRate":48000}}}`)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				caps, err := parser.ParseSubscriptionCapabilities(doc)
				assert.NoError(t, err)
				assert.Len(t, caps.Audio.Codecs, 1)
			}
		}()
	}
	wg.Wait()
}
