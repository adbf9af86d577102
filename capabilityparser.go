// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

// Package conference implements the conference-side core of a Go
// conferencing client built on Pion WebRTC. It turns the media-info
// documents a conference server attaches to its remote streams into
// typed capability records the subscription workflow consumes.
package conference

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pion/logging"
)

// CapabilityParser decodes server-supplied media-info documents into
// SubscriptionCapabilities. A parser holds no per-call state and is
// safe for concurrent use.
type CapabilityParser struct {
	loggerFactory    logging.LoggerFactory
	log              logging.LeveledLogger
	audioCodecLookup func(name string) AudioCodec
	videoCodecLookup func(name string) VideoCodec
}

// NewCapabilityParser creates a CapabilityParser, applying any supplied
// options before falling back to defaults.
func NewCapabilityParser(options ...func(*CapabilityParser)) *CapabilityParser {
	p := &CapabilityParser{}

	for _, o := range options {
		o(p)
	}

	if p.loggerFactory == nil {
		p.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	if p.audioCodecLookup == nil {
		p.audioCodecLookup = NewAudioCodec
	}
	if p.videoCodecLookup == nil {
		p.videoCodecLookup = NewVideoCodec
	}

	p.log = p.loggerFactory.NewLogger("capability")

	return p
}

// WithLoggerFactory allows providing a LoggerFactory to the parser.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) func(*CapabilityParser) {
	return func(p *CapabilityParser) {
		p.loggerFactory = loggerFactory
	}
}

// WithAudioCodecLookup replaces the audio codec name resolver. The
// resolver must be total: unknown names map to a sentinel, never fail.
func WithAudioCodecLookup(lookup func(name string) AudioCodec) func(*CapabilityParser) {
	return func(p *CapabilityParser) {
		p.audioCodecLookup = lookup
	}
}

// WithVideoCodecLookup replaces the video codec name resolver.
func WithVideoCodecLookup(lookup func(name string) VideoCodec) func(*CapabilityParser) {
	return func(p *CapabilityParser) {
		p.videoCodecLookup = lookup
	}
}

var jsonNull = []byte("null")

// ParseSubscriptionCapabilities decodes one raw media-info document.
// Passing a nil or JSON null document is a caller contract violation
// and returns ErrNilMediaInfo. A document without an audio or video
// section is valid; the matching half of the result is nil.
func (p *CapabilityParser) ParseSubscriptionCapabilities(raw []byte) (*SubscriptionCapabilities, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, ErrNilMediaInfo
	}

	var info mediaInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMediaInfo, err)
	}

	caps := &SubscriptionCapabilities{}

	if info.Audio != nil {
		caps.Audio = p.parseAudioCapabilities(info.Audio)
	}

	if info.Video != nil {
		video, err := p.parseVideoCapabilities(info.Video)
		if err != nil {
			return nil, err
		}
		caps.Video = video
	}

	p.log.Tracef("parsed media info: audio=%v video=%v", caps.Audio != nil, caps.Video != nil)

	return caps, nil
}
