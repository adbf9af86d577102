// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import "strings"

// AudioCodec identifies an audio codec carried in a capability record.
type AudioCodec int

// Audio codecs a remote stream may be subscribed with.
const (
	AudioCodecUnknown AudioCodec = iota
	AudioCodecOpus
	AudioCodecPCMU
	AudioCodecPCMA
	AudioCodecG722
	AudioCodecISAC
	AudioCodecILBC
	AudioCodecAAC
	AudioCodecAC3
	AudioCodecASAO
)

func (c AudioCodec) String() string {
	switch c {
	case AudioCodecOpus:
		return "opus"
	case AudioCodecPCMU:
		return "pcmu"
	case AudioCodecPCMA:
		return "pcma"
	case AudioCodecG722:
		return "g722"
	case AudioCodecISAC:
		return "isac"
	case AudioCodecILBC:
		return "ilbc"
	case AudioCodecAAC:
		return "aac"
	case AudioCodecAC3:
		return "ac3"
	case AudioCodecASAO:
		return "asao"
	default:
		return "unknown"
	}
}

// NewAudioCodec resolves a wire codec name to an AudioCodec. The lookup
// is case insensitive and total: names that match no known codec map to
// AudioCodecUnknown.
func NewAudioCodec(name string) AudioCodec {
	for c := AudioCodecOpus; c <= AudioCodecASAO; c++ {
		if strings.EqualFold(name, c.String()) {
			return c
		}
	}

	return AudioCodecUnknown
}

// VideoCodec identifies a video codec carried in a capability record.
type VideoCodec int

// Video codecs a remote stream may be subscribed with.
const (
	VideoCodecUnknown VideoCodec = iota
	VideoCodecVP8
	VideoCodecVP9
	VideoCodecH264
	VideoCodecH265
)

func (c VideoCodec) String() string {
	switch c {
	case VideoCodecVP8:
		return "vp8"
	case VideoCodecVP9:
		return "vp9"
	case VideoCodecH264:
		return "h264"
	case VideoCodecH265:
		return "h265"
	default:
		return "unknown"
	}
}

// NewVideoCodec resolves a wire codec name to a VideoCodec. The lookup
// is case insensitive and total: names that match no known codec map to
// VideoCodecUnknown.
func NewVideoCodec(name string) VideoCodec {
	for c := VideoCodecVP8; c <= VideoCodecH265; c++ {
		if strings.EqualFold(name, c.String()) {
			return c
		}
	}

	return VideoCodecUnknown
}
