// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import (
	"github.com/pion/webrtc/v4"
)

// Video capability records carry no clock rate on the wire; RTP video
// codecs universally use 90000.
const videoClockRate = 90000

// RTPCodecCapability converts the parameters to the Pion capability
// record a MediaEngine accepts. Codecs without a registered RTP mime
// type are mapped to "audio/<name>".
func (a AudioCodecParameters) RTPCodecCapability() webrtc.RTPCodecCapability {
	return webrtc.RTPCodecCapability{
		MimeType:  audioMimeType(a.Codec),
		ClockRate: uint32(a.SampleRate),
		Channels:  uint16(a.ChannelCount),
	}
}

// RTPCodecCapability converts the parameters to the Pion capability
// record a MediaEngine accepts.
func (v VideoCodecParameters) RTPCodecCapability() webrtc.RTPCodecCapability {
	return webrtc.RTPCodecCapability{
		MimeType:  videoMimeType(v.Codec),
		ClockRate: videoClockRate,
	}
}

// RTPCapabilities converts the audio capability set for use with a Pion
// MediaEngine, preserving codec order.
func (a *AudioSubscriptionCapabilities) RTPCapabilities() webrtc.RTPCapabilities {
	codecs := make([]webrtc.RTPCodecCapability, 0, len(a.Codecs))
	for _, c := range a.Codecs {
		codecs = append(codecs, c.RTPCodecCapability())
	}

	return webrtc.RTPCapabilities{Codecs: codecs}
}

// RTPCapabilities converts the video capability set for use with a Pion
// MediaEngine, preserving codec order.
func (v *VideoSubscriptionCapabilities) RTPCapabilities() webrtc.RTPCapabilities {
	codecs := make([]webrtc.RTPCodecCapability, 0, len(v.Codecs))
	for _, c := range v.Codecs {
		codecs = append(codecs, c.RTPCodecCapability())
	}

	return webrtc.RTPCapabilities{Codecs: codecs}
}

func audioMimeType(c AudioCodec) string {
	switch c {
	case AudioCodecOpus:
		return webrtc.MimeTypeOpus
	case AudioCodecPCMU:
		return webrtc.MimeTypePCMU
	case AudioCodecPCMA:
		return webrtc.MimeTypePCMA
	case AudioCodecG722:
		return webrtc.MimeTypeG722
	default:
		return "audio/" + c.String()
	}
}

func videoMimeType(c VideoCodec) string {
	switch c {
	case VideoCodecVP8:
		return webrtc.MimeTypeVP8
	case VideoCodecVP9:
		return webrtc.MimeTypeVP9
	case VideoCodecH264:
		return webrtc.MimeTypeH264
	case VideoCodecH265:
		return webrtc.MimeTypeH265
	default:
		return "video/" + c.String()
	}
}
