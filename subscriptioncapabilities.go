// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import (
	"fmt"
)

// AudioSubscriptionCapabilities lists the audio encodings a remote
// stream may be subscribed with. Codecs is never empty: its first entry
// is the mandatory format the stream is published with, followed by the
// optional alternates in document order.
type AudioSubscriptionCapabilities struct {
	Codecs []AudioCodecParameters
}

// VideoSubscriptionCapabilities lists the video encodings and encoding
// parameters a remote stream may be subscribed with. Codecs is never
// empty and starts with the mandatory format. The remaining lists start
// with the baseline value from the stream's parameters block (when the
// server sent one) followed by the optional alternates in document
// order; their lengths are independent of each other.
type VideoSubscriptionCapabilities struct {
	Codecs             []VideoCodecParameters
	Resolutions        []Resolution
	FrameRates         []int
	BitrateMultipliers []float64
	KeyFrameIntervals  []int
}

// SubscriptionCapabilities indicates the audio or/and video options a
// client may use to subscribe a remote stream. Subscribing with options
// beyond these capabilities may cause failure. A nil Audio or Video
// means the stream carries no track of that medium.
type SubscriptionCapabilities struct {
	Audio *AudioSubscriptionCapabilities
	Video *VideoSubscriptionCapabilities
}

// Wire shape of the media-info document the conference server attaches
// to a remote stream. Optional sections decode as nil pointers so their
// absence is observable after unmarshalling.
type mediaInfo struct {
	Audio *audioInfo `json:"audio"`
	Video *videoInfo `json:"video"`
}

type audioFormatInfo struct {
	Codec      string `json:"codec"`
	ChannelNum int    `json:"channelNum"`
	SampleRate int    `json:"sampleRate"`
}

type audioOptionalInfo struct {
	Format []audioFormatInfo `json:"format"`
}

type audioInfo struct {
	Format   audioFormatInfo    `json:"format"`
	Optional *audioOptionalInfo `json:"optional"`
}

type videoFormatInfo struct {
	Codec string `json:"codec"`
}

type resolutionInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type videoParametersInfo struct {
	Resolution       *resolutionInfo `json:"resolution"`
	Framerate        int             `json:"framerate"`
	KeyFrameInterval int             `json:"keyFrameInterval"`
}

type videoOptionalParametersInfo struct {
	Resolution       []resolutionInfo `json:"resolution"`
	Framerate        []int            `json:"framerate"`
	Bitrate          []string         `json:"bitrate"`
	KeyFrameInterval []int            `json:"keyFrameInterval"`
}

type videoOptionalInfo struct {
	Format     []videoFormatInfo            `json:"format"`
	Parameters *videoOptionalParametersInfo `json:"parameters"`
}

type videoInfo struct {
	Format     videoFormatInfo      `json:"format"`
	Parameters *videoParametersInfo `json:"parameters"`
	Optional   *videoOptionalInfo   `json:"optional"`
}

func (p *CapabilityParser) parseAudioCapabilities(info *audioInfo) *AudioSubscriptionCapabilities {
	var optional []audioFormatInfo
	if info.Optional != nil {
		optional = info.Optional.Format
	}

	codecs := make([]AudioCodecParameters, 0, 1+len(optional))
	codecs = append(codecs, AudioCodecParameters{
		Codec:        p.audioCodecLookup(info.Format.Codec),
		ChannelCount: info.Format.ChannelNum,
		SampleRate:   info.Format.SampleRate,
	})

	for _, format := range optional {
		codecs = append(codecs, AudioCodecParameters{
			Codec:        p.audioCodecLookup(format.Codec),
			ChannelCount: format.ChannelNum,
			SampleRate:   format.SampleRate,
		})
	}

	return &AudioSubscriptionCapabilities{Codecs: codecs}
}

func (p *CapabilityParser) parseVideoCapabilities(info *videoInfo) (*VideoSubscriptionCapabilities, error) {
	caps := &VideoSubscriptionCapabilities{
		Codecs: []VideoCodecParameters{{Codec: p.videoCodecLookup(info.Format.Codec)}},
	}

	// The mandatory parameters block never carries a bitrate value,
	// only the optional block does.
	if params := info.Parameters; params != nil {
		if params.Resolution != nil {
			caps.Resolutions = append(caps.Resolutions, Resolution{
				Width:  params.Resolution.Width,
				Height: params.Resolution.Height,
			})
		}
		caps.FrameRates = append(caps.FrameRates, params.Framerate)
		caps.KeyFrameIntervals = append(caps.KeyFrameIntervals, params.KeyFrameInterval)
	}

	optional := info.Optional
	if optional == nil {
		return caps, nil
	}

	for _, format := range optional.Format {
		caps.Codecs = append(caps.Codecs, VideoCodecParameters{Codec: p.videoCodecLookup(format.Codec)})
	}

	if optional.Parameters != nil {
		if err := caps.appendOptionalParameters(optional.Parameters); err != nil {
			return nil, err
		}
	}

	return caps, nil
}

// appendOptionalParameters merges the optional.parameters arrays into
// the capability lists. Unlike every other section of the document, the
// four arrays are required to exist once the object itself is present;
// this matches the conference server's schema and is not relaxed here.
func (caps *VideoSubscriptionCapabilities) appendOptionalParameters(params *videoOptionalParametersInfo) error {
	switch {
	case params.Resolution == nil:
		return fmt.Errorf("%w: resolution", ErrMissingOptionalParameterList)
	case params.Framerate == nil:
		return fmt.Errorf("%w: framerate", ErrMissingOptionalParameterList)
	case params.Bitrate == nil:
		return fmt.Errorf("%w: bitrate", ErrMissingOptionalParameterList)
	case params.KeyFrameInterval == nil:
		return fmt.Errorf("%w: keyFrameInterval", ErrMissingOptionalParameterList)
	}

	for _, resolution := range params.Resolution {
		caps.Resolutions = append(caps.Resolutions, Resolution{
			Width:  resolution.Width,
			Height: resolution.Height,
		})
	}

	caps.FrameRates = append(caps.FrameRates, params.Framerate...)

	for i, bitrate := range params.Bitrate {
		multiplier, err := parseBitrateMultiplier(bitrate)
		if err != nil {
			return fmt.Errorf("bitrate[%d]: %w", i, err)
		}
		caps.BitrateMultipliers = append(caps.BitrateMultipliers, multiplier)
	}

	caps.KeyFrameIntervals = append(caps.KeyFrameIntervals, params.KeyFrameInterval...)

	return nil
}
