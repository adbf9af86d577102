// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

// AudioCodecParameters describes one audio encoding a remote stream
// supports: the codec plus the channel layout and sample rate it is
// produced with. A zero ChannelCount or SampleRate means the server did
// not specify the value.
type AudioCodecParameters struct {
	Codec        AudioCodec
	ChannelCount int
	SampleRate   int
}

// VideoCodecParameters describes one video encoding a remote stream
// supports.
type VideoCodecParameters struct {
	Codec VideoCodec
}

// Resolution is a video frame size in pixels. A zero width or height
// means the server did not specify the dimension, not a valid
// resolution.
type Resolution struct {
	Width  int
	Height int
}
