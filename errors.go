// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import "errors"

var (
	// ErrNilMediaInfo indicates the caller passed a nil or JSON null
	// media-info document to ParseSubscriptionCapabilities.
	ErrNilMediaInfo = errors.New("media info must not be nil")

	// ErrMalformedMediaInfo indicates a field of the media-info
	// document holds a JSON value of the wrong type.
	ErrMalformedMediaInfo = errors.New("malformed media info")

	// ErrMissingOptionalParameterList indicates the video
	// optional.parameters object is present but one of its required
	// arrays is missing.
	ErrMissingOptionalParameterList = errors.New("optional video parameters list missing")

	// ErrInvalidBitrateMultiplier indicates a bitrate entry is not a
	// sigil-prefixed decimal string.
	ErrInvalidBitrateMultiplier = errors.New("invalid bitrate multiplier")
)
