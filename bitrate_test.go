// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBitrateMultiplier(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected float64
	}{
		"WholeNumber": {input: "x1.0", expected: 1.0},
		"AboveOne":    {input: "x1.5", expected: 1.5},
		"BelowOne":    {input: "x0.75", expected: 0.75},
		"Integer":     {input: "x2", expected: 2},
		"OtherSigil":  {input: "*0.5", expected: 0.5},
	}
	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			multiplier, err := parseBitrateMultiplier(testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, multiplier)
		})
	}
}

func TestParseBitrateMultiplier_Invalid(t *testing.T) {
	for name, input := range map[string]string{
		"Empty":             "",
		"NoSigil":           "1.5",
		"SigilOnly":         "x",
		"NonNumericPayload": "xhigh",
		"DoubleSigil":       "xx1.0",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseBitrateMultiplier(input)
			assert.ErrorIs(t, err, ErrInvalidBitrateMultiplier)
		})
	}
}
