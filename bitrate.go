// SPDX-FileCopyrightText: 2025 The OMS project authors
// SPDX-License-Identifier: Apache-2.0

package conference

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// parseBitrateMultiplier decodes one wire bitrate entry. The server
// encodes multipliers as a single non-numeric sigil rune followed by a
// decimal number, e.g. "x1.5". Exactly one leading rune is stripped and
// the remainder parsed as a float.
func parseBitrateMultiplier(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidBitrateMultiplier)
	}

	sigil, width := utf8.DecodeRuneInString(s)
	if unicode.IsDigit(sigil) {
		return 0, fmt.Errorf("%w: %q has no leading sigil", ErrInvalidBitrateMultiplier, s)
	}

	multiplier, err := strconv.ParseFloat(s[width:], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBitrateMultiplier, s)
	}

	return multiplier, nil
}
