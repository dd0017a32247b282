// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"strconv"
)

// ExtractDigits strips every non-digit character from the string form of
// v. Tolerates ASN inputs like "AS210083", "as210083" or "  --99--".
func ExtractDigits(v any) string {
	s := fmt.Sprint(v)
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ExtractNumber returns the digit residue of v as an int. An input with no
// digits at all is an error.
func ExtractNumber(v any) (int, error) {
	digits := ExtractDigits(v)
	if digits == "" {
		return 0, fmt.Errorf("no digits found in %q", fmt.Sprint(v))
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as number: %w", digits, err)
	}
	return n, nil
}
