package aips

import "strings"

// ehexDigits is the AIPS "extended hex" alphabet, base 36.
const ehexDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Ehex converts num to AIPS extended hex, optionally left-padding the
// result with padding up to width characters. AIPS uses this notation
// for catalogue slots and disk area names, e.g. Ehex(100, 0, "")
// returns "2S" and Ehex(1, 2, "0") returns "01".
func Ehex(num, width int, padding string) string {
	var sb strings.Builder
	result := ""
	for num > 0 {
		result = string(ehexDigits[num%len(ehexDigits)]) + result
		num /= len(ehexDigits)
		width--
	}

	if padding != "" {
		for width > 0 {
			sb.WriteString(padding)
			width--
		}
	}
	sb.WriteString(result)

	return sb.String()
}
