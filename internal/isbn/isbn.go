// Package isbn parses and validates ISBN-10 and ISBN-13 identifiers.
package isbn

// isbn13Weights are the alternating multipliers applied to ISBN-13 digits.
var isbn13Weights = [13]int{1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1, 3, 1}

// ISBN is a validated ISBN-10 or ISBN-13 value.
// The zero value is not a valid ISBN; use Parse.
type ISBN struct {
	raw    string
	digits []int
}

// Parse validates input as an ISBN-10 or ISBN-13.
//
// Only ASCII digits are significant; hyphens, spaces and every other
// character (including an 'X' check character) are ignored. The returned
// ISBN keeps input exactly as given. On failure the error is a *ParseError.
func Parse(input string) (ISBN, error) {
	digits := extractDigits(input)

	switch len(digits) {
	case 10:
		if !check10(digits) {
			return ISBN{}, &ParseError{Input: input, Kind: FailedCheck10}
		}
	case 13:
		if !check13(digits) {
			return ISBN{}, &ParseError{Input: input, Kind: FailedCheck13}
		}
	default:
		return ISBN{}, &ParseError{Input: input, Kind: WrongLength}
	}

	return ISBN{raw: input, digits: digits}, nil
}

// String returns the original input the ISBN was parsed from.
func (i ISBN) String() string {
	return i.raw
}

// Digits returns a copy of the digit values in input order.
func (i ISBN) Digits() []int {
	out := make([]int, len(i.digits))
	copy(out, i.digits)
	return out
}

// Len returns 10 or 13 for a parsed ISBN, 0 for the zero value.
func (i ISBN) Len() int {
	return len(i.digits)
}

func extractDigits(s string) []int {
	digits := make([]int, 0, 13)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}

func check10(d []int) bool {
	sum := 0
	for i, v := range d {
		sum += v * (10 - i)
	}
	return sum%11 == 0
}

func check13(d []int) bool {
	sum := 0
	for i, v := range d {
		sum += v * isbn13Weights[i]
	}
	return sum%10 == 0
}
