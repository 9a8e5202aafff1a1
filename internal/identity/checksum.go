package identity

// MOD 11-2 parameters of the 18-digit resident identity number.
var residentWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

const residentCheckChars = "10X98765432"

// ResidentIDCheck computes the check character for the first 17 digits of a
// resident identity number. ok is false when body is not 17 ASCII digits.
func ResidentIDCheck(body string) (check byte, ok bool) {
	if len(body) != len(residentWeights) {
		return 0, false
	}
	sum := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += int(c-'0') * residentWeights[i]
	}
	return residentCheckChars[sum%11], true
}

// ValidResidentID reports whether id is 18 characters whose last one is the
// MOD 11-2 check character of the rest.
func ValidResidentID(id string) bool {
	if len(id) != 18 {
		return false
	}
	check, ok := ResidentIDCheck(id[:17])
	return ok && id[17] == check
}

// luhnDigit returns the check digit that makes payload+digit pass Luhn.
func luhnDigit(payload string) byte {
	sum := 0
	// the check digit will sit at the rightmost position, so doubling starts
	// with the last payload digit
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		d := int(payload[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

// Luhn reports whether number is all digits and passes the Luhn checksum.
func Luhn(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
