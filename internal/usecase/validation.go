package usecase

import (
	"crypto/rand"
	"unicode"
)

// BarcodeLength is the fixed length of member barcodes printed on cards.
const BarcodeLength = 12

// ValidateBarcode checks a member barcode: exactly twelve digits with a
// valid Luhn checksum.
func ValidateBarcode(barcode string) bool {
	if len(barcode) != BarcodeLength {
		return false
	}

	var sum int
	var alt bool
	for i := len(barcode) - 1; i >= 0; i-- {
		r := rune(barcode[i])
		if !unicode.IsDigit(r) {
			return false
		}
		digit := int(r - '0')
		if alt {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		alt = !alt
	}

	return sum%10 == 0
}

// GenerateBarcode produces a random twelve-digit barcode whose last digit is
// the Luhn check digit over the first eleven.
func GenerateBarcode() (string, error) {
	raw := make([]byte, BarcodeLength-1)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	payload := make([]byte, BarcodeLength-1)
	for i, b := range raw {
		payload[i] = '0' + b%10
	}

	return string(append(payload, luhnCheckDigit(payload))), nil
}

func luhnCheckDigit(payload []byte) byte {
	var sum int
	alt := true
	for i := len(payload) - 1; i >= 0; i-- {
		digit := int(payload[i] - '0')
		if alt {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		alt = !alt
	}
	return byte('0' + (10-sum%10)%10)
}
