package textutil

import "regexp"

// addressPattern matches Japanese street addresses starting at a prefecture
// or major-city token and running through block/lot numbers.
var addressPattern = regexp.MustCompile(`(?:北海道|東京都|京都府|大阪府|[一-龠ぁ-んァ-ヶ]{2,3}県)[一-龠ぁ-んァ-ヶー0-9０-９\x{3005}]{1,20}[市区町村郡][^\s、。]{0,30}`)

// phonePattern matches common Japanese phone formats (with or without hyphens).
var phonePattern = regexp.MustCompile(`0\d{1,4}[-ー\s]?\d{1,4}[-ー\s]?\d{3,4}`)

// urlPattern matches http/https URLs.
var urlPattern = regexp.MustCompile(`https?://[^\s　<>"']+`)

// ExtractAddress returns the first address-like substring in text, or "".
func ExtractAddress(text string) string {
	return addressPattern.FindString(text)
}

// HasAddress reports whether text contains an address-like substring.
func HasAddress(text string) bool {
	return addressPattern.MatchString(text)
}

// HasPhoneNumber reports whether text contains a phone-number-like token.
func HasPhoneNumber(text string) bool {
	return phonePattern.MatchString(text)
}

// ExtractURL returns the first URL in text, or "".
func ExtractURL(text string) string {
	return urlPattern.FindString(text)
}

// HasURL reports whether text contains a URL.
func HasURL(text string) bool {
	return urlPattern.MatchString(text)
}
