package mpesa

import "strings"

// FormatPhoneNumber normalizes a Kenyan MSISDN to the 254XXXXXXXXX form the
// gateway expects. Local (07...), international (2547...) and plus-prefixed
// (+2547...) inputs all come out the same.
func FormatPhoneNumber(phone string) string {
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "254") {
		return phone
	}
	return "254" + strings.TrimPrefix(phone, "0")
}
