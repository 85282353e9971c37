package mpesa

import (
	"encoding/base64"
	"time"
)

const timestampLayout = "20060102150405"

// GeneratePassword derives the Lipa Na M-Pesa online password for the given
// instant: base64(shortcode + passkey + timestamp). The gateway checks the
// password against the payload's Timestamp field, so both are returned from
// the same instant and the password is recomputed on every push.
func GeneratePassword(shortcode, passkey string, t time.Time) (password, timestamp string) {
	timestamp = t.Format(timestampLayout)
	password = base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
	return password, timestamp
}
