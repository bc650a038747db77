package kudu

import "encoding/base64"

// BasicToken builds the opaque credential sent on every request: the base64
// encoding of "username:password". It is produced once, passed to [New], and
// never parsed again by this package.
func BasicToken(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
