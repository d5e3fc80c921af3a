package validation

import (
	"context"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// MaxTextLength bounds free-text form fields.
const MaxTextLength = 2000

// PhonePattern accepts digits with common separators and an optional leading +.
var PhonePattern = regexp.MustCompile(`^\+?\(?[0-9][0-9 ()\-]{6,19}$`)

// NormalizeQuery lowercases and trims a search query so matching is case-insensitive.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// ValidateRequired checks a required free-text field.
func ValidateRequired(field, value string) (bool, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, field + " is required"
	}
	if len(value) > MaxTextLength {
		return false, field + " is too long"
	}
	return true, ""
}

// ValidateEmail checks that an address is a bare email (no display name).
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "Invalid email address"
	}
	return true, ""
}

// ValidatePhone checks an optional phone number. Empty is valid.
func ValidatePhone(phone string) (bool, string) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true, ""
	}
	if !PhonePattern.MatchString(phone) {
		return false, "Invalid phone number"
	}
	return true, ""
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool, string) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false, "Date is required"
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, false, "Date must use YYYY-MM-DD format"
	}
	return d, true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// metadataIPs are cloud metadata endpoints (AWS/GCP, Azure) that are public
// addresses but must never be fetched.
var metadataIPs = []net.IP{
	net.ParseIP("169.254.169.254"),
	net.ParseIP("168.63.129.16"),
}

// IsPrivateIP reports whether ip is loopback, link-local, private,
// unspecified or a cloud metadata address.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}
	for _, m := range metadataIPs {
		if ip.Equal(m) {
			return true
		}
	}
	return false
}

// ValidatePublicURL checks that urlStr is a valid http(s) URL whose host
// resolves only to public addresses, so outbound link checks cannot be
// pointed at internal services. Unresolvable hosts are rejected.
func ValidatePublicURL(ctx context.Context, urlStr string) (bool, string) {
	if ok, msg := ValidateURL(urlStr); !ok {
		return false, msg
	}

	u, _ := url.Parse(urlStr)
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, u.Hostname())
	if err != nil || len(addrs) == 0 {
		return false, "Cannot resolve hostname"
	}
	for _, a := range addrs {
		if IsPrivateIP(a.IP) {
			return false, "URL points to a private or reserved IP address"
		}
	}
	return true, ""
}
