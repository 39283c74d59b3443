// Package policy validates the addresses and domains clients request
// configurations for.
package policy

import (
	"bytes"
	"fmt"
	"strings"
)

// ParseEmailAddress splits an email address into local and domain parts,
// lowercasing the domain. The local part must comply with RFC3696, the
// domain part with RFC1035; an error is returned otherwise.
func ParseEmailAddress(address string) (local string, domain string, err error) {
	local, domain, err = parseEmailAddress(address)
	if err != nil {
		return "", "", err
	}
	if domain == "" {
		return "", "", fmt.Errorf("address %q is missing a domain part", address)
	}
	if !ValidateDomainPart(domain) {
		return "", "", fmt.Errorf("domain part %q failed validation", domain)
	}
	return local, strings.ToLower(domain), nil
}

// ValidateDomainPart returns true if the domain part complies to RFC3696 and
// RFC1035.
func ValidateDomainPart(domain string) bool {
	if len(domain) == 0 || len(domain) > 255 {
		return false
	}
	if domain[len(domain)-1] != '.' {
		domain += "."
	}
	prev := '.'
	labelLen := 0
	hasAlphaNum := false
	for _, c := range domain {
		switch {
		case ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
			('0' <= c && c <= '9') || c == '_':
			// Must contain some of these to be a valid label.
			hasAlphaNum = true
			labelLen++
		case c == '-':
			if prev == '.' {
				// Cannot lead with hyphen.
				return false
			}
			labelLen++
		case c == '.':
			if prev == '.' || prev == '-' {
				// Cannot end with hyphen or double-dot.
				return false
			}
			if labelLen > 63 || !hasAlphaNum {
				return false
			}
			labelLen = 0
			hasAlphaNum = false
		default:
			return false
		}
		prev = c
	}
	return true
}

// parseEmailAddress splits the local part from the domain part, unescaping
// quoted-pairs. An error is returned if the local part fails validation
// following the guidelines in RFC3696. The domain part is not validated.
func parseEmailAddress(address string) (local string, domain string, err error) {
	if address == "" {
		return "", "", fmt.Errorf("empty address")
	}
	if len(address) > 320 {
		return "", "", fmt.Errorf("address exceeds 320 characters")
	}
	if address[0] == '@' {
		return "", "", fmt.Errorf("address cannot start with @ symbol")
	}
	if address[0] == '.' {
		return "", "", fmt.Errorf("address cannot start with a period")
	}
	buf := new(bytes.Buffer)
	prev := byte('.')
	inCharQuote := false
	inStringQuote := false
LOOP:
	for i := 0; i < len(address); i++ {
		c := address[i]
		switch {
		case ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9'),
			bytes.IndexByte([]byte("!#$%&'*+-/=?^_`{|}~"), c) >= 0:
			// Letters, numbers and these specials may be used unquoted.
			buf.WriteByte(c)
			inCharQuote = false
		case c == '.':
			if prev == '.' {
				return "", "", fmt.Errorf("sequence of periods is not permitted")
			}
			buf.WriteByte(c)
			inCharQuote = false
		case c == '\\':
			inCharQuote = true
		case c == '"':
			switch {
			case inCharQuote:
				buf.WriteByte(c)
				inCharQuote = false
			case inStringQuote:
				inStringQuote = false
			case i == 0:
				inStringQuote = true
			default:
				return "", "", fmt.Errorf("quoted string can only begin at start of address")
			}
		case c == '@':
			if inCharQuote || inStringQuote {
				buf.WriteByte(c)
				inCharQuote = false
				break
			}
			// End of local-part.
			if i > 128 {
				return "", "", fmt.Errorf("local part must not exceed 128 characters")
			}
			if prev == '.' {
				return "", "", fmt.Errorf("local part cannot end with a period")
			}
			domain = address[i+1:]
			break LOOP
		case c > 127:
			return "", "", fmt.Errorf("characters outside of US-ASCII range not permitted")
		default:
			if !inCharQuote && !inStringQuote {
				return "", "", fmt.Errorf("character %q must be quoted", c)
			}
			buf.WriteByte(c)
			inCharQuote = false
		}
		prev = c
	}
	if inCharQuote {
		return "", "", fmt.Errorf("cannot end address with unterminated quoted-pair")
	}
	if inStringQuote {
		return "", "", fmt.Errorf("cannot end address with unterminated string quote")
	}
	return buf.String(), domain, nil
}
