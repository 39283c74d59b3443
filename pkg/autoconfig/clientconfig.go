// Package autoconfig renders provider configurations into the Mozilla
// Thunderbird autoconfiguration XML document.
//
// See: https://wiki.mozilla.org/Thunderbird:Autoconfiguration:ConfigFileFormat
package autoconfig

import "encoding/xml"

// ClientConfig is the root of the autoconfiguration document.
type ClientConfig struct {
	XMLName       xml.Name      `xml:"clientConfig"`
	Version       string        `xml:"version,attr"`
	EmailProvider EmailProvider `xml:"emailProvider"`
}

// EmailProvider describes one provider's servers within a ClientConfig.
type EmailProvider struct {
	ID               string   `xml:"id,attr"`
	Domains          []string `xml:"domain"`
	DisplayName      string   `xml:"displayName,omitempty"`
	DisplayShortName string   `xml:"displayShortName,omitempty"`
	IncomingServer   Server   `xml:"incomingServer"`
	OutgoingServer   Server   `xml:"outgoingServer"`
	WebMail          *WebMail `xml:"webMail,omitempty"`
}

// Server holds the settings a client needs to reach one mail server.
type Server struct {
	Type           string   `xml:"type,attr"`
	Hostname       string   `xml:"hostname"`
	Port           int      `xml:"port"`
	SocketType     string   `xml:"socketType"`
	Username       string   `xml:"username"`
	Authentication []string `xml:"authentication"`
}

// WebMail points clients at the provider's web mail interface.
type WebMail struct {
	LoginPage LoginPage `xml:"loginPage"`
}

// LoginPage is the URL of the web mail login form.
type LoginPage struct {
	URL string `xml:"url,attr"`
}
