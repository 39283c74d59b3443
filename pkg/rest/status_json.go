package rest

type jsonServerStatus struct {
	Version     string   `json:"version"`
	BuildDate   string   `json:"build-date"`
	WebListener string   `json:"web-listener"`
	Domains     []string `json:"domains"`
}
