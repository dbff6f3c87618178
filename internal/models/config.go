package models

// OSName identifies one of the supported distributions.
type OSName string

const (
	OSDebian OSName = "debian"
	OSUbuntu OSName = "ubuntu"
	OSCentOS OSName = "centos"
)

// SupportedOS lists the selectable distributions in display order.
var SupportedOS = []OSName{OSDebian, OSUbuntu, OSCentOS}

// SessionConfig is a saved connection profile. Its fields parameterize
// every command template shown to the user.
type SessionConfig struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OS        OSName `json:"os"`
	IPAddress string `json:"ipAddress"`
	Hostname  string `json:"hostname"`
	Username  string `json:"username"`
	Domain    string `json:"domain"`
	Port      int    `json:"port"`
}

// DefaultConfig returns the profile seeded on first start.
func DefaultConfig() SessionConfig {
	return SessionConfig{
		ID:        "default-1",
		Name:      "Server Utama",
		OS:        OSDebian,
		IPAddress: "192.168.1.10",
		Hostname:  "server01",
		Username:  "admin",
		Domain:    "contoh.com",
		Port:      22,
	}
}
