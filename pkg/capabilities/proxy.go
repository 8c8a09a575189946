package capabilities

// ProxyType selects how the remote end routes browser traffic.
type ProxyType string

const (
	// ProxyDirect connects directly, bypassing any proxy
	ProxyDirect ProxyType = "direct"

	// ProxyManual uses the per-protocol hosts configured on the Proxy
	ProxyManual ProxyType = "manual"

	// ProxyPAC fetches proxy decisions from a PAC script
	ProxyPAC ProxyType = "pac"

	// ProxyAutodetect probes the network for a proxy configuration
	ProxyAutodetect ProxyType = "autodetect"

	// ProxySystem uses the operating system proxy settings
	ProxySystem ProxyType = "system"
)

// Proxy is the W3C proxy configuration object carried under the proxy
// capability.
type Proxy struct {
	// Type selects the proxy configuration mode
	Type ProxyType `yaml:"type,omitempty"`

	// AutoconfigURL points at a PAC script, pac mode only
	AutoconfigURL string `yaml:"autoconfig_url,omitempty"`

	// HTTP is the host:port proxying plain HTTP traffic, manual mode only
	HTTP string `yaml:"http,omitempty"`

	// SSL is the host:port proxying TLS traffic, manual mode only
	SSL string `yaml:"ssl,omitempty"`

	// SOCKS is the host:port of a SOCKS proxy, manual mode only
	SOCKS string `yaml:"socks,omitempty"`

	// SOCKSVersion is the SOCKS protocol version, 0 through 255
	SOCKSVersion *int `yaml:"socks_version,omitempty"`

	// NoProxy lists addresses that bypass the proxy
	NoProxy []string `yaml:"no_proxy,omitempty"`
}

// capabilityValue renders the proxy in its wire form. Field names follow
// the WebDriver specification, unset fields are omitted.
func (p Proxy) capabilityValue() map[string]any {
	v := map[string]any{}
	if p.Type != "" {
		v["proxyType"] = string(p.Type)
	}
	if p.AutoconfigURL != "" {
		v["proxyAutoconfigUrl"] = p.AutoconfigURL
	}
	if p.HTTP != "" {
		v["httpProxy"] = p.HTTP
	}
	if p.SSL != "" {
		v["sslProxy"] = p.SSL
	}
	if p.SOCKS != "" {
		v["socksProxy"] = p.SOCKS
	}
	if p.SOCKSVersion != nil {
		v["socksVersion"] = *p.SOCKSVersion
	}
	if len(p.NoProxy) > 0 {
		v["noProxy"] = append([]string(nil), p.NoProxy...)
	}
	return v
}

// SetProxy stores p under the proxy capability.
func (m Map) SetProxy(p Proxy) {
	m[KeyProxy] = p.capabilityValue()
}
