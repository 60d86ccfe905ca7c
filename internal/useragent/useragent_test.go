package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	uaFirefoxWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"
	uaChromeMac      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
	uaSafariIPhone   = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1"
	uaChromeAndroid  = "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Mobile Safari/537.36"
	uaEdgeWindows    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36 Edg/114.0.1823.58"
	uaBareClient     = "hydrogen/0.2.0"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      DeviceType
	}{
		{"empty", "", DeviceUnknown},
		{"firefox on windows", uaFirefoxWindows, DeviceDesktop},
		{"chrome on mac", uaChromeMac, DeviceDesktop},
		{"safari on iphone", uaSafariIPhone, DeviceMobile},
		{"chrome on android", uaChromeAndroid, DeviceMobile},
		{"edge on windows", uaEdgeWindows, DeviceDesktop},
		{"bare product token", uaBareClient, DeviceUnknown},
		{"mozilla token only", "Mozilla/5.0 (compatible)", DeviceWeb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"empty", "", "Unknown device"},
		{"firefox on windows", uaFirefoxWindows, "Firefox on Windows"},
		{"chrome on mac", uaChromeMac, "Chrome on macOS"},
		{"safari on iphone", uaSafariIPhone, "Safari on iPhone"},
		{"chrome on android", uaChromeAndroid, "Chrome on Android"},
		{"edge wins over chrome token", uaEdgeWindows, "Edge on Windows"},
		{"bare product token is title-cased", uaBareClient, "Hydrogen"},
		{"os only", "Mozilla/5.0 (Windows NT 10.0)", "Windows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.userAgent))
		})
	}
}

func TestDeviceTypeString(t *testing.T) {
	assert.Equal(t, "desktop", DeviceDesktop.String())
	assert.Equal(t, "mobile", DeviceMobile.String())
	assert.Equal(t, "web", DeviceWeb.String())
	assert.Equal(t, "unknown", DeviceUnknown.String())
}
