// Package useragent derives a coarse device type and a human-readable
// session label from a raw User-Agent string.
//
// This is a heuristic substring classifier, not a full UA parser: session
// lists only need "Firefox on Windows"-grade labels and a rough device
// class for choosing an icon. Unrecognized agents degrade to
// DeviceUnknown and a generic label rather than an error.
package useragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeviceType is the coarse class of client a session was created from.
type DeviceType int

const (
	// DeviceUnknown is used when the user agent is empty or unrecognized.
	DeviceUnknown DeviceType = iota
	// DeviceDesktop covers desktop operating systems.
	DeviceDesktop
	// DeviceMobile covers phones and tablets.
	DeviceMobile
	// DeviceWeb covers web-based clients without an OS marker.
	DeviceWeb
)

// String returns the lowercase device type name.
func (d DeviceType) String() string {
	switch d {
	case DeviceDesktop:
		return "desktop"
	case DeviceMobile:
		return "mobile"
	case DeviceWeb:
		return "web"
	default:
		return "unknown"
	}
}

// unknownLabel is returned by Label when nothing can be extracted.
const unknownLabel = "Unknown device"

// browserMarkers maps UA substrings to display names, in match order.
// Chrome ships a "Safari" token and Edge ships a "Chrome" token, so the
// more specific markers must come first.
var browserMarkers = []struct {
	marker string
	name   string
}{
	{"Edg/", "Edge"},
	{"OPR/", "Opera"},
	{"SamsungBrowser/", "Samsung Internet"},
	{"Firefox/", "Firefox"},
	{"Chrome/", "Chrome"},
	{"Safari/", "Safari"},
}

// osMarkers maps UA substrings to display names, in match order. The
// device-specific markers come before the generic OS ones ("iPhone" UAs
// also carry "like Mac OS X").
var osMarkers = []struct {
	marker string
	name   string
}{
	{"iPhone", "iPhone"},
	{"iPad", "iPad"},
	{"Android", "Android"},
	{"Windows", "Windows"},
	{"CrOS", "ChromeOS"},
	{"Macintosh", "macOS"},
	{"Mac OS X", "macOS"},
	{"Linux", "Linux"},
}

// mobileMarkers indicate a phone or tablet client.
var mobileMarkers = []string{"Mobi", "Android", "iPhone", "iPad"}

// desktopMarkers indicate a desktop operating system.
var desktopMarkers = []string{"Windows", "Macintosh", "CrOS", "X11", "Linux"}

// titleCaser title-cases fallback product tokens for display.
var titleCaser = cases.Title(language.English)

// Classify returns the coarse device type for a raw user agent.
//
// Mobile markers win over desktop ones ("Android" UAs usually carry "Linux"
// as well). An agent with neither marker but a browser token is treated as a
// web client; anything else is unknown.
func Classify(userAgent string) DeviceType {
	if userAgent == "" {
		return DeviceUnknown
	}

	for _, m := range mobileMarkers {
		if strings.Contains(userAgent, m) {
			return DeviceMobile
		}
	}
	for _, m := range desktopMarkers {
		if strings.Contains(userAgent, m) {
			return DeviceDesktop
		}
	}
	if browserName(userAgent) != "" || strings.Contains(userAgent, "Mozilla/") {
		return DeviceWeb
	}
	return DeviceUnknown
}

// Label builds a human-readable session label such as "Firefox on Windows"
// or "Safari on iPhone". When only one side is recognized, the label
// degrades to just that side; when neither is, to the first product token
// of the agent, title-cased; when the agent is empty, to "Unknown device".
func Label(userAgent string) string {
	browser := browserName(userAgent)
	os := osName(userAgent)

	switch {
	case browser != "" && os != "":
		return browser + " on " + os
	case browser != "":
		return browser
	case os != "":
		return os
	}

	if token := productToken(userAgent); token != "" {
		return titleCaser.String(token)
	}
	return unknownLabel
}

func browserName(userAgent string) string {
	for _, b := range browserMarkers {
		if strings.Contains(userAgent, b.marker) {
			return b.name
		}
	}
	return ""
}

func osName(userAgent string) string {
	for _, o := range osMarkers {
		if strings.Contains(userAgent, o.marker) {
			return o.name
		}
	}
	return ""
}

// productToken returns the name of the first product token, e.g. "hydrogen"
// for "hydrogen/0.2.0".
func productToken(userAgent string) string {
	field := strings.TrimSpace(userAgent)
	if field == "" {
		return ""
	}
	field, _, _ = strings.Cut(field, " ")
	name, _, _ := strings.Cut(field, "/")
	return name
}
