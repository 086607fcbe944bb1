package platform

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Platform is the key of a target store platform, as used by the build service.
type Platform string

// Platforms
const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

// Parse ...
func Parse(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case Android, IOS:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform: %s", s)
	}
}

// DisplayName returns the human readable name of the platform.
func (p Platform) DisplayName() string {
	switch p {
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	default:
		return string(p)
	}
}

// Extension returns the artifact file extension without the leading dot (apk, ipa).
func (p Platform) Extension() string {
	switch p {
	case Android:
		return "apk"
	case IOS:
		return "ipa"
	default:
		return ""
	}
}

// HasExtension reports whether pth points to an artifact of the platform.
func (p Platform) HasExtension(pth string) bool {
	ext := p.Extension()
	if ext == "" {
		return false
	}
	return filepath.Ext(pth) == "."+ext
}

func (p Platform) String() string {
	return string(p)
}
