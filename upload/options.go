package upload

import "github.com/bitrise-steplib/steps-store-upload/artifact"

// Options are the user supplied parameters of an upload.
// At most one of Path, ID and Latest may be set.
type Options struct {
	Path   string
	ID     string
	Latest bool

	// Key is the Google Play service account json file.
	Key string
	// AppleID is the App Store Connect account username.
	AppleID string
}

func (o Options) selection() artifact.Selection {
	return artifact.Selection{
		Path:   o.Path,
		ID:     o.ID,
		Latest: o.Latest,
	}
}

func (o Options) sourceCount() int {
	count := 0
	if o.Path != "" {
		count++
	}
	if o.ID != "" {
		count++
	}
	if o.Latest {
		count++
	}
	return count
}

// PlatformMetadata holds the platform specific credentials of an upload.
type PlatformMetadata struct {
	Key     string
	AppleID string
}
