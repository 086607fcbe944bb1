package artifact

import "github.com/bitrise-steplib/steps-store-upload/platform"

// Selection is the user's choice of which artifact to upload.
// At most one of Path, ID and Latest is set; none set means the user is asked.
type Selection struct {
	Path   string
	ID     string
	Latest bool
}

// Source describes where the artifact bytes come from:
// either a local file (LocalPath) or a remote build (RemoteURL, BuildID).
type Source struct {
	LocalPath string
	RemoteURL string
	BuildID   string
	Platform  platform.Platform
}

// IsLocal ...
func (s Source) IsLocal() bool {
	return s.LocalPath != ""
}
