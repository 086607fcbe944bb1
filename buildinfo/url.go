package buildinfo

import "github.com/bitrise-io/go-utils/urlutil"

// BuildLogsURL returns the website page of a build, falling back to a relative link
// when the website url is malformed.
func BuildLogsURL(websiteURL, buildID string) string {
	uri, err := urlutil.Join(websiteURL, "builds", buildID)
	if err != nil {
		return "/builds/" + buildID
	}
	return uri
}
