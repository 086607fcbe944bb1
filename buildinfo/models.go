package buildinfo

import "github.com/bitrise-steplib/steps-store-upload/platform"

// Build statuses
const (
	StatusFinished = "finished"
)

const allPlatforms = "all"

// Artifacts ...
type Artifacts struct {
	URL string `json:"url"`
}

// Build is the metadata of a previously produced application package.
type Build struct {
	ID        string            `json:"id"`
	Platform  platform.Platform `json:"platform"`
	Status    string            `json:"status,omitempty"`
	CreatedAt string            `json:"createdAt,omitempty"`
	Artifacts Artifacts         `json:"artifacts"`
}

// QueryOptions filters the builds returned by the build service.
// Empty Platform queries every platform, empty Status defaults to finished builds.
type QueryOptions struct {
	ID       string
	Platform platform.Platform
	Limit    int
	Status   string
}

type requestOptions struct {
	ID       string `json:"id,omitempty"`
	Platform string `json:"platform"`
	Limit    int    `json:"limit,omitempty"`
	Status   string `json:"status"`
}

// Request ...
type Request struct {
	Slug    string         `json:"slug"`
	Options requestOptions `json:"options"`
}

// Response ...
type Response struct {
	Builds []Build `json:"builds"`
}

func newRequest(slug string, opts QueryOptions) Request {
	p := string(opts.Platform)
	if p == "" {
		p = allPlatforms
	}
	status := opts.Status
	if status == "" {
		status = StatusFinished
	}

	return Request{
		Slug: slug,
		Options: requestOptions{
			ID:       opts.ID,
			Platform: p,
			Limit:    opts.Limit,
			Status:   status,
		},
	}
}
