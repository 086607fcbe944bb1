package fastlane

import (
	"bytes"
	"encoding/json"

	"github.com/bitrise-steplib/steps-store-upload/errs"
)

const resultSuccess = "success"

// Result is the JSON document the publishing tool writes to its standard error.
type Result struct {
	Result  string          `json:"result"`
	RawDump json.RawMessage `json:"rawDump,omitempty"`

	raw []byte
}

// ParseResult decodes the captured standard error of the publishing tool.
func ParseResult(data []byte) (Result, error) {
	trimmed := bytes.TrimSpace(data)

	var result Result
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return Result{}, errs.Protocol(err, "invalid output of the publishing tool (%s)", trimmed)
	}
	result.raw = trimmed
	return result, nil
}

// Succeeded ...
func (r Result) Succeeded() bool {
	return r.Result == resultSuccess
}

// Message returns rawDump.message, or an empty string if the tool did not send one.
func (r Result) Message() string {
	if len(r.RawDump) == 0 {
		return ""
	}

	var dump struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.RawDump, &dump); err != nil {
		return ""
	}
	return dump.Message
}

// Dump returns the diagnostic payload: rawDump if present, the whole document otherwise.
func (r Result) Dump() string {
	if len(r.RawDump) > 0 && string(r.RawDump) != "null" {
		return string(r.RawDump)
	}
	return string(r.raw)
}
