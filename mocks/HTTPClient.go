package mocks

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := _m.Called(req)
	var resp *http.Response
	if r := args.Get(0); r != nil {
		resp = r.(*http.Response)
	}
	return resp, args.Error(1)
}
