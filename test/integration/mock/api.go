package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// RecordedRequest is one call received by the ApiMock.
type RecordedRequest struct {
	Headers http.Header
	Form    url.Values
	Body    map[string]any
}

type cannedResponse struct {
	status int
	body   any
}

// ApiMock is a stand-in for an upstream HTTP API. Responses are configured per
// method and path, either for one call index or as the default for that route.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]RecordedRequest
	responses map[string]map[int]cannedResponse
	defaults  map[string]cannedResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]RecordedRequest{},
		responses: map[string]map[int]cannedResponse{},
		defaults:  map[string]cannedResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path
	raw, _ := io.ReadAll(r.Body)

	recorded := RecordedRequest{Headers: r.Header.Clone(), Body: map[string]any{}}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		recorded.Form, _ = url.ParseQuery(string(raw))
	} else {
		_ = json.Unmarshal(raw, &recorded.Body)
	}

	a.mu.Lock()
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], recorded)
	canned, ok := a.responses[key][index]
	if !ok {
		canned, ok = a.defaults[key]
	}
	a.mu.Unlock()

	if !ok {
		canned = cannedResponse{status: http.StatusOK, body: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(canned.status)
	payload, _ := json.Marshal(canned.body)
	_, _ = w.Write(payload)
}

// SetResponse configures the reply for the index-th call to method+path.
// An index of -1 sets the default reply for that route.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	canned := cannedResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = canned
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]cannedResponse{}
	}
	a.responses[key][index] = canned
}

// Requests returns every call received for method+path, in arrival order.
func (a *ApiMock) Requests(method, path string) []RecordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]RecordedRequest(nil), a.requests[method+path]...)
}

// Reset forgets all recorded calls and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]RecordedRequest{}
	a.responses = map[string]map[int]cannedResponse{}
	a.defaults = map[string]cannedResponse{}
}
