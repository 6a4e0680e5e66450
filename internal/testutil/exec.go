package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-merlin-dark/smart-find/internal/cmdexec"
)

// Response is a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
}

// FakeCommander returns pre-configured responses keyed by "name arg1 arg2 ...".
// When no exact key matches, the longest registered prefix wins.
type FakeCommander struct {
	Responses map[string]Response

	// Calls records every executed command line, in order.
	Calls []string

	// DefaultResponse is returned when nothing matches. If nil, an error is returned.
	DefaultResponse *Response
}

var _ cmdexec.Commander = (*FakeCommander)(nil)

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{Responses: make(map[string]Response)}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Run looks up the command line and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	c.Calls = append(c.Calls, line)

	if resp, ok := c.Responses[line]; ok {
		return resp.Output, resp.Err
	}

	best := ""
	for key := range c.Responses {
		if strings.HasPrefix(line, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		resp := c.Responses[best]
		return resp.Output, resp.Err
	}

	if c.DefaultResponse != nil {
		return c.DefaultResponse.Output, c.DefaultResponse.Err
	}
	return nil, fmt.Errorf("FakeCommander: no response registered for %q", line)
}

// Called reports whether a command starting with prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	return c.CallCount(prefix) > 0
}

// CallCount returns how many executed commands start with prefix.
func (c *FakeCommander) CallCount(prefix string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}
