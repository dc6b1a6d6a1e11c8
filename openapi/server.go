package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"unicode/utf8"
)

// ServerOptions configures optional Server fields.
type ServerOptions struct {
	// Description is an optional string describing the host.
	Description string

	// Variables maps a variable name to its value. Values may be plain
	// JSON values or ServerVariable objects. They are stored in their
	// decoded JSON form, so a ServerVariable reads back as map[string]any
	// and numbers as json.Number.
	Variables map[string]any
}

// Server describes a host the API is reachable at.
//
// See: https://spec.openapis.org/oas/v3.0.2#server-object
type Server struct {
	url         *url.URL
	description string
	variables   map[string]any
}

// NewServer validates and creates a Server. The opts parameter is optional;
// pass nil for no description and no variables.
func NewServer(rawURL string, opts *ServerOptions) (*Server, error) {
	if !utf8.ValidString(rawURL) {
		return nil, fmt.Errorf("%w: server url must be text", ErrInvalidArgument)
	}
	if opts == nil {
		opts = &ServerOptions{}
	}
	vars, err := copyVariables(opts.Variables)
	if err != nil {
		return nil, err
	}

	u, err := ParseAbsoluteURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}

	return &Server{
		url:         u,
		description: opts.Description,
		variables:   vars,
	}, nil
}

// rootServer is the server used when a document is built without any.
func rootServer() *Server {
	return &Server{url: &url.URL{Path: "/"}}
}

// copyVariables requires non-empty names and JSON-encodable values and
// returns a copy detached from the caller's maps and slices.
func copyVariables(vars map[string]any) (map[string]any, error) {
	if vars == nil {
		return nil, nil
	}

	out := make(map[string]any, len(vars))
	for name, value := range vars {
		if name == "" {
			return nil, fmt.Errorf("%w: server variable name must not be empty", ErrInvalidArgument)
		}

		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("%w: server variable %q: %v", ErrInvalidArgument, name, err)
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var decoded any
		if err := dec.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("%w: server variable %q: %v", ErrInvalidArgument, name, err)
		}
		out[name] = decoded
	}
	return out, nil
}

// cloneJSON deep copies a decoded JSON value.
func cloneJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		if v == nil {
			return v
		}
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneJSON(item)
		}
		return out
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneJSON(item)
		}
		return out
	default:
		return v
	}
}

func (s *Server) cloneVariables() map[string]any {
	if s.variables == nil {
		return nil
	}
	return cloneJSON(s.variables).(map[string]any)
}

// URL returns the normalized server URL.
func (s *Server) URL() string { return s.url.String() }

// Description returns the server description.
func (s *Server) Description() string { return s.description }

// Variables returns a deep copy of the server variables.
func (s *Server) Variables() map[string]any { return s.cloneVariables() }

// Serialize returns the server as a wire object.
func (s *Server) Serialize() ServerObject {
	return ServerObject{
		URL:         s.url.String(),
		Description: s.description,
		Variables:   s.cloneVariables(),
	}
}

// MarshalJSON implements json.Marshaler.
func (s *Server) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Serialize())
}

func (s *Server) valid() bool {
	return s != nil && s.url != nil
}
