package check

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrNoTarget is returned when neither a URL nor a host+path pair is
// supplied; the run terminates UNKNOWN.
var ErrNoTarget = errors.New("No URL specified")

// TargetOptions carries the raw CLI input for target resolution. Either URL
// is set, or Host and Path are; the remaining fields refine the latter form.
type TargetOptions struct {
	URL   string
	Host  string
	Path  string
	Query string
	Port  int
	SSL   bool
}

// Target is the fully resolved request destination, constructed once per
// run and immutable thereafter.
type Target struct {
	Scheme string
	Host   string
	Port   int
	Path   string
	Query  string
}

// ResolveTarget builds a Target from CLI input. A full URL, when given,
// overrides the discrete fields entirely; otherwise host and path are
// mandatory. The port defaults to 443 for https and 80 for http, but only
// when not set explicitly.
func ResolveTarget(opts TargetOptions) (*Target, error) {
	t := &Target{}

	if opts.URL != "" {
		parsed, err := url.Parse(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", opts.URL, err)
		}
		t.Scheme = parsed.Scheme
		t.Host = parsed.Hostname()
		t.Path = parsed.Path
		t.Query = parsed.RawQuery
		if p := parsed.Port(); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid port in URL %q: %w", opts.URL, err)
			}
			t.Port = port
		}
	} else {
		if opts.Host == "" || opts.Path == "" {
			return nil, ErrNoTarget
		}
		t.Scheme = "http"
		if opts.SSL {
			t.Scheme = "https"
		}
		t.Host = opts.Host
		t.Path = opts.Path
		t.Query = opts.Query
		t.Port = opts.Port
	}

	if t.Scheme == "" {
		t.Scheme = "http"
	}
	if t.Host == "" {
		return nil, ErrNoTarget
	}
	if t.Port == 0 {
		if t.Scheme == "https" {
			t.Port = 443
		} else {
			t.Port = 80
		}
	}

	return t, nil
}

// URL renders the target as a request URL, joining path and query with "?"
// only when a query is present.
func (t *Target) URL() string {
	u := fmt.Sprintf("%s://%s:%d%s", t.Scheme, t.Host, t.Port, t.Path)
	if t.Query != "" {
		u += "?" + t.Query
	}
	return u
}
