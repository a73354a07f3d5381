package resource

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidPath = errors.New("invalid resource path")

// Path is a parsed resource path.
type Path struct {
	Type string
	ID   string
	// Extension is the format hint taken from the last segment, if any.
	Extension Format
}

type suffix struct {
	value      string
	format     Format
	ignoreCase bool
}

// Checked in order; the first match is stripped.
var suffixes = []suffix{
	{value: ".jsonld", format: FormatJSONLD},
	{value: ".ttl", format: FormatTurtle},
	{value: ".rdf", format: FormatRDFXML, ignoreCase: true},
	{value: ".xml", format: FormatRDFXML, ignoreCase: true},
}

// ParsePath derives (type, id) from raw, percent-encoded path segments.
// Ids may contain slashes, so every segment after the type belongs to the id.
func ParsePath(segments []string) (Path, error) {
	var path Path
	raw := append([]string(nil), segments...)

	if n := len(raw); n > 0 {
		last := raw[n-1]
		for _, s := range suffixes {
			if hasSuffix(last, s.value, s.ignoreCase) {
				raw[n-1] = last[:len(last)-len(s.value)]
				path.Extension = s.format
				break
			}
		}
	}

	decoded := make([]string, 0, len(raw))
	for _, segment := range raw {
		value, err := url.PathUnescape(segment)
		if err != nil {
			return Path{}, ErrInvalidPath
		}
		if value == "" {
			continue
		}
		decoded = append(decoded, value)
	}
	if len(decoded) < 2 {
		return Path{}, ErrInvalidPath
	}

	path.Type = decoded[0]
	path.ID = strings.Join(decoded[1:], "/")
	return path, nil
}

func hasSuffix(value, suffix string, ignoreCase bool) bool {
	if !ignoreCase {
		return strings.HasSuffix(value, suffix)
	}
	return len(value) >= len(suffix) && strings.EqualFold(value[len(value)-len(suffix):], suffix)
}
