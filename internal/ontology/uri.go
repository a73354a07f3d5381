package ontology

import (
	"net/url"
	"strings"
)

const (
	ResourcePathPrefix  = "/resource"
	CanonicalPathPrefix = "/id"
	DetailPathPrefix    = "/detail"
)

// EntityRef identifies one entity. ID is opaque and may contain slashes.
type EntityRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Namespace is the ontology base under which canonical entity URIs and bare
// predicate keys are resolved.
type Namespace struct {
	base   string
	prefix string
}

func NewNamespace(base, prefix string) Namespace {
	return Namespace{
		base:   strings.TrimRight(strings.TrimSpace(base), "/#"),
		prefix: prefix,
	}
}

func (n Namespace) Base() string {
	return n.base
}

// Prefix is the short name bound to Vocabulary in Turtle and JSON-LD output.
func (n Namespace) Prefix() string {
	return n.prefix
}

// Vocabulary is the namespace IRI for predicates, e.g. "<base>#".
func (n Namespace) Vocabulary() string {
	return n.base + "#"
}

// Predicate expands key into a predicate URI. Absolute http(s) keys are kept.
func (n Namespace) Predicate(key string) string {
	if IsAbsoluteHTTP(key) {
		return key
	}
	return n.Vocabulary() + key
}

func (n Namespace) URIPredicate() string {
	return n.Vocabulary() + "uri"
}

// CanonicalEntityURI returns the one dereferenceable identifier for
// (typ, id). Callers normalize typ first so aliases converge.
func (n Namespace) CanonicalEntityURI(typ, id string) string {
	href := ResourceHref(typ, id)
	return n.base + CanonicalPathPrefix + strings.TrimPrefix(href, ResourcePathPrefix)
}

// ParseEntityURI recognizes "<base>/id/<type>/<id...>" and the legacy
// "<anything>#<type>/<id...>" shape.
func (n Namespace) ParseEntityURI(uri string) (EntityRef, bool) {
	var remainder string
	if rest, ok := strings.CutPrefix(uri, n.base+CanonicalPathPrefix+"/"); ok {
		remainder = rest
	} else if _, fragment, ok := strings.Cut(uri, "#"); ok {
		remainder = fragment
	} else {
		return EntityRef{}, false
	}

	segments := make([]string, 0, 4)
	for _, raw := range strings.Split(remainder, "/") {
		if raw == "" {
			continue
		}
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			return EntityRef{}, false
		}
		segments = append(segments, decoded)
	}
	if len(segments) < 2 {
		return EntityRef{}, false
	}

	id := strings.Join(segments[1:], "/")
	if id == "" {
		return EntityRef{}, false
	}
	return EntityRef{Type: NormalizeDetailType(segments[0]), ID: id}, true
}

// DetailHref is the human browsing path. The id is escaped as one segment.
func DetailHref(typ, id string) string {
	return DetailPathPrefix + "/" + url.PathEscape(NormalizeDetailType(typ)) + "/" + url.PathEscape(id)
}

// ResourceHref is the negotiable resource path. Slashes inside id are kept
// as path separators and every piece is escaped on its own.
func ResourceHref(typ, id string) string {
	parts := strings.Split(id, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return ResourcePathPrefix + "/" + url.PathEscape(typ) + "/" + strings.Join(parts, "/")
}

// IsAbsoluteHTTP reports whether value starts with an http or https scheme.
func IsAbsoluteHTTP(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
