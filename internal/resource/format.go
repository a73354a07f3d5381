// Package resource parses inbound resource paths and negotiates the
// representation a client asked for.
package resource

// Format is a negotiated output representation.
type Format string

const (
	FormatTurtle Format = "turtle"
	FormatRDFXML Format = "rdf-xml"
	FormatJSONLD Format = "json-ld"
	FormatHTML   Format = "html"
)

// ParseFormat maps a user-facing format name (query parameter or CLI flag)
// to a Format. Matching is case-insensitive.
func ParseFormat(value string) (Format, bool) {
	format, ok := formatNames[lower(value)]
	return format, ok
}

var formatNames = map[string]Format{
	"ttl":    FormatTurtle,
	"turtle": FormatTurtle,
	"rdf":    FormatRDFXML,
	"rdfxml": FormatRDFXML,
	"xml":    FormatRDFXML,
	"jsonld": FormatJSONLD,
	// "+" arrives as a space after query decoding.
	"ld+json": FormatJSONLD,
	"ld json": FormatJSONLD,
	"html":    FormatHTML,
}
