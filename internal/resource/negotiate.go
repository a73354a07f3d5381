package resource

import "strings"

var acceptOrder = []struct {
	mediaType string
	format    Format
}{
	{"text/turtle", FormatTurtle},
	{"application/rdf+xml", FormatRDFXML},
	{"application/ld+json", FormatJSONLD},
}

// Negotiate picks the output format. A path extension beats the format
// query parameter, which beats the Accept header; html is the default.
func Negotiate(extension Format, query, accept string) Format {
	if extension != "" {
		return extension
	}
	if format, ok := ParseFormat(query); ok {
		return format
	}
	accept = lower(accept)
	for _, candidate := range acceptOrder {
		if strings.Contains(accept, candidate.mediaType) {
			return candidate.format
		}
	}
	return FormatHTML
}

func lower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
