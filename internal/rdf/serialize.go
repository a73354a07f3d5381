package rdf

import (
	"fmt"

	"heritage/api/internal/ontology"
	"heritage/api/internal/resource"
)

var contentTypes = map[resource.Format]string{
	resource.FormatTurtle: "text/turtle; charset=utf-8",
	resource.FormatRDFXML: "application/rdf+xml; charset=utf-8",
	resource.FormatJSONLD: "application/ld+json; charset=utf-8",
}

// ContentType returns the response media type for an RDF format.
func ContentType(format resource.Format) (string, bool) {
	contentType, ok := contentTypes[format]
	return contentType, ok
}

// Serialize renders props about subject in the given RDF format.
func Serialize(format resource.Format, ns ontology.Namespace, subject string, props PropertySet) ([]byte, error) {
	switch format {
	case resource.FormatTurtle:
		return Turtle(ns, subject, props), nil
	case resource.FormatRDFXML:
		return RDFXML(ns, subject, props), nil
	case resource.FormatJSONLD:
		return JSONLD(ns, subject, props)
	default:
		return nil, fmt.Errorf("serialize: unsupported format %q", format)
	}
}
