package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"heritage/api/internal/config"
	"heritage/api/internal/gateway"
	"heritage/api/internal/metrics"
	"heritage/api/internal/ontology"
	"heritage/api/internal/rdf"
	"heritage/api/internal/resource"
)

// Gateway supplies the property set of one entity.
type Gateway interface {
	Fetch(ctx context.Context, typ, id string) (rdf.PropertySet, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	cfg       config.Config
	namespace ontology.Namespace
	gateway   Gateway
	metrics   *metrics.Metrics
}

// Document is a serialized entity description.
type Document struct {
	ContentType     string
	ContentLocation string
	Body            []byte
}

func New(cfg config.Config, gateway Gateway, m *metrics.Metrics) *Service {
	return &Service{
		cfg:       cfg,
		namespace: ontology.NewNamespace(cfg.OntologyBase, cfg.OntologyPrefix),
		gateway:   gateway,
		metrics:   m,
	}
}

func (s *Service) Namespace() ontology.Namespace {
	return s.namespace
}

func (s *Service) Metrics() *metrics.Metrics {
	return s.metrics
}

// Describe fetches ref once and serializes it. ref.Type must already be
// normalized so Content-Location does not depend on the alias used.
func (s *Service) Describe(ctx context.Context, ref ontology.EntityRef, format resource.Format) (Document, error) {
	contentType, ok := rdf.ContentType(format)
	if !ok {
		return Document{}, fmt.Errorf("describe: no serializer for %q", format)
	}

	started := time.Now()
	props, err := s.gateway.Fetch(ctx, ref.Type, ref.ID)
	s.metrics.ObserveFetch(fetchOutcome(err), time.Since(started))
	if err != nil {
		if !errors.Is(err, gateway.ErrNotFound) && !errors.Is(err, context.Canceled) {
			log.Printf("resolver: fetch %s/%s failed: %v", ref.Type, ref.ID, err)
		}
		return Document{}, fmt.Errorf("fetch %s/%s: %w", ref.Type, ref.ID, err)
	}

	subject := s.namespace.CanonicalEntityURI(ref.Type, ref.ID)
	body, err := rdf.Serialize(format, s.namespace, subject, props)
	if err != nil {
		return Document{}, fmt.Errorf("serialize %s/%s: %w", ref.Type, ref.ID, err)
	}
	return Document{
		ContentType:     contentType,
		ContentLocation: subject,
		Body:            body,
	}, nil
}

// Ping reports whether the knowledge store is reachable. Gateways without a
// health check are assumed ready.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.gateway.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func fetchOutcome(err error) string {
	switch {
	case err == nil:
		return "found"
	case errors.Is(err, gateway.ErrNotFound):
		return "not_found"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "upstream_error"
	}
}
