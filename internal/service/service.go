// Package service is the single entry point composing the pipeline:
// classify, look up the template, render, and score in one call. The
// service holds no per-request state; the only shared structure is the
// read-only catalog, so concurrent Process calls need no coordination.
package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dpshade/draftsmith/internal/catalog"
	"github.com/dpshade/draftsmith/internal/classifier"
	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
	"github.com/dpshade/draftsmith/internal/renderer"
	"github.com/dpshade/draftsmith/internal/scorer"
)

// DefaultAmbiguityMargin is the minimum score gap the top candidate must
// hold over the runner-up before the dispatcher will pick it without an
// explicit category hint.
const DefaultAmbiguityMargin = 0.1

// Result is the success outcome of one dispatched request.
type Result struct {
	Document *models.RenderedDocument `json:"document"`
	Score    *models.ScoreReport      `json:"score"`
}

// Service wires the classifier, renderer, and scorer over one catalog.
type Service struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	renderer   *renderer.Renderer
	scorer     *scorer.Scorer
	margin     float64
	log        *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithAmbiguityMargin overrides the minimum top-versus-runner-up score gap.
func WithAmbiguityMargin(margin float64) Option {
	return func(s *Service) { s.margin = margin }
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// New builds a service over the builtin catalog. A catalog load failure is
// fatal and is returned as-is.
func New(opts ...Option) (*Service, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return NewWithCatalog(cat, opts...), nil
}

// NewWithCatalog builds a service over an already-validated catalog.
func NewWithCatalog(cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:    cat,
		classifier: classifier.New(cat),
		renderer:   renderer.New(cat),
		scorer:     scorer.New(),
		margin:     DefaultAmbiguityMargin,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the full pipeline for one request. Failure outcomes are
// typed AppErrors: UNCLASSIFIED_REQUEST when nothing matched,
// AMBIGUOUS_REQUEST when the top candidates tie within the margin (the
// ranked candidates ride along for the caller to choose from), and
// MISSING_REQUIRED_FIELD from rendering. Identical inputs always produce
// identical results.
func (s *Service) Process(requestText string, hint models.Category, fieldValues map[string]string) (*Result, error) {
	classification, err := s.Classify(requestText, hint)
	if err != nil {
		return nil, err
	}

	top, ok := classification.Top()
	if !ok {
		s.log.Debug("request unclassified",
			zap.String("request", requestText),
			zap.Strings("suggestions", classification.Suggestions))
		return nil, errors.UnclassifiedRequestError(requestText, classification.Suggestions)
	}

	if classification.Margin() < s.margin {
		s.log.Debug("request ambiguous",
			zap.String("request", requestText),
			zap.Float64("margin", classification.Margin()),
			zap.Int("candidates", len(classification.Candidates)))
		return nil, errors.AmbiguousRequestError(classification.Candidates).
			WithDetails(fmt.Sprintf("top %d candidates within %.2f of each other",
				len(classification.Candidates), s.margin))
	}

	doc, err := s.Render(top.TemplateID, fieldValues)
	if err != nil {
		return nil, err
	}

	report, err := s.scorer.Score(doc)
	if err != nil {
		return nil, err
	}

	s.log.Info("request processed",
		zap.String("template_id", top.TemplateID),
		zap.Float64("match_score", top.MatchScore),
		zap.Float64("percentage", report.Percentage),
		zap.String("band", string(report.Band)))

	return &Result{Document: doc, Score: report}, nil
}

// Classify exposes the classification stage on its own.
func (s *Service) Classify(requestText string, hint models.Category) (*models.ClassificationResult, error) {
	return s.classifier.Classify(requestText, hint)
}

// Render exposes the rendering stage on its own.
func (s *Service) Render(templateID string, fieldValues map[string]string) (*models.RenderedDocument, error) {
	return s.renderer.Render(templateID, fieldValues)
}

// ScoreDocument re-scores an existing rendered document.
func (s *Service) ScoreDocument(doc *models.RenderedDocument) (*models.ScoreReport, error) {
	return s.scorer.Score(doc)
}

// Templates lists catalog descriptors, optionally filtered by category.
func (s *Service) Templates(cat models.Category) []*models.TemplateDescriptor {
	if cat == "" {
		return s.catalog.Descriptors()
	}
	return s.catalog.ListByCategory(cat)
}

// Template returns a single descriptor by id.
func (s *Service) Template(id string) (*models.TemplateDescriptor, error) {
	return s.catalog.Lookup(id)
}
