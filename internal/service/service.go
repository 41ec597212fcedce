package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"mgpresults/internal/components/assert"
	"mgpresults/internal/components/chrono"
	"mgpresults/internal/components/telemetry"
	"mgpresults/internal/leaderboard"
	"mgpresults/internal/scrapers/multigp"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_service_load    = "service.load"
	report_service_suggest = "service.suggest"
)

// minSuggestionSimilarity is the Jaro-Winkler score a known country needs
// to be offered in place of an unknown one.
const minSuggestionSimilarity = 0.8

// Fetcher retrieves the leaderboard page.
//
// note: fault injection point
type Fetcher interface {
	FetchLeaderboard(ctx context.Context) (multigp.Page, error)
}

// Service runs the fetch and parse pipeline and answers queries about the
// result. Every call is a separate run, nothing is cached between calls.
type Service struct {
	fetcher Fetcher
	builder leaderboard.Builder
	time    chrono.API
	tel     telemetry.API

	runs        metric.Int64Counter
	runDuration metric.Float64Histogram
}

func NewService(fetcher Fetcher, builder leaderboard.Builder, time chrono.API, tel telemetry.API) Service {
	assert.NotNil(fetcher)
	assert.NotNil(time)
	assert.NotNil(tel)

	meter := otel.Meter("mgpresults.internal.service")
	runs, _ := meter.Int64Counter(
		"leaderboard.runs",
		metric.WithDescription("Completed pipeline runs by outcome."),
	)
	runDuration, _ := meter.Float64Histogram(
		"leaderboard.run_duration",
		metric.WithUnit("s"),
	)

	return Service{
		fetcher:     fetcher,
		builder:     builder,
		time:        time,
		tel:         telemetry.NewScopedAPI("service", tel),
		runs:        runs,
		runDuration: runDuration,
	}
}

// Run is the outcome of one successful pipeline run.
type Run struct {
	Snapshot  leaderboard.Snapshot
	Source    string
	FetchedAt time.Time
}

// Load fetches the page and builds a snapshot from it. On error nothing from
// the run is returned.
func (s Service) Load(ctx context.Context) (Run, error) {
	start := time.Now()

	run, err := s.load(ctx)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.tel.ReportBroken(report_service_load, err)
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	s.runs.Add(ctx, 1, attrs)
	s.runDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	return run, err
}

func (s Service) load(ctx context.Context) (Run, error) {
	page, err := s.fetcher.FetchLeaderboard(ctx)
	if err != nil {
		return Run{}, err
	}
	fetchedAt := s.time.Now()

	snapshot, err := s.builder.Build(ctx, bytes.NewReader(page.Body))
	if err != nil {
		return Run{}, err
	}

	return Run{
		Snapshot:  snapshot,
		Source:    page.Url,
		FetchedAt: fetchedAt,
	}, nil
}

// Page is everything the presentation layer needs to render the results
// view for one pair of filters.
type Page struct {
	Results            []leaderboard.RaceResult `json:"results"`
	Countries          []string                 `json:"countries"`
	Chapters           []string                 `json:"chapters"`
	ChaptersForCountry []string                 `json:"chapters_for_country"`

	SelectedCountry string `json:"selected_country"`
	SelectedChapter string `json:"selected_chapter"`
	// Total is the number of results before filtering.
	Total int `json:"total"`
	// SuggestedCountry is set when SelectedCountry matched no result but a
	// known country is spelled similarly.
	SuggestedCountry string `json:"suggested_country,omitempty"`

	Source    string    `json:"source,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
	// Error is set, and every list is empty, when the run failed.
	Error string `json:"error,omitempty"`
}

func emptyPage(country, chapter string) Page {
	return Page{
		Results:            []leaderboard.RaceResult{},
		Countries:          []string{},
		Chapters:           []string{},
		ChaptersForCountry: []string{},
		SelectedCountry:    country,
		SelectedChapter:    chapter,
	}
}

// Page runs the pipeline and applies the filters. When the run fails the
// returned page carries the error message and no data.
func (s Service) Page(ctx context.Context, country, chapter string) (Page, error) {
	country = strings.TrimSpace(country)
	chapter = strings.TrimSpace(chapter)

	run, err := s.Load(ctx)
	if err != nil {
		page := emptyPage(country, chapter)
		page.Error = err.Error()
		return page, err
	}

	snapshot := run.Snapshot
	page := Page{
		Results:            snapshot.Filter(country, chapter),
		Countries:          snapshot.Countries(),
		Chapters:           snapshot.Chapters(),
		ChaptersForCountry: snapshot.ChaptersByCountry(country),
		SelectedCountry:    country,
		SelectedChapter:    chapter,
		Total:              snapshot.Len(),
		Source:             run.Source,
		FetchedAt:          run.FetchedAt,
	}
	if country != "" && len(snapshot.Filter(country, "")) == 0 {
		page.SuggestedCountry = s.suggestCountry(country, page.Countries)
	}
	return page, nil
}

// ChaptersByCountry is the narrow query used to refresh the chapter choices
// for a country. It returns an empty list when the run fails.
func (s Service) ChaptersByCountry(ctx context.Context, country string) ([]string, error) {
	run, err := s.Load(ctx)
	if err != nil {
		return []string{}, err
	}
	return run.Snapshot.ChaptersByCountry(strings.TrimSpace(country)), nil
}

func (s Service) suggestCountry(query string, countries []string) string {
	query = strings.ToLower(query)

	var mostSimilarity float64
	var mostSimilar string
	for _, country := range countries {
		similarity := matchr.JaroWinkler(query, strings.ToLower(country), false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = country
		}
	}

	if mostSimilarity < minSuggestionSimilarity {
		return ""
	}
	s.tel.ReportDebug(report_service_suggest, query, mostSimilar, mostSimilarity)
	return mostSimilar
}
