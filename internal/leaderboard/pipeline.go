package leaderboard

import (
	"context"
	"fmt"
	"io"

	"mgpresults/internal/components/assert"
	"mgpresults/internal/components/telemetry"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	report_pipeline_parse_document = "pipeline.parse-document"
	report_pipeline_extract_rows   = "pipeline.extract-rows"
	report_pipeline_rows           = "pipeline.rows"
	report_pipeline_unparsed_time  = "pipeline.unparsed-time"
)

var tracer = otel.Tracer("mgpresults.internal.leaderboard")

// Builder turns leaderboard pages into snapshots.
type Builder struct {
	countries Countries
	tel       telemetry.API
}

func NewBuilder(countries Countries, tel telemetry.API) Builder {
	assert.NotNil(tel)
	return Builder{
		countries: countries,
		tel:       telemetry.NewScopedAPI("leaderboard", tel),
	}
}

// Build parses a UTF-8 leaderboard page into a snapshot. It either returns
// the complete snapshot or an error and a zero Snapshot.
func (b Builder) Build(ctx context.Context, page io.Reader) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Build")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		err = &ParseError{Stage: "parse document", Err: err}
		b.tel.ReportBroken(report_pipeline_parse_document, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse document")
		return Snapshot{}, err
	}

	rows, skipped, err := ExtractRows(doc)
	if err != nil {
		b.tel.ReportBroken(report_pipeline_extract_rows, err, TableSelector)
		span.RecordError(err)
		span.SetStatus(codes.Error, "leaderboard table not found")
		return Snapshot{}, err
	}
	if skipped > 0 {
		b.tel.ReportWarning(report_pipeline_extract_rows, fmt.Errorf("skipped %d rows with fewer than %d cells", skipped, minCells))
	}

	results := b.parseRows(ctx, rows)
	snapshot := NewSnapshot(results)

	b.tel.ReportCount(report_pipeline_rows, int64(snapshot.Len()))
	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("skipped_rows", skipped),
		attribute.Int("countries", len(snapshot.countries)),
		attribute.Int("chapters", len(snapshot.chapters)),
	)
	return snapshot, nil
}

func (b Builder) parseRows(ctx context.Context, rows []Row) []RaceResult {
	_, span := tracer.Start(ctx, "parseRows")
	defer span.End()

	results := make([]RaceResult, len(rows))
	for _, row := range rows {
		results[row.Seq] = b.parseRow(row)
	}
	return results
}

func (b Builder) parseRow(row Row) RaceResult {
	pilot := ParsePilotCell(row.Pilot, b.countries)
	race := ParseRaceCell(row.Race)

	result := RaceResult{
		WorldRank:     parseRank(row.RankText),
		PilotName:     pilot.Name,
		PilotNickname: pilot.Nickname,
		CountryName:   pilot.CountryName,
		CountryCode:   pilot.CountryCode,
		RaceRawText:   race.Text,
		RaceLink:      race.Link,
		Chapter:       row.ChapterText,
	}
	if race.Time != nil {
		seconds := race.Time.Seconds
		result.RaceTimeSeconds = &seconds
		result.RaceTimeFormatted = race.Time.Formatted
	} else if race.Text != "" {
		b.tel.ReportDebug(report_pipeline_unparsed_time, row.Seq, race.Text)
	}
	return result
}

// Build is Builder.Build with the embedded country table.
func Build(ctx context.Context, page io.Reader, tel telemetry.API) (Snapshot, error) {
	return NewBuilder(DefaultCountries(), tel).Build(ctx, page)
}
