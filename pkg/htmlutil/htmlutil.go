package htmlutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

var tracer = otel.Tracer("mgpresults.pkg.htmlutil")

var innerWhitespace = regexp.MustCompile(`[\s\x{00a0}]+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText drops non-printable runes, trims the ends and collapses runs
// of whitespace into a single space.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}

// DecodeUTF8 converts an HTML body to UTF-8. The charset is taken from the
// content type when present, otherwise it is sniffed from the document.
func DecodeUTF8(ctx context.Context, body []byte, contentType string) ([]byte, error) {
	_, span := tracer.Start(ctx, "DecodeUTF8")
	defer span.End()

	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown charset")
		return nil, fmt.Errorf("charset reader: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode body")
		return nil, fmt.Errorf("decode body: %w", err)
	}

	span.SetAttributes(
		attribute.String("content_type", contentType),
		attribute.Int("bytes", len(decoded)),
	)
	return decoded, nil
}
