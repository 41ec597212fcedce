package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mgpresults/internal/components/chrono"
	"mgpresults/internal/components/telemetry"
	"mgpresults/internal/leaderboard"
	"mgpresults/internal/scrapers/multigp"

	"github.com/stretchr/testify/require"
)

const testPage = `<html><body>
<table id="topPilotTable"><tbody>
<tr><td>1</td><td><img class="country-flag" src="/flags/us.png">John 'Maverick' Smith</td><td>1:02.345</td><td>Austin FPV</td></tr>
<tr><td>2</td><td><img class="country-flag" src="/flags/jp.png">Taro Yamada</td><td>65.100</td><td>Tokyo Drone Club</td></tr>
<tr><td>3</td><td><img class="country-flag" src="/flags/us.png">Jane Doe</td><td>DNF</td><td>Denver Rippers</td></tr>
</tbody></table>
</body></html>`

type fakeFetcher struct {
	body  string
	err   error
	calls int
}

func (f *fakeFetcher) FetchLeaderboard(ctx context.Context) (multigp.Page, error) {
	f.calls++
	if f.err != nil {
		return multigp.Page{}, f.err
	}
	return multigp.Page{
		Url:        "https://example.test/results",
		StatusCode: 200,
		Body:       []byte(f.body),
	}, nil
}

var fetchedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(fetcher Fetcher) (Service, *telemetry.Recorder) {
	tel := telemetry.NewRecorder()
	builder := leaderboard.NewBuilder(leaderboard.DefaultCountries(), tel)
	return NewService(fetcher, builder, chrono.FixedImpl{At: fetchedAt}, tel), tel
}

func TestLoad(t *testing.T) {
	fetcher := &fakeFetcher{body: testPage}
	svc, _ := newTestService(fetcher)

	run, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, run.Snapshot.Len())
	require.Equal(t, "https://example.test/results", run.Source)
	require.Equal(t, fetchedAt, run.FetchedAt)

	_, err = svc.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, fetcher.calls, "every load should fetch again")
}

func TestLoadFailures(t *testing.T) {
	fetchErr := &multigp.FetchError{Url: "https://example.test", StatusCode: 503}

	cases := []struct {
		name    string
		fetcher *fakeFetcher
		check   func(t *testing.T, err error)
	}{
		{
			name:    "fetch error",
			fetcher: &fakeFetcher{err: fetchErr},
			check: func(t *testing.T, err error) {
				var target *multigp.FetchError
				require.ErrorAs(t, err, &target)
				require.Equal(t, 503, target.StatusCode)
			},
		},
		{
			name:    "missing table",
			fetcher: &fakeFetcher{body: "<html><body><p>maintenance</p></body></html>"},
			check: func(t *testing.T, err error) {
				require.True(t, errors.Is(err, leaderboard.ErrTableNotFound))
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, tel := newTestService(c.fetcher)
			run, err := svc.Load(context.Background())
			require.Error(t, err)
			c.check(t, err)
			require.Equal(t, 0, run.Snapshot.Len())
			require.NotEmpty(t, tel.Find("broken", report_service_load))
		})
	}
}

func TestPage(t *testing.T) {
	svc, _ := newTestService(&fakeFetcher{body: testPage})

	page, err := svc.Page(context.Background(), " Estados Unidos ", "")
	require.NoError(t, err)
	require.Empty(t, page.Error)
	require.Equal(t, "Estados Unidos", page.SelectedCountry)
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Results, 2)
	require.Equal(t, "John Smith", page.Results[0].PilotName)
	require.Equal(t, "Maverick", page.Results[0].PilotNickname)
	require.Equal(t, 1, page.Results[0].NationalRank)
	require.Equal(t, 2, page.Results[1].NationalRank)
	require.Equal(t, []string{"Estados Unidos", "Japón"}, page.Countries)
	require.Equal(t, []string{"Austin FPV", "Denver Rippers", "Tokyo Drone Club"}, page.Chapters)
	require.Equal(t, []string{"Austin FPV", "Denver Rippers"}, page.ChaptersForCountry)
	require.Empty(t, page.SuggestedCountry)
	require.Equal(t, fetchedAt, page.FetchedAt)

	page, err = svc.Page(context.Background(), "jp", "tokyo")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	require.Equal(t, "Taro Yamada", page.Results[0].PilotName)

	page, err = svc.Page(context.Background(), "", "nowhere")
	require.NoError(t, err)
	require.NotNil(t, page.Results)
	require.Empty(t, page.Results)
	require.Equal(t, 3, page.Total)
}

func TestPageSuggestsCountry(t *testing.T) {
	svc, _ := newTestService(&fakeFetcher{body: testPage})

	page, err := svc.Page(context.Background(), "Japon", "")
	require.NoError(t, err)
	require.Empty(t, page.Results)
	require.Equal(t, "Japón", page.SuggestedCountry)

	page, err = svc.Page(context.Background(), "Zzqxw", "")
	require.NoError(t, err)
	require.Empty(t, page.SuggestedCountry)
}

func TestPageFailure(t *testing.T) {
	svc, _ := newTestService(&fakeFetcher{err: &multigp.FetchError{
		Url: "https://example.test",
		Err: errors.New("connection refused"),
	}})

	page, err := svc.Page(context.Background(), "US", "austin")
	require.Error(t, err)
	require.Contains(t, page.Error, "connection refused")
	require.Equal(t, "US", page.SelectedCountry)
	require.Equal(t, "austin", page.SelectedChapter)
	require.NotNil(t, page.Results)
	require.Empty(t, page.Results)
	require.NotNil(t, page.Countries)
	require.Empty(t, page.Countries)
	require.NotNil(t, page.Chapters)
	require.NotNil(t, page.ChaptersForCountry)
}

func TestChaptersByCountry(t *testing.T) {
	svc, _ := newTestService(&fakeFetcher{body: testPage})

	chapters, err := svc.ChaptersByCountry(context.Background(), "JP")
	require.NoError(t, err)
	require.Equal(t, []string{"Tokyo Drone Club"}, chapters)

	chapters, err = svc.ChaptersByCountry(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, chapters, 3)

	chapters, err = svc.ChaptersByCountry(context.Background(), "Narnia")
	require.NoError(t, err)
	require.Equal(t, []string{}, chapters)

	failing, _ := newTestService(&fakeFetcher{err: errors.New("boom")})
	chapters, err = failing.ChaptersByCountry(context.Background(), "JP")
	require.Error(t, err)
	require.Equal(t, []string{}, chapters)
}
