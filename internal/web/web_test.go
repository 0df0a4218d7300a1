package web_test

import (
	"bus2ride"
	"bus2ride/internal/catalog"
	mockpolls "bus2ride/internal/polls/mock"
	"bus2ride/internal/web"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newMux(t *testing.T) (*http.ServeMux, *mockpolls.MockPolls) {
	t.Helper()

	sub, err := fs.Sub(bus2ride.Content, "content")
	require.NoError(t, err)
	cat, err := catalog.Load(sub)
	require.NoError(t, err)

	polls := mockpolls.NewMockPolls(gomock.NewController(t))
	mux := http.NewServeMux()
	web.New(web.Deps{Catalog: cat, Polls: polls}).Routes(mux)

	return mux, polls
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func result(id, category, question string, counts ...int64) domain.PollResult {
	res := domain.PollResult{Poll: domain.Poll{ID: domain.PollID(id), Category: category, Question: question}}
	for i, c := range counts {
		res.TotalVotes += c
		res.Options = append(res.Options, domain.OptionResult{Option: string(rune('A' + i)), Votes: c})
	}
	for i := range res.Options {
		if res.TotalVotes > 0 {
			res.Options[i].Percent = int(res.Options[i].Votes * 100 / res.TotalVotes)
		}
	}

	return res
}

func TestPollResults(t *testing.T) {
	t.Run("groups by category", func(t *testing.T) {
		mux, polls := newMux(t)
		polls.EXPECT().AllResults(gomock.Any(), "").Return([]domain.PollResult{
			result("a", "party-bus", "Best <lights>?", 3, 1),
			result("b", "party-bus", "Best sound?", 1),
			result("c", "general", "Price or space?", 0, 0),
		}, nil)

		rec := get(mux, "/polls/results")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		body := rec.Body.String()
		require.Contains(t, body, "<title>Poll Results | Bus2Ride</title>")
		require.Contains(t, body, "Best &lt;lights&gt;?")
		require.NotContains(t, body, "<lights>")
		require.Equal(t, 1, strings.Count(body, `<h2 id="party-bus">`))
		require.Contains(t, body, `<h2 id="general">General</h2>`)
		require.Contains(t, body, `style="width:75%"`)
		require.Contains(t, body, "4 votes")
		require.Contains(t, body, "(1 vote)")
		require.Less(t, strings.Index(body, "party-bus"), strings.Index(body, `id="general"`))
	})

	t.Run("category filter", func(t *testing.T) {
		mux, polls := newMux(t)
		polls.EXPECT().AllResults(gomock.Any(), "events").Return(nil, nil)

		rec := get(mux, "/polls/results?category=events")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "No polls yet.")
	})

	t.Run("storage failure", func(t *testing.T) {
		mux, polls := newMux(t)
		polls.EXPECT().AllResults(gomock.Any(), "").Return(nil, errors.New("db down"))

		rec := get(mux, "/polls/results")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		require.NotContains(t, rec.Body.String(), "db down")
	})
}

func TestPollEmbed(t *testing.T) {
	t.Run("renders card", func(t *testing.T) {
		mux, polls := newMux(t)
		polls.EXPECT().Results(gomock.Any(), domain.PollID("event_type")).
			Return(&domain.PollResult{
				Poll: domain.Poll{ID: "event_type", Question: "What's your event?"},
				Options: []domain.OptionResult{
					{Option: "Prom", Votes: 2, Percent: 67},
					{Option: "Wedding", Votes: 1, Percent: 33},
				},
				TotalVotes: 3,
			}, nil)

		rec := get(mux, "/polls/embed/event_type")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, web.EmbedCacheControl, rec.Header().Get("Cache-Control"))
		require.Contains(t, rec.Body.String(), `id="poll-event_type"`)
		require.Contains(t, rec.Body.String(), "What&#39;s your event?")
		require.Contains(t, rec.Body.String(), "67%")
	})

	t.Run("unknown poll", func(t *testing.T) {
		mux, polls := newMux(t)
		polls.EXPECT().Results(gomock.Any(), domain.PollID("nope")).
			Return(nil, serrors.With(serrors.ErrNotFound, "poll not found"))

		rec := get(mux, "/polls/embed/nope")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		require.Contains(t, rec.Body.String(), "We could not find that page.")
	})
}

func TestFleet(t *testing.T) {
	mux, _ := newMux(t)

	rec := get(mux, "/fleet")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "30 Passenger Party Bus")
	require.Contains(t, rec.Body.String(), `<option value="limousine">Limousine</option>`)

	rec = get(mux, "/fleet?category=party-bus")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Party Bus")
	require.Contains(t, rec.Body.String(), `<option value="party-bus" selected>`)

	rec = get(mux, "/fleet?q=zzzz-no-such-vehicle")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No vehicles match your search.")
	require.Contains(t, rec.Body.String(), `value="zzzz-no-such-vehicle"`)

	rec = get(mux, "/fleet?category=boat")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Unknown vehicle category &#34;boat&#34;.")
}
