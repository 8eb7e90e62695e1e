package osuapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ppcalc/legacy"
	"ppcalc/rulesets"
)

func newTestServer(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	var tokens atomic.Int32
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "1234", r.PostForm.Get("client_id"))
		tokens.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":86400,"scope":"public"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Cleanup(func() {
		assert.LessOrEqual(t, tokens.Load(), int32(1), "token should be cached")
	})

	return NewClient(Config{
		BaseURL:       srv.URL,
		ClientID:      1234,
		ClientSecret:  "secret",
		RatePerMinute: 6000,
	}, zaptest.NewLogger(t))
}

func TestScore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/scores/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "4242", r.PathValue("id"))
		w.Write([]byte(`{"id":4242,"beatmap_id":75,"ruleset_id":1,"mods":[{"acronym":"DC"},{"acronym":"HD"},{"acronym":"CL"}],"statistics":{"great":900,"ok":12,"miss":1}}`))
	})
	client := newTestServer(t, mux)

	score, err := client.Score(context.Background(), 4242)
	require.NoError(t, err)
	assert.Equal(t, 75, score.BeatmapID)
	assert.Equal(t, 1, score.RulesetID)
	assert.Equal(t, []string{"DC", "HD", "CL"}, score.ModAcronyms())
	assert.Equal(t, 12, score.Statistics["ok"])

	ruleset, err := legacy.RulesetFromID(score.RulesetID)
	require.NoError(t, err)
	mods, err := ruleset.ParseMods(score.ModAcronyms())
	require.NoError(t, err)
	assert.Equal(t, rulesets.LegacyHalfTime|rulesets.LegacyHidden, legacy.ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods))
}

func TestBeatmapAttributes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v2/beatmaps/{id}/attributes", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Mods      int `json:"mods"`
			RulesetID int `json:"ruleset_id"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int(rulesets.LegacyHalfTime), req.Mods)
		assert.Equal(t, 0, req.RulesetID)
		w.Write([]byte(`{"attributes":{"star_rating":5.25,"max_combo":1024,"aim_difficulty":2.6,"speed_difficulty":2.1,"slider_factor":0.99}}`))
	})
	client := newTestServer(t, mux)

	attrs, err := client.BeatmapAttributes(context.Background(), 129891, 0, rulesets.LegacyHalfTime)
	require.NoError(t, err)
	osu, ok := attrs.(*rulesets.OsuDifficultyAttributes)
	require.True(t, ok)
	assert.Equal(t, 5.25, osu.StarRating)
	assert.Equal(t, 1024, osu.MaxCombo)
	assert.Equal(t, 2.6, osu.AimDifficulty)
	assert.Equal(t, 0.99, osu.SliderFactor)
}

func TestBeatmapAttributesInvalidRuleset(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"}, zaptest.NewLogger(t))
	_, err := client.BeatmapAttributes(context.Background(), 1, 4, rulesets.LegacyNone)
	assert.ErrorIs(t, err, legacy.ErrInvalidArgument)
}

func TestAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/beatmaps/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":null}`))
	})
	client := newTestServer(t, mux)

	_, err := client.Beatmap(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestRetriesOnTooManyRequests(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/beatmaps/{id}", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"id":53,"mode":"mania","mode_int":3,"version":"4K Hard"}`))
	})
	client := newTestServer(t, mux)

	beatmap, err := client.Beatmap(context.Background(), 53)
	require.NoError(t, err)
	assert.Equal(t, 3, beatmap.ModeInt)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRequestHonorsContext(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v2/beatmaps/{id}", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	client := newTestServer(t, mux)
	_, err := client.Token(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = client.Beatmap(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMissingCredentials(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"}, zaptest.NewLogger(t))
	_, err := client.Token(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
