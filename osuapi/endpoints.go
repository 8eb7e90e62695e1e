package osuapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/levigross/grequests"

	"ppcalc/legacy"
	"ppcalc/rulesets"
)

// Beatmap is the subset of the API beatmap object used here.
type Beatmap struct {
	ID               int     `json:"id"`
	BeatmapsetID     int     `json:"beatmapset_id"`
	Checksum         string  `json:"checksum"`
	DifficultyRating float64 `json:"difficulty_rating"`
	MaxCombo         int     `json:"max_combo"`
	Mode             string  `json:"mode"`
	ModeInt          int     `json:"mode_int"`
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	Cs               float64 `json:"cs"`
	Ar               float64 `json:"ar"`
	Accuracy         float64 `json:"accuracy"`
	Drain            float64 `json:"drain"`
}

type ScoreMod struct {
	Acronym  string         `json:"acronym"`
	Settings map[string]any `json:"settings,omitempty"`
}

// Score is the subset of the API v2 solo score object used here.
type Score struct {
	ID               int64          `json:"id"`
	BeatmapID        int            `json:"beatmap_id"`
	RulesetID        int            `json:"ruleset_id"`
	UserID           int64          `json:"user_id"`
	LegacyScoreID    *int64         `json:"legacy_score_id"`
	Accuracy         float64        `json:"accuracy"`
	MaxCombo         int            `json:"max_combo"`
	TotalScore       int            `json:"total_score"`
	LegacyTotalScore int            `json:"legacy_total_score"`
	PP               *float64       `json:"pp"`
	Rank             string         `json:"rank"`
	Passed           bool           `json:"passed"`
	Mods             []ScoreMod     `json:"mods"`
	Statistics       map[string]int `json:"statistics"`
	EndedAt          time.Time      `json:"ended_at"`
}

// ModAcronyms returns the acronyms of the score's mods in order.
func (s *Score) ModAcronyms() []string {
	ret := make([]string, len(s.Mods))
	for i, mod := range s.Mods {
		ret[i] = mod.Acronym
	}
	return ret
}

func (c *Client) Beatmap(ctx context.Context, id int) (*Beatmap, error) {
	var beatmap Beatmap
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v2/beatmaps/%d", id), nil, &beatmap); err != nil {
		return nil, fmt.Errorf("beatmap %d: %w", id, err)
	}
	return &beatmap, nil
}

func (c *Client) Score(ctx context.Context, id int64) (*Score, error) {
	var score Score
	if err := c.getJSON(ctx, fmt.Sprintf("/api/v2/scores/%d", id), nil, &score); err != nil {
		return nil, fmt.Errorf("score %d: %w", id, err)
	}
	return &score, nil
}

// BeatmapAttributes fetches difficulty attributes for a legacy mod key and
// decodes them into the variant for rulesetID.
func (c *Client) BeatmapAttributes(ctx context.Context, beatmapID int, rulesetID int, mods rulesets.LegacyMods) (rulesets.DifficultyAttributes, error) {
	attrs, err := legacy.CreateDifficultyAttributes(rulesetID)
	if err != nil {
		return nil, err
	}

	var body struct {
		Attributes json.RawMessage `json:"attributes"`
	}
	path := fmt.Sprintf("/api/v2/beatmaps/%d/attributes", beatmapID)
	ro := &grequests.RequestOptions{
		JSON: map[string]any{
			"mods":       int64(mods),
			"ruleset_id": rulesetID,
		},
	}
	if err := c.authorizedJSON(ctx, grequests.Post, path, ro, &body); err != nil {
		return nil, fmt.Errorf("beatmap %d attributes: %w", beatmapID, err)
	}
	if err := json.Unmarshal(body.Attributes, attrs); err != nil {
		return nil, fmt.Errorf("decode beatmap %d attributes: %w", beatmapID, err)
	}
	return attrs, nil
}
