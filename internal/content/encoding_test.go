package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodedNativeAndString(t *testing.T) {
	type payload struct {
		Buttons Encoded[[]Button] `json:"buttons"`
	}

	native := `{"buttons":[{"text":"Join","link":"#pricing","style":"primary"}]}`
	encoded := `{"buttons":"[{\"text\":\"Join\",\"link\":\"#pricing\",\"style\":\"primary\"}]"}`

	var a, b payload
	require.NoError(t, json.Unmarshal([]byte(native), &a))
	require.NoError(t, json.Unmarshal([]byte(encoded), &b))

	require.True(t, a.Buttons.Present)
	require.True(t, b.Buttons.Present)
	require.Equal(t, a.Buttons.Value, b.Buttons.Value)
	require.Equal(t, "Join", b.Buttons.Value[0].Text)
}

func TestEncodedMalformedStringFails(t *testing.T) {
	type payload struct {
		Stats Encoded[[]Stat] `json:"stats"`
	}
	var p payload
	err := json.Unmarshal([]byte(`{"stats":"[{broken"}`), &p)
	require.Error(t, err)
	require.False(t, p.Stats.Present)
}

func TestEncodedAbsentAndNull(t *testing.T) {
	type payload struct {
		Tags Encoded[[]string] `json:"tags"`
	}
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	require.False(t, p.Tags.Present)

	require.NoError(t, json.Unmarshal([]byte(`{"tags":null}`), &p))
	require.False(t, p.Tags.Present)

	require.NoError(t, json.Unmarshal([]byte(`{"tags":""}`), &p))
	require.False(t, p.Tags.Present)
}

func TestOptScalarsAcceptStringForms(t *testing.T) {
	type payload struct {
		Active OptBool  `json:"isActive"`
		Order  OptInt   `json:"order"`
		Price  OptFloat `json:"price"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"isActive":"false","order":"5","price":"49.99"}`), &p))
	require.True(t, p.Active.Present)
	require.False(t, p.Active.Value)
	require.Equal(t, 5, p.Order.Value)
	require.Equal(t, 49.99, p.Price.Value)

	var q payload
	require.NoError(t, json.Unmarshal([]byte(`{"isActive":true,"order":3,"price":10}`), &q))
	require.True(t, q.Active.Value)
	require.Equal(t, 3, q.Order.Value)

	var r payload
	require.Error(t, json.Unmarshal([]byte(`{"order":"five"}`), &r))
}

func TestFormToJSONRoundTrip(t *testing.T) {
	form := map[string][]string{
		"title":    {"Push harder"},
		"order":    {"2"},
		"isActive": {"true"},
		"stats":    {`[{"number":"500+","label":"Members"}]`},
	}
	raw, err := FormToJSON(form)
	require.NoError(t, err)

	type payload struct {
		Title  *string         `json:"title"`
		Order  OptInt          `json:"order"`
		Active OptBool         `json:"isActive"`
		Stats  Encoded[[]Stat] `json:"stats"`
	}
	var p payload
	require.NoError(t, json.Unmarshal(raw, &p))
	require.Equal(t, "Push harder", *p.Title)
	require.Equal(t, 2, p.Order.Value)
	require.True(t, p.Active.Value)
	require.Len(t, p.Stats.Value, 1)
	require.Equal(t, "500+", p.Stats.Value[0].Number)
}

func TestEncodedMergeInto(t *testing.T) {
	type payload struct {
		Site Encoded[SiteSettings] `json:"site"`
	}

	existing := SiteSettings{Name: "Old Name", Tagline: "Keep me", Description: "Keep me too"}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"site":{"name":"New Name"}}`), &p))
	merged := existing
	require.NoError(t, p.Site.MergeInto(&merged))
	require.Equal(t, "New Name", merged.Name)
	require.Equal(t, "Keep me", merged.Tagline)
	require.Equal(t, "Keep me too", merged.Description)

	// same result when the sub-tree arrives as an embedded JSON string
	var q payload
	require.NoError(t, json.Unmarshal([]byte(`{"site":"{\"tagline\":\"Fresh\"}"}`), &q))
	merged = existing
	require.NoError(t, q.Site.MergeInto(&merged))
	require.Equal(t, "Old Name", merged.Name)
	require.Equal(t, "Fresh", merged.Tagline)

	// absent payloads leave the value alone
	var r payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &r))
	merged = existing
	require.NoError(t, r.Site.MergeInto(&merged))
	require.Equal(t, existing, merged)
}
