package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointURLs(t *testing.T) {
	for _, c := range Checkpoints {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, BaseURL+c.Name+"_vision.npz", c.VisionURL())
			assert.Equal(t, BaseURL+c.Name+"_text.npz", c.TextURL())
		})
	}
}

func TestKnownCheckpointURLs(t *testing.T) {
	c, ok := Lookup("tips_oss_g14_lowres")
	require.True(t, ok)
	assert.Equal(t,
		"https://storage.googleapis.com/tips_data/v1_0/checkpoints/pytorch/tips_oss_g14_lowres_vision.npz",
		c.VisionURL())
	assert.Equal(t,
		"https://storage.googleapis.com/tips_data/v1_0/checkpoints/pytorch/tips_oss_g14_lowres_text.npz",
		c.TextURL())
}

func TestDownloadPlan(t *testing.T) {
	plan := DownloadPlan()

	// tokenizer + a vision/text pair per checkpoint
	require.Len(t, plan, 2*len(Checkpoints)+1)
	require.Len(t, plan, 13)

	assert.Equal(t, TokenizerURL, plan[0])

	// Checkpoints follow in list order, vision before text within each.
	for i, c := range Checkpoints {
		assert.Equal(t, c.VisionURL(), plan[1+2*i])
		assert.Equal(t, c.TextURL(), plan[2+2*i])
	}
}

func TestDownloadPlanDeterministic(t *testing.T) {
	assert.Equal(t, DownloadPlan(), DownloadPlan())
}

func TestDownloadPlanSingleTokenizer(t *testing.T) {
	count := 0
	for _, u := range DownloadPlan() {
		if u == TokenizerURL {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCheckpointListShape(t *testing.T) {
	require.Len(t, Checkpoints, 6)

	seen := make(map[string]bool)
	for _, c := range Checkpoints {
		assert.False(t, seen[c.Name], "duplicate checkpoint %s", c.Name)
		seen[c.Name] = true

		assert.True(t, strings.HasPrefix(c.Name, "tips_oss_"), "unexpected identifier %s", c.Name)
		assert.Equal(t, 14, c.PatchSize)
		assert.NotZero(t, c.EmbedDim)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{name: "known checkpoint", query: "tips_oss_b14_highres_distilled", found: true},
		{name: "unknown checkpoint", query: "tips_oss_xxl28", found: false},
		{name: "empty name", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Lookup(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.query, c.Name)
			}
		})
	}
}
