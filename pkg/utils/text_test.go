package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wadi/pkg/utils"
)

func TestTruncateDescription(t *testing.T) {
	assert.Equal(t, "", utils.TruncateDescription("", 150))
	assert.Equal(t, "short", utils.TruncateDescription("short", 150))

	exact := strings.Repeat("a", 150)
	assert.Equal(t, exact, utils.TruncateDescription(exact, 150))

	over := strings.Repeat("a", 151)
	got := utils.TruncateDescription(over, 150)
	assert.Equal(t, strings.Repeat("a", 150)+"...", got)
	assert.Len(t, []rune(got), 153)
}

func TestTruncateDescription_CountsRunesNotBytes(t *testing.T) {
	// Arabic text: 5 characters but far more bytes.
	assert.Equal(t, "الواحة", utils.TruncateDescription("الواحة", 150))

	long := strings.Repeat("و", 151)
	got := utils.TruncateDescription(long, 150)
	assert.Equal(t, strings.Repeat("و", 150)+"...", got)
}

func TestResolveImage_LocalPathWinsOverURL(t *testing.T) {
	got := utils.ResolveImage("artifacts/mask.jpg", "https://cdn.example.com/mask.jpg", "http://api.example.com")
	require.NotNil(t, got)
	assert.Equal(t, "http://api.example.com/media/artifacts/mask.jpg", *got)
}

func TestResolveImage_TrimsSlashes(t *testing.T) {
	got := utils.ResolveImage("/artifacts/mask.jpg", "", "http://api.example.com/")
	require.NotNil(t, got)
	assert.Equal(t, "http://api.example.com/media/artifacts/mask.jpg", *got)
}

func TestResolveImage_ExternalURLPassesThrough(t *testing.T) {
	got := utils.ResolveImage("", "https://cdn.example.com/mask.jpg", "http://api.example.com")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/mask.jpg", *got)
}

func TestResolveImage_NothingStored(t *testing.T) {
	assert.Nil(t, utils.ResolveImage("", "", "http://api.example.com"))
}
