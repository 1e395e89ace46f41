package quotes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedHeader = "description;strike;kind;bid;ask;underlying_bid;underlying_ask;created_at"

func TestReadFeed(t *testing.T) {
	input := strings.Join([]string{
		feedHeader,
		"GFGC1033OC;1033;CALL;130;178,999;1180,5;1184,85;10/18/2023 12:18",
		"GFGC1033OC;1033;CALL;;180;1181;1185;10/18/2023 12:19",
	}, "\n")

	got, err := ReadFeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, RawQuote{
		Description: "GFGC1033OC",
		Strike:      "1033",
		Kind:        "CALL",
		Bid:         "130",
		Ask:         "178,999",
		UnderBid:    "1180,5",
		UnderAsk:    "1184,85",
		CreatedAt:   "10/18/2023 12:18",
	}, got[0])
	assert.Empty(t, got[1].Bid)
	assert.Equal(t, "10/18/2023 12:19", got[1].CreatedAt)
}

func TestReadFeedDropsShortLines(t *testing.T) {
	input := strings.Join([]string{
		feedHeader,
		"GFGC1033OC;1033;CALL;130;178,999;1180,5;1184,85;10/18/2023 12:18",
		"GFGC1033OC;1033;CALL", // too few fields
		"",
		"GFGC1033OC;1033;CALL;131;179;1181;1185;10/18/2023 12:20",
	}, "\n")

	got, err := ReadFeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "130", got[0].Bid)
	assert.Equal(t, "131", got[1].Bid)
}

func TestReadFeedHeaderOnly(t *testing.T) {
	got, err := ReadFeed(strings.NewReader(feedHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadFeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.csv")
	content := feedHeader + "\nGFGC1033OC;1033;CALL;130;178,999;1180,5;1184,85;10/18/2023 12:18\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFeedFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReadFeedFileMissing(t *testing.T) {
	_, err := ReadFeedFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
