package fyers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyEnvelope(t *testing.T, raw string) Envelope {
	t.Helper()
	var data Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestParseCandles(t *testing.T) {
	data := historyEnvelope(t, `{
		"s": "ok",
		"candles": [
			[1690000200, 601.5, 603.0, 600.25, 602.8, 152000],
			[1690000260, 602.8, 604.1, 602.0, 603.95, 98000]
		]
	}`)

	candles, err := ParseCandles(data)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	first := candles[0]
	assert.Equal(t, int64(1690000200), first.Timestamp.Unix())
	assert.Equal(t, "601.5", first.Open.String())
	assert.Equal(t, "603", first.High.String())
	assert.Equal(t, "600.25", first.Low.String())
	assert.Equal(t, "602.8", first.Close.String())
	assert.Equal(t, int64(152000), first.Volume)
}

func TestParseCandlesMissingArray(t *testing.T) {
	data := historyEnvelope(t, `{"s":"ok"}`)
	_, err := ParseCandles(data)
	assert.Error(t, err)
}

func TestParseCandlesMalformedRow(t *testing.T) {
	data := historyEnvelope(t, `{"s":"ok","candles":[[1690000200, 601.5]]}`)
	_, err := ParseCandles(data)
	assert.Error(t, err)
}

func TestParseCandlesEmpty(t *testing.T) {
	data := historyEnvelope(t, `{"s":"ok","candles":[]}`)
	candles, err := ParseCandles(data)
	require.NoError(t, err)
	assert.Empty(t, candles)
}
