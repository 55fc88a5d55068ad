package fyers

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Candle is one bar from the history endpoint, decoded from the broker's
// [timestamp, open, high, low, close, volume] array form.
type Candle struct {
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    int64
}

// ParseCandles converts a GetHistoricalData envelope into typed candles.
// The network contract stays untyped; this is purely local post-processing
// for callers that want exact prices.
func ParseCandles(data Envelope) ([]Candle, error) {
	raw, ok := data["candles"].([]any)
	if !ok {
		return nil, errors.New("envelope has no candles array")
	}

	out := make([]Candle, 0, len(raw))
	for i, item := range raw {
		row, ok := item.([]any)
		if !ok || len(row) < 6 {
			return nil, errors.Errorf("candle %d: malformed row", i)
		}
		ts, err := toInt64(row[0])
		if err != nil {
			return nil, errors.Wrapf(err, "candle %d: timestamp", i)
		}
		var prices [4]decimal.Decimal
		for j := 0; j < 4; j++ {
			prices[j], err = toDecimal(row[j+1])
			if err != nil {
				return nil, errors.Wrapf(err, "candle %d: field %d", i, j+1)
			}
		}
		vol, err := toInt64(row[5])
		if err != nil {
			return nil, errors.Wrapf(err, "candle %d: volume", i)
		}
		out = append(out, Candle{
			Timestamp: time.Unix(ts, 0),
			Open:      prices[0],
			High:      prices[1],
			Low:       prices[2],
			Close:     prices[3],
			Volume:    vol,
		})
	}
	return out, nil
}

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int64:
		return t, nil
	default:
		return 0, errors.Errorf("not a number: %T", v)
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case float64:
		return decimal.NewFromFloat(t), nil
	case string:
		return decimal.NewFromString(t)
	default:
		return decimal.Decimal{}, errors.Errorf("not a number: %T", v)
	}
}
