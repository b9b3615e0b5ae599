package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price は金額。バックエンドのBigDecimalは number / string / {value:"..."} の
// どれでも届くので、どの形でも落とさずに受ける。
type Price float64

// パース不能は0円扱い（描画を止めない）。エラーは返さない。
func (p *Price) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		*p = 0
		return nil
	}
	*p = Price(CoerceNumber(raw))
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

func (p Price) Float() float64 {
	return float64(p)
}

// CoerceNumber は number / 数値文字列 / {value:...} を有限のfloat64にする。
// それ以外（nil・ゴミ・NaN・Inf）は0。
func CoerceNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(x)
	case float32:
		return finiteOrZero(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case map[string]any:
		// BigDecimalのJSON表現 {value:"29.99", scale:2} など
		if inner, ok := x["value"]; ok {
			return CoerceNumber(inner)
		}
		return 0
	default:
		return 0
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
