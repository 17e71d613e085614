package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		value string
		rate  string
		want  string
	}{
		{
			name:  "正常系: 1000の10%",
			value: "1000",
			rate:  "10",
			want:  "100",
		},
		{
			name:  "正常系: 99.99の15%",
			value: "99.99",
			rate:  "15",
			want:  "15",
		},
		{
			name:  "正常系: 小数点以下2桁に丸められる",
			value: "33.33",
			rate:  "7.5",
			want:  "2.5",
		},
		{
			name:  "正常系: 四捨五入（切り上げ側）",
			value: "10.01",
			rate:  "2.5",
			want:  "0.25",
		},
		{
			name:  "正常系: 0%は0",
			value: "1000",
			rate:  "0",
			want:  "0",
		},
		{
			name:  "正常系: 負の結果は0に丸められる",
			value: "1000",
			rate:  "-10",
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := decimal.RequireFromString(tt.value)
			rate := decimal.RequireFromString(tt.rate)
			want := decimal.RequireFromString(tt.want)

			got := PercentOf(value, rate)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "正常系: 切り上げ",
			value: "1.005",
			want:  "1.01",
		},
		{
			name:  "正常系: 切り捨て",
			value: "1.004",
			want:  "1",
		},
		{
			name:  "正常系: 丸め不要",
			value: "1.25",
			want:  "1.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(decimal.RequireFromString(tt.value))
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   string
		max   string
		want  string
	}{
		{
			name:  "正常系: 範囲内はそのまま",
			value: "50",
			min:   "0",
			max:   "100",
			want:  "50",
		},
		{
			name:  "正常系: 下限に制限",
			value: "-10",
			min:   "0",
			max:   "100",
			want:  "0",
		},
		{
			name:  "正常系: 上限に制限",
			value: "150",
			min:   "0",
			max:   "100",
			want:  "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(
				decimal.RequireFromString(tt.value),
				decimal.RequireFromString(tt.min),
				decimal.RequireFromString(tt.max),
			)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestMin(t *testing.T) {
	a := decimal.RequireFromString("10")
	b := decimal.RequireFromString("20")

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Min(b, a).Equal(a))
	assert.True(t, Min(a, a).Equal(a))
}
