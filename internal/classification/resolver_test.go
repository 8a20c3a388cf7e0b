package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobiinJonsson/MarketDataAPI-sub002/pkg/contracts/domain"
)

func TestIsClassificationCode(t *testing.T) {
	assert.True(t, IsClassificationCode("ESVUFR"))
	assert.True(t, IsClassificationCode("DBFTFB"))
	assert.False(t, IsClassificationCode("bond"))
	assert.False(t, IsClassificationCode("ESVUF"))
	assert.False(t, IsClassificationCode("ESVUFRX"))
	assert.False(t, IsClassificationCode("esvufr"))
	assert.False(t, IsClassificationCode("ES1UFR"))
	assert.False(t, IsClassificationCode(""))
}

func TestResolveCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want domain.Category
	}{
		{name: "equity code", code: "ESVUFR", want: domain.CategoryEquity},
		{name: "debt code", code: "DBFTFB", want: domain.CategoryDebt},
		{name: "swap code", code: "SEBVCC", want: domain.CategorySwaps},
		{name: "option code", code: "OCASPS", want: domain.CategoryOptions},
		{name: "code with unknown letter", code: "XXVUFR", want: DefaultCategory},
		{name: "legacy bond label", code: "bond", want: domain.CategoryDebt},
		{name: "legacy etf label resolves to funds not equity", code: "etf", want: domain.CategoryCollective},
		{name: "legacy fund label resolves to funds not futures", code: "fund", want: domain.CategoryCollective},
		{name: "legacy swap label", code: "Swap", want: domain.CategorySwaps},
		{name: "legacy structured label", code: "structured", want: domain.CategoryStructured},
		{name: "legacy warrant label", code: "warrant", want: domain.CategoryRights},
		{name: "unknown label", code: "mystery", want: DefaultCategory},
		{name: "empty", code: "", want: DefaultCategory},
		{name: "whitespace", code: "  ", want: DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCode(tt.code))
		})
	}
}
