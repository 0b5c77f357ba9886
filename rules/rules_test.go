package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/lintrule/i18n"
	"github.com/viant/lintrule/resolve"
	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/typeres"
	"github.com/viant/lintrule/unit"
)

const orderSource = `package com.example;

public class order_item {
    private Integer count;

    public boolean check(Integer limit, int max, Long total) {
        boolean a = count == limit;
        boolean b = max == 3;
        boolean c = (limit) != count;
        boolean d = count == null;
        return a && b && c && d;
    }
}`

func TestRules(t *testing.T) {
	aCatalog, err := i18n.New("en")
	require.NoError(t, err)
	cache := resolve.NewCache()
	options := []rule.Option{rule.WithTranslator(aCatalog), rule.WithCache(cache), rule.WithResolver(typeres.New())}

	aUnit, err := unit.Parse(context.Background(), "src/order_item.java", []byte(orderSource))
	require.NoError(t, err)
	ctx := rule.NewContext("src/order_item.java", nil)
	for _, aRule := range All(options...) {
		require.NoError(t, aRule.Visit(aUnit, ctx))
	}
	assert.Equal(t, 1, cache.Len())

	violations := ctx.Report.Violations()
	require.Len(t, violations, 3)
	assert.Equal(t, ClassNamingName, violations[0].Rule)
	assert.Equal(t, 3, violations[0].Line)
	assert.Equal(t, "Class name [order_item] is not in UpperCamelCase.", violations[0].Message)
	assert.Equal(t, "Class names should be written in UpperCamelCase.", violations[0].Description)

	assert.Equal(t, WrapperTypeEqualityName, violations[1].Rule)
	assert.Equal(t, 7, violations[1].Line)
	assert.Equal(t, "Wrapper objects count == limit should be compared with equals instead of '=='.", violations[1].Message)
	assert.Equal(t, WrapperTypeEqualityName, violations[2].Rule)
	assert.Equal(t, 9, violations[2].Line)
}

func TestClassNaming(t *testing.T) {
	tests := []struct {
		description string
		name        string
		valid       bool
	}{
		{description: "upper camel", name: "OrderItem", valid: true},
		{description: "interface prefix", name: "IOrderService", valid: true},
		{description: "DTO suffix", name: "OrderDTO", valid: true},
		{description: "lower camel", name: "orderItem", valid: false},
		{description: "snake case", name: "Order_Item", valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.valid, upperCamelCase.MatchString(tc.name))
		})
	}
}
