package typeres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/unit"
)

const accountSource = `package com.example;

import java.util.List;

public class Account {
    private Long id;
    private List<String> tags;

    public boolean same(Integer other, int limit) {
        Integer local = other;
        for (String tag : tags) {
            String id = tag;
        }
        return this.id == null && local == other && limit > 0;
    }
}`

func TestResolver_Resolve(t *testing.T) {
	aUnit, err := unit.Parse(context.Background(), "Account.java", []byte(accountSource))
	require.NoError(t, err)
	require.NoError(t, New().Resolve(aUnit, rule.NewContext("Account.java", nil)))

	typed := map[string][]string{}
	for _, node := range unit.FindNodesByType(aUnit.Root(), "identifier", "field_access") {
		if typeName, ok := aUnit.TypeOf(node); ok {
			typed[aUnit.Content(node)] = append(typed[aUnit.Content(node)], typeName)
		}
	}
	assert.Contains(t, typed["other"], "Integer")
	assert.Contains(t, typed["local"], "Integer")
	assert.Contains(t, typed["limit"], "int")
	assert.Contains(t, typed["tags"], "List")
	assert.Contains(t, typed["tag"], "String")
	assert.Contains(t, typed["this.id"], "Long")
	assert.Contains(t, typed["id"], "String")
}

func TestResolver_Resolve_NoTree(t *testing.T) {
	err := New().Resolve(unit.New("Empty.java", nil, nil), rule.NewContext("Empty.java", nil))
	assert.Error(t, err)
}

func TestResolver_Resolve_DeclarationOrder(t *testing.T) {
	source := `class Shadow {
    private Long id;

    void check() {
        Long before = id;
        String id = "a";
        String after = id;
    }
}`
	aUnit, err := unit.Parse(context.Background(), "Shadow.java", []byte(source))
	require.NoError(t, err)
	require.NoError(t, New().Resolve(aUnit, rule.NewContext("Shadow.java", nil)))

	values := map[string]string{}
	for _, declarator := range unit.FindNodesByType(aUnit.Root(), "variable_declarator") {
		value := declarator.ChildByFieldName("value")
		if value == nil || value.Type() != "identifier" {
			continue
		}
		typeName, _ := aUnit.TypeOf(value)
		values[aUnit.Content(declarator.ChildByFieldName("name"))] = typeName
	}
	assert.Equal(t, "Long", values["before"])
	assert.Equal(t, "String", values["after"])
}
