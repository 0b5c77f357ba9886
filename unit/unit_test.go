package unit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSource = `package com.example;

public class Person {
    private String name;

    public String getName() {
        return name;
    }
}`

func TestParse(t *testing.T) {
	aUnit, err := Parse(context.Background(), "Person.java", []byte(personSource))
	require.NoError(t, err)
	root := aUnit.Root()
	require.NotNil(t, root)
	assert.Equal(t, "program", root.Type())
	classes := FindNodesByType(root, "class_declaration")
	require.Len(t, classes, 1)
	assert.Equal(t, "Person", aUnit.Content(classes[0].ChildByFieldName("name")))
	assert.Equal(t, 3, aUnit.Line(classes[0]))
}

func TestUnit_Fingerprint(t *testing.T) {
	source := []byte(personSource)
	first, err := Parse(context.Background(), "Person.java", source)
	require.NoError(t, err)
	second, err := Parse(context.Background(), "Person.java", source)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint(), first.Fingerprint())
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Fingerprint(), second.Fingerprint())
}

func TestNew_MonotonicIDs(t *testing.T) {
	var wg sync.WaitGroup
	ids := make(chan uint64, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- New("n/a", nil, nil).ID
		}()
	}
	wg.Wait()
	close(ids)
	seen := map[uint64]bool{}
	for id := range ids {
		assert.False(t, seen[id])
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}

func TestUnit_SetType(t *testing.T) {
	aUnit, err := Parse(context.Background(), "Person.java", []byte(personSource))
	require.NoError(t, err)
	fields := FindNodesByType(aUnit.Root(), "field_declaration")
	require.Len(t, fields, 1)
	name := fields[0].ChildByFieldName("declarator").ChildByFieldName("name")

	_, ok := aUnit.TypeOf(name)
	assert.False(t, ok)
	aUnit.SetType(name, "String")
	typeName, ok := aUnit.TypeOf(name)
	assert.True(t, ok)
	assert.Equal(t, "String", typeName)
	assert.Equal(t, 1, aUnit.TypeCount())
}

func TestSum64(t *testing.T) {
	first, err := sum64([]byte("Person.java"))
	require.NoError(t, err)
	again, err := sum64([]byte("Person.java"))
	require.NoError(t, err)
	other, err := sum64([]byte("Order.java"))
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
}
