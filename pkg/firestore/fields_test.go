package firestore

import (
	"testing"

	"golang-stock-ideas/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_DefensiveScalars(t *testing.T) {
	f := Fields{
		"symbol": String("TCS"),
		"price":  String("not a number"),
	}

	assert.Equal(t, "TCS", f.String("symbol"))
	assert.Equal(t, "", f.String("missing"))
	assert.Equal(t, 0.0, f.Float("price"))
	assert.Nil(t, f.OptionalFloat("price"))
	assert.Nil(t, f.OptionalString("missing"))
	assert.False(t, f.Bool("missing"))
	assert.Nil(t, f.OptionalBool("missing"))
}

func TestFields_StringListFiltersNonStrings(t *testing.T) {
	f := Fields{"alerts": Array(String("a"), Double(1), Value{}, String("b"))}
	assert.Equal(t, []string{"a", "b"}, f.StringList("alerts"))
	assert.Equal(t, []string{}, f.StringList("missing"))
}

func TestFields_MapList(t *testing.T) {
	f := Fields{"actions": Array(Map(Fields{"id": String("1")}), Map(nil))}
	list, err := f.MapList("actions")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].String("id"))
	assert.Empty(t, list[1])
}

func TestFields_MapListRejectsNonMaps(t *testing.T) {
	f := Fields{"actions": Array(Map(Fields{}), String("oops"))}
	_, err := f.MapList("actions")
	require.Error(t, err)

	var mapErr *apperror.MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "actions[1]", mapErr.Path)

	_, err = Fields{"actions": String("oops")}.MapList("actions")
	assert.True(t, apperror.IsMapping(err))
}

func TestFields_Map(t *testing.T) {
	f := Fields{
		"baseline": Map(Fields{"stoploss": Double(100)}),
		"broken":   Double(1),
	}

	m, ok, err := f.Map("baseline")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 100.0, m.Float("stoploss"))

	_, ok, err = f.Map("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = f.Map("broken")
	assert.True(t, apperror.IsMapping(err))
}

func TestFields_OptionalTime(t *testing.T) {
	f := Fields{"postedAt": String("garbage")}
	_, err := f.OptionalTime("postedAt")
	assert.True(t, apperror.IsMapping(err))

	got, err := f.OptionalTime("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDocument_ID(t *testing.T) {
	doc := Document{Name: "projects/p/databases/(default)/documents/stockRecommendations/abc123"}
	assert.Equal(t, "abc123", doc.ID())
	assert.Equal(t, "", Document{}.ID())
}
