package productcontroller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string) (ListParams, error) {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return ParseListParams(values)
}

func TestParseListParams_Defaults(t *testing.T) {
	params, err := parse(t, "")
	require.NoError(t, err)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, defaultPageSize, params.Limit)
	assert.Equal(t, "created_at DESC", params.OrderClause())
}

func TestParseListParams_FullQuery(t *testing.T) {
	params, err := parse(t, "keyword=runner&gender=Men&size=42&price[gte]=50&price[lte]=150&bestseller=true&sort=-price&page=2&limit=10")
	require.NoError(t, err)

	assert.Equal(t, "runner", params.Keyword)
	assert.Equal(t, "men", params.Gender)
	assert.Equal(t, 42, params.Size)
	require.NotNil(t, params.MinPrice)
	assert.Equal(t, 50.0, *params.MinPrice)
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, 150.0, *params.MaxPrice)
	require.NotNil(t, params.BestSeller)
	assert.True(t, *params.BestSeller)
	assert.Equal(t, "price DESC", params.OrderClause())
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Limit)
}

func TestParseListParams_Invalid(t *testing.T) {
	for _, raw := range []string{
		"size=forty-two",
		"price[gte]=cheap",
		"bestseller=kinda",
		"page=0",
		"limit=-5",
		"sort=injection%3Bdrop",
	} {
		_, err := parse(t, raw)
		assert.Error(t, err, "query %q", raw)
	}
}

func TestParseListParams_LimitCapped(t *testing.T) {
	params, err := parse(t, "limit=5000")
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, params.Limit)
}

func TestParseListParams_FieldsWhitelist(t *testing.T) {
	params, err := parse(t, "fields=name,price,password,drop table")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"name", "price"}, params.Fields)
}

func TestOrderClause(t *testing.T) {
	cases := map[string]string{
		"price":   "price ASC",
		"-price":  "price DESC",
		"newest":  "created_at ASC",
		"-rating": "rating DESC",
		"":        "created_at DESC",
	}
	for sort, want := range cases {
		params := ListParams{Sort: sort}
		assert.Equal(t, want, params.OrderClause(), "sort %q", sort)
	}
}
