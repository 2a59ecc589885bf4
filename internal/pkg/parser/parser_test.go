package parser_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink-api/internal/pkg/parser"
)

type testFilter struct {
	Search       string `schema:"search"`
	MinEmployees string `schema:"min_employees"`
	MaxEmployees string `schema:"max_employees"`
}

func decode(t *testing.T, target string) testFilter {
	t.Helper()
	app := fiber.New()

	var got testFilter
	app.Get("/", func(c *fiber.Ctx) error {
		if err := parser.DecodeQuery(c, &got); err != nil {
			return err
		}
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return got
}

func TestDecodeQuery(t *testing.T) {
	got := decode(t, "/?search=rithm&min_employees=10&max_employees=500")
	assert.Equal(t, "rithm", got.Search)
	assert.Equal(t, "10", got.MinEmployees)
	assert.Equal(t, "500", got.MaxEmployees)
}

func TestDecodeQuery_IgnoresUnknownKeys(t *testing.T) {
	got := decode(t, "/?search=rithm&_token=abc&bogus=1")
	assert.Equal(t, "rithm", got.Search)
}

func TestDecodeQuery_Empty(t *testing.T) {
	got := decode(t, "/")
	assert.Empty(t, got.Search)
	assert.Empty(t, got.MinEmployees)
}
