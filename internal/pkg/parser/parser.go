package parser

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	// Unrecognized filters are ignored, not errors.
	d.IgnoreUnknownKeys(true)
	return d
}

// DecodeQuery decodes the request's query string into dst using `schema`
// struct tags. Unknown keys (including the `_token` credential) are skipped.
func DecodeQuery(c *fiber.Ctx, dst interface{}) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return queryDecoder.Decode(dst, values)
}
