package xhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestShouldSkip(t *testing.T) {
	assert.True(t, shouldSkip("/api/v1/health"))
	assert.True(t, shouldSkip("/health"))
	assert.False(t, shouldSkip("/api/v1/customers"))
	assert.False(t, shouldSkip("/api/v1/healthy-customers"))
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("assigns id when absent", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/api/v1/customers")

		RequestIDMiddleware(func(ctx *RequestCtx) {})(ctx)

		assert.NotEmpty(t, ctx.Response.Header.Peek("X-Request-Id"))
	})

	t.Run("keeps client supplied id", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.SetRequestURI("/api/v1/customers")
		ctx.Request.Header.Set("X-Request-Id", "abc-123")

		RequestIDMiddleware(func(ctx *RequestCtx) {})(ctx)

		assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek("X-Request-Id")))
	})
}
