package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanSequence(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-1", 0)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "0", CurrentSpanID(ctx))

	id, span := NextSpanID(ctx)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, "1", span)

	_, span = NextSpanID(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, "2", CurrentSpanID(ctx))
}

func TestNextSpanIDWithoutTrace(t *testing.T) {
	id, span := NextSpanID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, "1", span)
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Equal(t, "0", CurrentSpanID(context.Background()))
}

func TestWithNewRequest(t *testing.T) {
	a := RequestIDFromContext(WithNewRequest(context.Background()))
	b := RequestIDFromContext(WithNewRequest(context.Background()))
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
