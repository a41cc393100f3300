package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiterReusesLimiterPerHost(t *testing.T) {
	hl := NewHostLimiter(1, 1)

	a := hl.limiterFor("www.linkedin.com")
	b := hl.limiterFor("www.linkedin.com")
	c := hl.limiterFor("api.bing.microsoft.com")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestHostLimiterWaitURL(t *testing.T) {
	hl := NewHostLimiter(1000, 1000)

	start := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, hl.WaitURL(context.Background(), "https://www.linkedin.com/jobs/view/1"))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestHostLimiterWaitURLFallsBackOnBadURL(t *testing.T) {
	assert.NoError(t, NewHostLimiter(1000, 1).WaitURL(context.Background(), "://nope"))
}
