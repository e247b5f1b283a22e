package certificate

import (
	"testing"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/stretchr/testify/assert"
)

// The PDF capture must not start before the frame reaches network idle, so
// the event filter has to accept exactly the networkIdle lifecycle event of
// the rendered frame and nothing else.
func TestIsFrameNetworkIdle(t *testing.T) {
	frameID := cdp.FrameID("frame-1")

	assert.True(t, isFrameNetworkIdle(&page.EventLifecycleEvent{
		FrameID: frameID,
		Name:    "networkIdle",
	}, frameID))
}

func TestIsFrameNetworkIdleIgnoresOtherLifecycleEvents(t *testing.T) {
	frameID := cdp.FrameID("frame-1")

	for _, name := range []string{"init", "DOMContentLoaded", "load", "networkAlmostIdle"} {
		assert.False(t, isFrameNetworkIdle(&page.EventLifecycleEvent{
			FrameID: frameID,
			Name:    name,
		}, frameID), "event %q must not end the quiescence wait", name)
	}
}

func TestIsFrameNetworkIdleIgnoresOtherFrames(t *testing.T) {
	assert.False(t, isFrameNetworkIdle(&page.EventLifecycleEvent{
		FrameID: cdp.FrameID("frame-2"),
		Name:    "networkIdle",
	}, cdp.FrameID("frame-1")))
}

func TestIsFrameNetworkIdleIgnoresUnrelatedEvents(t *testing.T) {
	frameID := cdp.FrameID("frame-1")

	assert.False(t, isFrameNetworkIdle(&page.EventFrameNavigated{}, frameID))
	assert.False(t, isFrameNetworkIdle(nil, frameID))
}
