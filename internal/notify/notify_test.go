package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ultrapopular/internal/notify"
)

func TestFeedCollectsInOrder(t *testing.T) {
	var f notify.Feed
	assert.NotNil(t, f.Notices())
	assert.Empty(t, f.Notices())

	f.Notify(notify.Success, "one")
	f.Notify(notify.Failure, "two")
	assert.Equal(t, []notify.Notice{
		{Kind: notify.Success, Text: "one"},
		{Kind: notify.Failure, Text: "two"},
	}, f.Notices())
}

func TestTeeFansOut(t *testing.T) {
	var a, b notify.Feed
	n := notify.Tee(&a, nil, &b)
	n.Notify(notify.Success, "hi")
	assert.Len(t, a.Notices(), 1)
	assert.Len(t, b.Notices(), 1)

	notify.Discard.Notify(notify.Failure, "ignored")
}
