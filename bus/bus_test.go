// bus/bus_test.go
package bus

import (
	"sort"
	"testing"
	"time"
)

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(T("fade", "led"))
	conn.Publish(NewMessage(T("fade", "led"), "hello", false))

	expectOneOf(t, sub, "hello")
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(NewMessage(T("fade", "led"), "persist", true))
	sub := conn.Subscribe(T("fade", "led"))

	expectOneOf(t, sub, "persist")
}

func TestMatch(t *testing.T) {
	type C struct {
		filter, topic Topic
		want          bool
	}
	for _, c := range []C{
		{T("a", "b"), T("a", "b"), true},
		{T("a", "b"), T("a"), false},
		{T("a"), T("a", "b"), false},
		{T("a", "+"), T("a", "b"), true},
		{T("a", "+"), T("a"), false},
		{T("a", "#"), T("a"), true},
		{T("a", "#"), T("a", "b", "c"), true},
		{T("#"), T("x"), true},
		{T("a", "+", "c"), T("a", "b", "d"), false},
	} {
		if got := Match(c.filter, c.topic); got != c.want {
			t.Fatalf("Match(%s, %s) = %v, want %v", c.filter, c.topic, got, c.want)
		}
	}
}

// -----------------------------------------------------------------------------
// Wildcards
// -----------------------------------------------------------------------------

func TestWildcard_SingleLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	s1 := c.Subscribe(T("a", "+", "c"))
	s2 := c.Subscribe(T("a", "+", "+"))
	s3 := c.Subscribe(T("a", "b", "+"))
	sNo := c.Subscribe(T("a", "+", "d"))

	c.Publish(NewMessage(T("a", "b", "c"), "m1", false))
	expectOneOf(t, s1, "m1")
	expectOneOf(t, s2, "m1")
	expectOneOf(t, s3, "m1")
	expectNoMessage(t, sNo)

	c.Publish(NewMessage(T("a", "x", "y"), "m2", false))
	expectOneOf(t, s2, "m2")
	expectNoMessage(t, s1)
	expectNoMessage(t, s3)
	expectNoMessage(t, sNo)

	c.Publish(NewMessage(T("a", "c"), "m3", false))
	expectNoMessage(t, s1)
	expectNoMessage(t, s2)
	expectNoMessage(t, s3)
	expectNoMessage(t, sNo)
}

func TestWildcard_MultiLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sAHash := c.Subscribe(T("a", "#"))
	sHash := c.Subscribe(T("#"))
	sABHash := c.Subscribe(T("a", "b", "#"))
	sAExact := c.Subscribe(T("a"))

	c.Publish(NewMessage(T("a"), "p1", false))
	expectOneOf(t, sAHash, "p1")
	expectOneOf(t, sHash, "p1")
	expectOneOf(t, sAExact, "p1")
	expectNoMessage(t, sABHash)

	c.Publish(NewMessage(T("a", "b", "c"), "p2", false))
	expectOneOf(t, sAHash, "p2")
	expectOneOf(t, sHash, "p2")
	expectOneOf(t, sABHash, "p2")
	expectNoMessage(t, sAExact)
}

func TestWildcard_RetainedDelivery(t *testing.T) {
	b := NewBus(32)
	c := b.NewConnection("test")

	c.Publish(NewMessage(T("a"), "r0", true))
	c.Publish(NewMessage(T("a", "b"), "r1", true))
	c.Publish(NewMessage(T("a", "b", "c"), "r2", true))
	c.Publish(NewMessage(T("a", "x"), "r3", true))

	s := c.Subscribe(T("a", "+"))
	assertUnorderedEqual(t, drainPayloads(t, s, 2), []string{"r1", "r3"})
	expectNoMessage(t, s)

	s2 := c.Subscribe(T("a", "#"))
	assertUnorderedEqual(t, drainPayloads(t, s2, 4), []string{"r0", "r1", "r2", "r3"})
}

func TestWildcard_RetainedClear(t *testing.T) {
	b := NewBus(8)
	c := b.NewConnection("test")

	c.Publish(NewMessage(T("a", "b"), "keep", true))
	c.Publish(NewMessage(T("a", "y"), "other", true))
	c.Publish(NewMessage(T("a", "b"), nil, true))

	s := c.Subscribe(T("a", "+"))
	expectOneOf(t, s, "other")
	expectNoMessage(t, s)
}

func TestQueueDropsOldest(t *testing.T) {
	b := NewBus(2)
	c := b.NewConnection("test")
	s := c.Subscribe(T("q"))

	for _, p := range []string{"1", "2", "3"} {
		c.Publish(NewMessage(T("q"), p, false))
	}
	assertUnorderedEqual(t, drainPayloads(t, s, 2), []string{"2", "3"})
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")
	s := c.Subscribe(T("a", "b"))
	keep := c.Subscribe(T("a", "#"))

	s.Unsubscribe()
	s.Unsubscribe()
	if _, ok := <-s.Channel(); ok {
		t.Fatal("channel still open after Unsubscribe")
	}

	c.Publish(NewMessage(T("a", "b"), "after", false))
	expectOneOf(t, keep, "after")

	c.Disconnect()
	if _, ok := <-keep.Channel(); ok {
		t.Fatal("channel still open after Disconnect")
	}
	if len(b.root.children) != 0 {
		t.Fatalf("trie not pruned: %v", b.root.children)
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func expectOneOf(t *testing.T, sub *Subscription, want string) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != want {
			t.Fatalf("payload = %v, want %q", got.Payload, want)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNoMessage(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		t.Fatalf("unexpected message %v on %s", got.Payload, got.Topic)
	case <-time.After(20 * time.Millisecond):
	}
}

func drainPayloads(t *testing.T, sub *Subscription, n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for len(out) < n {
		select {
		case m := <-sub.Channel():
			out = append(out, m.Payload.(string))
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("got %d of %d messages: %v", len(out), n, out)
		}
	}
	return out
}

func assertUnorderedEqual(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
