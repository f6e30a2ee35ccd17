package valkey

import "testing"

func TestKeyJoinsUnderPrefix(t *testing.T) {
	c := &Client{keyPrefix: "kinesia"}
	if got := c.Key("cache", "local"); got != "kinesia:cache:local" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := c.Key("cache"); got != "kinesia:cache" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestKeyWithoutPrefix(t *testing.T) {
	c := &Client{}
	if got := c.Key("cache", "local"); got != "cache:local" {
		t.Fatalf("unexpected key %q", got)
	}
}
