package langcatalog

import (
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	if _, ok := c.Lookup("eng"); !ok {
		t.Error("embedded catalog is missing eng")
	}
}

func TestLookup(t *testing.T) {
	c, err := parse([]byte(`[
		{"key":"eng","displayName":"English"},
		{"key":"fra","displayName":"French"},
		{"key":"spa","displayName":"Spanish"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		key  string
		want bool
	}{
		{"eng", true},
		{"fra", true},
		{"spa", true},
		{"xyz", false},
		{"en", false},
		{"engl", false},
		{"", false},
		{"ENG", false},
	}
	for _, tt := range cases {
		t.Run(tt.key, func(t *testing.T) {
			d, ok := c.Lookup(tt.key)
			if ok != tt.want {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.key, ok, tt.want)
			}
			if ok && d.Key != tt.key {
				t.Errorf("Lookup(%q) returned key %q", tt.key, d.Key)
			}
		})
	}
}

func TestInstalledPreservesCatalogOrder(t *testing.T) {
	c, err := parse([]byte(`[
		{"key":"eng","displayName":"English"},
		{"key":"fra","displayName":"French"},
		{"key":"spa","displayName":"Spanish"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	// request order must not matter
	sub := c.Installed([]string{"fra", "eng", "xyz"})
	got := sub.Keys()
	want := []string{"eng", "fra"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if _, ok := sub.Lookup("spa"); ok {
		t.Error("spa must not be in the installed subset")
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty array", `[]`},
		{"not json", `nope`},
		{"bad key length", `[{"key":"english","displayName":"English"}]`},
		{"missing name", `[{"key":"eng","displayName":""}]`},
		{"duplicate key", `[{"key":"eng","displayName":"English"},{"key":"eng","displayName":"English again"}]`},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
