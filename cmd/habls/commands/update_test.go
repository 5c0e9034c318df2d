package commands

import "testing"

func TestVersionLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"v0.3.0", "v0.10.0", true},
		{"v0.10.0", "v0.3.0", false},
		{"v0.3.0", "v0.3.0", false},
		{"v1.2.3", "v1.10.0", true},
		{"v2.0.0", "v1.99.99", false},
		{"0.3.0", "v0.4.0", true},
		{"v0.3.0\n", "v0.4.0", true},
		{"garbage", "v0.1.0", true},
	}
	for _, c := range cases {
		if got := versionLess(c.a, c.b); got != c.want {
			t.Errorf("versionLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
