package domain

import (
	"net"
	"testing"
)

func TestParseIPv4Bare(t *testing.T) {
	r, err := ParseIPv4("189.14.166.41")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(net.ParseIP("189.14.166.41")) {
		t.Error("range should contain its own address")
	}
	if r.Contains(net.ParseIP("189.14.166.42")) {
		t.Error("bare address range should not contain a neighbor")
	}
}

func TestParseIPv4CIDR(t *testing.T) {
	r, err := ParseIPv4("188.14.166.0/24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(net.ParseIP("188.14.166.39")) {
		t.Error("188.14.166.39 should be in 188.14.166.0/24")
	}
	if r.Contains(net.ParseIP("188.14.167.1")) {
		t.Error("188.14.167.1 should not be in 188.14.166.0/24")
	}
}

func TestParseIPv4DashRange(t *testing.T) {
	r, err := ParseIPv4("10.0.0.1-10.0.0.10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(net.ParseIP("10.0.0.5")) {
		t.Error("10.0.0.5 should fall within 10.0.0.1-10.0.0.10")
	}
	if r.Contains(net.ParseIP("10.0.0.11")) {
		t.Error("10.0.0.11 should fall outside 10.0.0.1-10.0.0.10")
	}
}

func TestParseIPv6(t *testing.T) {
	r, err := ParseIPv6("::1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Contains(net.ParseIP("::1")) {
		t.Error("range should contain its own address")
	}
}

func TestScenario4IPLifting(t *testing.T) {
	// Scenario 4: (Source.IP4 in ["188.14.166.0/24","10.0.0.0/8","189.14.166.41"])
	ranges := []string{"188.14.166.0/24", "10.0.0.0/8", "189.14.166.41"}
	var parsed []IPRange
	for _, s := range ranges {
		r, err := ParseIPv4(s)
		if err != nil {
			t.Fatalf("unexpected error parsing %q: %v", s, err)
		}
		parsed = append(parsed, r)
	}

	candidate := net.ParseIP("188.14.166.39")
	found := false
	for _, r := range parsed {
		if r.Contains(candidate) {
			found = true
		}
	}
	if !found {
		t.Error("188.14.166.39 should match 188.14.166.0/24")
	}
}
