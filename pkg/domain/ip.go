// Package domain implements the typed scalar values the domain-typing
// compiler lifts raw literals into: IP addresses/ranges, timestamps and
// durations, plus the numeric coercion math binary operators need.
package domain

import (
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"

	"github.com/cesnet/pynspect/internal/utils/netutil"
)

// IPVersion distinguishes IPv4 from IPv6 ranges; a compiler's typed-field
// registry binds IP4/IP6 fields to the matching version independently, and
// never mixes the two.
type IPVersion int

const (
	IPv4 IPVersion = 4
	IPv6 IPVersion = 6
)

// IPRange is either a single address (Low == High) or a bounded range
// (CIDR, dash-range, or dotted-netmask form), ordered by its lower bound.
type IPRange struct {
	Version  IPVersion
	Low, High net.IP
	// Raw preserves the originally parsed text for printing/diagnostics.
	Raw string
}

func (r IPRange) String() string {
	return r.Raw
}

// Contains reports whether ip falls within [Low, High] inclusive.
func (r IPRange) Contains(ip net.IP) bool {
	return ipCompare(ip, r.Low) >= 0 && ipCompare(ip, r.High) <= 0
}

// Compare orders two ranges by lower bound, then by upper bound — a
// containment/position ordering used when OP_LT/OP_GT etc. are applied to
// IP operands.
func (r IPRange) Compare(other IPRange) int {
	if c := ipCompare(r.Low, other.Low); c != 0 {
		return c
	}
	return ipCompare(r.High, other.High)
}

// ParseIPv4 accepts a bare dotted-quad address, CIDR ("a.b.c.d/n"),
// dash-range ("a.b.c.d-a.b.c.d"), or dotted-netmask range
// ("a.b.c.d/m.m.m.m").
func ParseIPv4(s string) (IPRange, error) {
	return parseIP(s, IPv4)
}

// ParseIPv6 is ParseIPv4's analogue for IPv6 literals ("::1", CIDR,
// dash-range).
func ParseIPv6(s string) (IPRange, error) {
	return parseIP(s, IPv6)
}

func parseIP(s string, version IPVersion) (IPRange, error) {
	raw := strings.TrimSpace(s)

	if idx := strings.IndexByte(raw, '-'); idx > 0 && !strings.Contains(raw, "/") {
		// Dash-range, e.g. "192.168.1.0-192.168.1.255". IPv6 addresses
		// never contain '-', so this branch is unambiguous for both
		// families.
		lowStr, highStr := raw[:idx], raw[idx+1:]
		low := net.ParseIP(lowStr)
		high := net.ParseIP(highStr)
		if low == nil || high == nil {
			return IPRange{}, fmt.Errorf("domain: invalid IP dash-range %q", raw)
		}
		if err := checkVersion(low, version); err != nil {
			return IPRange{}, err
		}
		return IPRange{Version: version, Low: low, High: high, Raw: raw}, nil
	}

	if idx := strings.IndexByte(raw, '/'); idx > 0 {
		base, rest := raw[:idx], raw[idx+1:]
		if netmask := net.ParseIP(rest); netmask != nil {
			// Dotted-netmask form: "a.b.c.d/m.m.m.m".
			ip := net.ParseIP(base)
			if ip == nil {
				return IPRange{}, fmt.Errorf("domain: invalid IP %q in range %q", base, raw)
			}
			if err := checkVersion(ip, version); err != nil {
				return IPRange{}, err
			}
			mask := net.IPMask(netmask.To4())
			if version == IPv6 {
				mask = net.IPMask(netmask.To16())
			}
			network := ip.Mask(mask)
			low, high := networkBounds(network, mask)
			return IPRange{Version: version, Low: low, High: high, Raw: raw}, nil
		}

		// CIDR form: "a.b.c.d/n".
		ip, ipNet, err := net.ParseCIDR(raw)
		if err != nil {
			return IPRange{}, fmt.Errorf("domain: invalid CIDR %q: %w", raw, err)
		}
		if err := checkVersion(ip, version); err != nil {
			return IPRange{}, err
		}
		low, high := networkBounds(ipNet.IP, ipNet.Mask)
		return IPRange{Version: version, Low: low, High: high, Raw: raw}, nil
	}

	// Bare address.
	ip := net.ParseIP(raw)
	if ip == nil {
		return IPRange{}, fmt.Errorf("domain: invalid IP address %q", raw)
	}
	if err := checkVersion(ip, version); err != nil {
		return IPRange{}, err
	}
	return IPRange{Version: version, Low: ip, High: ip, Raw: raw}, nil
}

func checkVersion(ip net.IP, version IPVersion) error {
	is4 := ip.To4() != nil
	if version == IPv4 && !is4 {
		return fmt.Errorf("domain: %q is not an IPv4 address", ip.String())
	}
	if version == IPv6 && is4 {
		return fmt.Errorf("domain: %q is not an IPv6 address", ip.String())
	}
	return nil
}

// networkBounds computes [network, broadcast] for a masked network address,
// using netutil.IPAdd to compute the broadcast address as network + (size-1).
func networkBounds(network net.IP, mask net.IPMask) (net.IP, net.IP) {
	ones, bits := mask.Size()
	hostBits := bits - ones
	size := new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
	size.Sub(size, big.NewInt(1))

	if size.IsInt64() {
		return network, netutil.IPAdd(network, int(size.Int64()))
	}

	// host portion too wide for a plain int offset (e.g. a /0 IPv6
	// range) — compute the broadcast address directly via big.Int.
	base := new(big.Int).SetBytes(network.To16())
	base.Add(base, size)
	b := base.Bytes()
	padded := make([]byte, 16)
	copy(padded[16-len(b):], b)
	return network, net.IP(padded)
}

func ipCompare(a, b net.IP) int {
	a16, b16 := a.To16(), b.To16()
	for i := range a16 {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// looksLikeIPv4 reports whether s, ignoring any "/suffix", is four
// dot-separated decimal octets; LooksLikeIPv4 applies it to each side of a
// dash-range.
func looksLikeIPv4(s string) bool {
	parts := strings.Split(strings.SplitN(s, "/", 2)[0], ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// LooksLikeIPv4 reports whether s has the dotted-quad shape of an IPv4
// literal (bare, CIDR, dash-range, or dotted-netmask).
func LooksLikeIPv4(s string) bool {
	if idx := strings.IndexByte(s, '-'); idx > 0 {
		return looksLikeIPv4(s[:idx]) && looksLikeIPv4(s[idx+1:])
	}
	return looksLikeIPv4(s)
}

// LooksLikeIPv6 reports whether s has the colon-separated shape of an
// IPv6 literal.
func LooksLikeIPv6(s string) bool {
	base := strings.SplitN(s, "/", 2)[0]
	if idx := strings.IndexByte(base, '-'); idx > 0 {
		base = base[:idx]
	}
	return strings.Contains(base, ":")
}
