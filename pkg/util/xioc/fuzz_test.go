package xioc

import (
	"net/netip"
	"testing"
)

// 提取结果必须全部是可解析的地址，且归属正确。
func FuzzFindAll(f *testing.F) {
	f.Add("visit 8.8.8.8 and ::1")
	f.Add("version 1.2.3.4.5")
	f.Add("2001[:]db8[:][:]1 and 10[.]0[.]0[.]1")
	f.Add("")
	f.Add("::")

	f.Fuzz(func(t *testing.T, text string) {
		for _, s := range FindIPv4(text) {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				t.Fatalf("FindIPv4 returned unparseable %q from %q: %v", s, text, err)
			}
			if !addr.Is4() {
				t.Fatalf("FindIPv4 returned non-IPv4 %q from %q", s, text)
			}
		}
		for _, s := range FindIPv6(text) {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				t.Fatalf("FindIPv6 returned unparseable %q from %q: %v", s, text, err)
			}
			if !addr.Is6() {
				t.Fatalf("FindIPv6 returned non-IPv6 %q from %q", s, text)
			}
		}
		// FindAll 是两个提取器结果的拼接
		all := FindAll(text)
		if len(all) != len(FindIPv4(text))+len(FindIPv6(text)) {
			t.Fatalf("FindAll length mismatch for %q", text)
		}
	})
}
