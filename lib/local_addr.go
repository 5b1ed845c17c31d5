package lib

import (
	"context"
	"net"
	"os"
)

const fallbackLocalAddress = "127.0.0.1"

// DetectLocalAddress finds the address this machine uses to reach the
// outside. Connecting a UDP socket sends no packet, it only selects the
// route. If there is no route the address the host name resolves to is
// used, and loopback as the last resort.
func DetectLocalAddress(ctx context.Context) string {
	var d net.Dialer
	if conn, err := d.DialContext(ctx, "udp", "198.51.100.1:53"); err == nil {
		addr := conn.LocalAddr().(*net.UDPAddr).IP.String()
		_ = conn.Close()
		return addr
	}
	if name, err := os.Hostname(); err == nil {
		addrs, err := net.DefaultResolver.LookupHost(ctx, name)
		if err == nil {
			if addr, err := pickAddress(addrs); err == nil {
				return addr
			}
		}
	}
	return fallbackLocalAddress
}
