// Package discovery provides mDNS-based discovery of SSH-reachable machines.
//
// Hosts that advertise the "_ssh._tcp" service type on the local network are
// collected into candidates that can be added to an inventory without typing
// their names by hand. Discovery is best effort: it requires multicast support
// on the network interface and mDNS traffic (UDP port 5353) to pass, and a
// machine that does not advertise SSH simply never shows up.
//
// Usage:
//
//	candidates, err := discovery.Scan(5 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range candidates {
//	    fmt.Printf("%s (%s) port %d\n", c.Hostname, c.IP, c.Port)
//	}
package discovery
