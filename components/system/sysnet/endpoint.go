package sysnet

// Endpoint is a resolved candidate, ready to be used for socket creation.
type Endpoint struct {
	Family     int
	SocketType int
	Protocol   int
	Addr       Sockaddr
}

// Clone returns a caller-owned copy of the fields needed for socket creation.
//
// Remarks:
//   - Exactly Addr.Len() bytes of the address are copied.
func (e Endpoint) Clone() Endpoint {
	c := Endpoint{
		Family:     e.Family,
		SocketType: e.SocketType,
		Protocol:   e.Protocol,
	}

	c.Addr.n = copy(c.Addr.buf[:e.Addr.n], e.Addr.buf[:e.Addr.n])

	return c
}
