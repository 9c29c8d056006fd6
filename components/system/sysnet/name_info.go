package sysnet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/open-control-systems/endpoint-resolver/components/status"
)

// NameInfoFlags controls conversion of a socket address to host and service strings.
type NameInfoFlags int

const (
	// NameInfoNumericHost renders host in the numeric form, no name lookup is performed.
	NameInfoNumericHost NameInfoFlags = 1 << iota

	// NameInfoNumericService renders service in the numeric form.
	NameInfoNumericService

	// NameInfoNameRequired fails if no name is associated with the host.
	NameInfoNameRequired

	// NameInfoDatagram marks the service as a datagram (UDP) service.
	NameInfoDatagram
)

// NameInfo converts addr to host and service strings.
//
// Parameters:
//   - names to resolve the host name, may be nil if NameInfoNumericHost is set.
//   - addr - socket address to convert.
//   - flags - conversion options.
//
// Remarks:
//   - Service is always rendered in the numeric form, the service database isn't
//     consulted, so NameInfoDatagram doesn't change the result.
//   - Returns status.StatusNumericConversionFailed if addr can't be decoded.
//   - Returns status.StatusNameNotFound if NameInfoNameRequired is set and
//     the name lookup fails.
func NameInfo(
	ctx context.Context,
	names NameLookup,
	addr Sockaddr,
	flags NameInfoFlags,
) (string, string, error) {
	ap, err := addr.AddrPort()
	if err != nil {
		return "", "", err
	}

	service := strconv.FormatUint(uint64(ap.Port()), 10)

	if flags&NameInfoNumericHost != 0 {
		return ap.Addr().String(), service, nil
	}

	if names != nil {
		name, err := names.LookupName(ctx, ap.Addr())
		if err == nil {
			return name, service, nil
		}

		if flags&NameInfoNameRequired != 0 {
			return "", "", err
		}
	} else if flags&NameInfoNameRequired != 0 {
		return "", "", fmt.Errorf("name-info: no name lookup: addr=%s: %w",
			ap.Addr(), status.StatusNameNotFound)
	}

	return ap.Addr().String(), service, nil
}
