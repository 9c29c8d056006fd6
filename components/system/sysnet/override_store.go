package sysnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/open-control-systems/endpoint-resolver/components/status"
	"github.com/open-control-systems/endpoint-resolver/components/storage/stcore"
)

const (
	overrideHostPrefix    = "host/"
	overrideServicePrefix = "service/"
)

// OverrideStore persists host and service overrides.
//
// Remarks:
//   - Values are stored in text form: IPv4 address for hosts, decimal port for services.
type OverrideStore struct {
	db stcore.DB
}

// NewOverrideStore is an initialization of OverrideStore.
//
// Parameters:
//   - db to persist overrides.
func NewOverrideStore(db stcore.DB) *OverrideStore {
	return &OverrideStore{db: db}
}

// SetHost overrides address of the host.
func (s *OverrideStore) SetHost(host string, addr netip.Addr) error {
	if host == "" {
		return fmt.Errorf("override-store: host is empty: %w", status.StatusInvalidArgument)
	}

	addr = addr.Unmap()
	if !addr.Is4() {
		return fmt.Errorf("override-store: not an IPv4 address: %s: %w",
			addr, status.StatusInvalidArgument)
	}

	return s.db.Write(overrideHostPrefix+host, stcore.Blob{Data: []byte(addr.String())})
}

// SetService overrides port of the service.
func (s *OverrideStore) SetService(service string, port uint16) error {
	if service == "" {
		return fmt.Errorf("override-store: service is empty: %w", status.StatusInvalidArgument)
	}

	return s.db.Write(overrideServicePrefix+service,
		stcore.Blob{Data: []byte(strconv.FormatUint(uint64(port), 10))})
}

// RemoveHost removes the host override.
func (s *OverrideStore) RemoveHost(host string) error {
	return s.db.Remove(overrideHostPrefix + host)
}

// RemoveService removes the service override.
func (s *OverrideStore) RemoveService(service string) error {
	return s.db.Remove(overrideServicePrefix + service)
}

// Host returns the address override, status.StatusNoData if there is no override.
func (s *OverrideStore) Host(host string) (netip.Addr, error) {
	blob, err := s.db.Read(overrideHostPrefix + host)
	if err != nil {
		return netip.Addr{}, err
	}

	addr, err := netip.ParseAddr(string(blob.Data))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("override-store: corrupted host=%s: %w", host, err)
	}

	return addr, nil
}

// Service returns the port override, status.StatusNoData if there is no override.
func (s *OverrideStore) Service(service string) (uint16, error) {
	blob, err := s.db.Read(overrideServicePrefix + service)
	if err != nil {
		return 0, err
	}

	port, err := strconv.ParseUint(string(blob.Data), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("override-store: corrupted service=%s: %w", service, err)
	}

	return uint16(port), nil
}

// ForEach iterates over all overrides.
//
// Parameters:
//   - fn receives kind ("host" or "service"), name and value in text form.
func (s *OverrideStore) ForEach(fn func(kind, name, value string) error) error {
	return s.db.ForEach(func(key string, b stcore.Blob) error {
		kind, name, ok := strings.Cut(key, "/")
		if !ok {
			return nil
		}

		return fn(kind, name, string(b.Data))
	})
}
