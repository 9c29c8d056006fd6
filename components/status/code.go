package status

import "errors"

var (
	// StatusError indicates a failure of an operation.
	StatusError = errors.New("operation failed")

	// StatusInvalidState indicates that an operation can't be performed due to invalid state.
	StatusInvalidState = errors.New("invalid state")

	// StatusNotSupported indicates that an operation isn't supported.
	StatusNotSupported = errors.New("not implemented")

	// StatusInvalidArgument indicates that an operation was called with an invalid argument.
	StatusInvalidArgument = errors.New("invalid argument")

	// StatusNoData indicates that the requested data doesn't exist.
	StatusNoData = errors.New("no data")

	// StatusTimeout indicates that an operation didn't complete in time.
	StatusTimeout = errors.New("timeout")

	// StatusResolutionFailed indicates that the name lookup mechanism reported an error.
	StatusResolutionFailed = errors.New("resolution failed")

	// StatusNoAddressesFound indicates that the name lookup succeeded with zero results.
	StatusNoAddressesFound = errors.New("no addresses found")

	// StatusNumericConversionFailed indicates that an address can't be rendered
	// in the numeric form.
	StatusNumericConversionFailed = errors.New("numeric conversion failed")

	// StatusNameNotFound indicates that no name is associated with an address.
	StatusNameNotFound = errors.New("name not found")
)
