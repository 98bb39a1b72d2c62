package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Schema model errors. Both are fatal at model build time.
var ErrUnresolvedReference = fmt.Errorf("unresolved type reference")
var ErrCyclicInheritance = fmt.Errorf("cyclic inheritance")

// ErrUnknownType is returned when a payload declares a type that is not
// part of the registered schema model.
var ErrUnknownType = fmt.Errorf("unknown type")

// ErrExtensionConflict is returned when the same (base type, vendor) pair
// is registered twice with differing extension descriptors.
var ErrExtensionConflict = fmt.Errorf("extension conflict")

// ErrDanglingReference is returned when a link targets an identifier that
// has been removed after a confirmed server side deletion.
var ErrDanglingReference = fmt.Errorf("dangling reference")

// Protocol errors. All of these are recoverable by the caller.
var ErrTransport = fmt.Errorf("transport error")
var ErrTypeMismatch = fmt.Errorf("type mismatch")
var ErrStaleVersion = fmt.Errorf("stale version")
var ErrInvalidParameters = fmt.Errorf("invalid parameters")

var ErrNotFound = fmt.Errorf("not found")
var ErrInternal = fmt.Errorf("internal error")

type rfError struct {
	msg    string
	target error
}

func (e rfError) Error() string        { return e.msg }
func (e rfError) Is(target error) bool { return target == e.target }

func NewUnresolvedReferenceError(msg string) error {
	return &rfError{msg: msg, target: ErrUnresolvedReference}
}

func NewCyclicInheritanceError(msg string) error {
	return &rfError{msg: msg, target: ErrCyclicInheritance}
}

func NewUnknownTypeError(msg string) error {
	return &rfError{msg: msg, target: ErrUnknownType}
}

func NewExtensionConflictError(msg string) error {
	return &rfError{msg: msg, target: ErrExtensionConflict}
}

func NewDanglingReferenceError(msg string) error {
	return &rfError{msg: msg, target: ErrDanglingReference}
}

func NewTransportError(msg string) error {
	return &rfError{msg: msg, target: ErrTransport}
}

func NewTypeMismatchError(msg string) error {
	return &rfError{msg: msg, target: ErrTypeMismatch}
}

func NewStaleVersionError(msg string) error {
	return &rfError{msg: msg, target: ErrStaleVersion}
}

func NewInvalidParametersError(msg string) error {
	return &rfError{msg: msg, target: ErrInvalidParameters}
}

func NewNotFoundError(msg string) error {
	return &rfError{msg: msg, target: ErrNotFound}
}

// extendedInfo mirrors the Redfish error payload defined by DSP0266:
// an "error" object carrying one or more messages from a message registry.
type extendedInfo struct {
	Error struct {
		Code         string `json:"code"`
		Message      string `json:"message"`
		ExtendedInfo []struct {
			MessageID  string   `json:"MessageId"`
			Message    string   `json:"Message"`
			Resolution string   `json:"Resolution"`
			Severity   string   `json:"Severity"`
			MessageArg []string `json:"MessageArgs"`
		} `json:"@Message.ExtendedInfo"`
	} `json:"error"`
}

// NewErrorFromExtendedInfo maps a Redfish error response to a typed error.
// The HTTP status code decides the failure kind; the extended info block,
// when parseable, contributes the human readable detail.
func NewErrorFromExtendedInfo(code int, contentType string, body []byte) error {
	detail := fmt.Sprintf("service returned status code %d", code)

	info := &extendedInfo{}
	if err := json.Unmarshal(body, info); err == nil {
		if len(info.Error.ExtendedInfo) > 0 && info.Error.ExtendedInfo[0].Message != "" {
			detail = info.Error.ExtendedInfo[0].Message
		} else if info.Error.Message != "" {
			detail = info.Error.Message
		}
	}

	switch code {
	case http.StatusPreconditionFailed:
		return NewStaleVersionError(detail)
	case http.StatusNotFound:
		return NewNotFoundError(detail)
	case http.StatusBadRequest:
		return NewInvalidParametersError(detail)
	}

	return &rfError{
		msg:    fmt.Sprintf("[code: %d] %s", code, detail),
		target: ErrInternal,
	}
}
