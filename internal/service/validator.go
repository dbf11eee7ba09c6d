package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jjenkins/legiscan-relay/internal/model"
)

// Shape names an expected upstream response schema
type Shape string

const (
	ShapeBill        Shape = "bill"
	ShapeMasterList  Shape = "master_list"
	ShapeSessionList Shape = "session_list"
	ShapePerson      Shape = "person"
)

const statusOK = "OK"

var (
	errNullBody      = errors.New("expected a JSON object, got null")
	errMissingPerson = errors.New("status is OK but field `person` is missing")
)

// ShapeFor returns the response shape an operation is validated against
func ShapeFor(op Operation) (Shape, error) {
	switch op {
	case OpGetBill:
		return ShapeBill, nil
	case OpGetMasterList, OpGetMasterListRaw:
		return ShapeMasterList, nil
	case OpGetSessionList:
		return ShapeSessionList, nil
	case OpGetPerson:
		return ShapePerson, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

// Validator checks raw upstream text against known response shapes.
// It holds no state; one instance may be shared by all requests.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate decodes raw into the record type for shape. The caller relays raw,
// not the returned value, so fields unknown to the model are never lost.
func (v *Validator) Validate(shape Shape, raw string) (any, error) {
	switch shape {
	case ShapeBill:
		return v.Bill(raw)
	case ShapeMasterList:
		return v.MasterList(raw)
	case ShapeSessionList:
		return v.SessionList(raw)
	case ShapePerson:
		return v.Person(raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
}

// Bill decodes a getBill response
func (v *Validator) Bill(raw string) (*model.Bill, error) {
	var bill model.Bill
	if err := decode(ShapeBill, raw, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// MasterList decodes a getMasterList or getMasterListRaw response
func (v *Validator) MasterList(raw string) (*model.MasterList, error) {
	var list model.MasterList
	if err := decode(ShapeMasterList, raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SessionList decodes a getSessionList response. status and sessions are required.
func (v *Validator) SessionList(raw string) (*model.SessionList, error) {
	var list model.SessionList
	if err := decode(ShapeSessionList, raw, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Person decodes a getPerson response
func (v *Validator) Person(raw string) (*model.PersonResponse, error) {
	var resp model.PersonResponse
	if err := decode(ShapePerson, raw, &resp); err != nil {
		return nil, err
	}
	if resp.Status != nil && *resp.Status == statusOK && resp.Person == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, ShapePerson, errMissingPerson)
	}
	return &resp, nil
}

// SessionNames decodes a session list and returns one name per session.
// Sessions without a name yield "".
func (v *Validator) SessionNames(raw string) ([]string, error) {
	list, err := v.SessionList(raw)
	if err != nil {
		return nil, err
	}
	return list.Names(), nil
}

// UpstreamStatus returns the status field of a decoded response, or "" if absent
func UpstreamStatus(decoded any) string {
	var status *string
	switch r := decoded.(type) {
	case *model.SessionList:
		return r.Status
	case *model.MasterList:
		status = r.Status
	case *model.Bill:
		status = r.Status
	case *model.PersonResponse:
		status = r.Status
	}
	if status == nil {
		return ""
	}
	return *status
}

// IsUpstreamOK reports whether LegiScan marked the response as successful
func IsUpstreamOK(status string) bool {
	return status == statusOK
}

func decode(shape Shape, raw string, dst any) error {
	if strings.TrimSpace(raw) == "null" {
		return fmt.Errorf("%w: %s: %w", ErrDecodeFailed, shape, errNullBody)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodeFailed, shape, err)
	}
	return nil
}
