// Package redfish holds the result types shared by the protocol session
// operations in pkg/redfish/client.
package redfish

import (
	"encoding/json"
)

type CreateEntityResult struct {
	location string
}

func NewCreateEntityResult(location string) *CreateEntityResult {
	return &CreateEntityResult{
		location: location,
	}
}

// Location is the resource identifier of the created collection member.
func (r CreateEntityResult) Location() string {
	return r.location
}

type DeleteEntityResult struct{}

func NewDeleteEntityResult() *DeleteEntityResult {
	return &DeleteEntityResult{}
}

// InvokeActionResult carries the outcome of an action invocation: the
// response payload, if any, and the task monitor identifier when the
// service chose to run the action asynchronously.
type InvokeActionResult struct {
	taskMonitor string
	payload     map[string]any
}

func NewInvokeActionResult(taskMonitor string, body []byte) (*InvokeActionResult, error) {
	r := &InvokeActionResult{
		taskMonitor: taskMonitor,
	}

	if len(body) > 0 {
		err := json.Unmarshal(body, &r.payload)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// TaskMonitor is the identifier to poll for an asynchronously executed
// action, empty when the action completed synchronously.
func (r InvokeActionResult) TaskMonitor() string {
	return r.taskMonitor
}

func (r InvokeActionResult) Payload() map[string]any {
	return r.payload
}

// IsAsync reports whether the service accepted the action for deferred
// execution.
func (r InvokeActionResult) IsAsync() bool {
	return r.taskMonitor != ""
}
