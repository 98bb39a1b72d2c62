package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rackwise/redfish-client/pkg/redfish"
	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/graph"
	"github.com/rackwise/redfish-client/pkg/redfish/oem"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
	"github.com/rackwise/redfish-client/pkg/redfish/types/entities"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const DefaultServiceRoot string = "/redfish/v1"

// RedfishClient is the protocol session: it orchestrates navigation,
// conditional mutation and action invocation over an abstract transport,
// backed by a shared resource graph. Sessions are stateless between
// calls; every operation is independently addressed by identifier.
type RedfishClient interface {
	Navigate(ctx context.Context, id string) (types.Entity, error)
	NavigateLink(ctx context.Context, link types.Link) (types.Entity, error)
	List(ctx context.Context, collectionID string) ([]string, error)
	Mutate(ctx context.Context, id string, changes map[string]any) (types.Entity, error)
	Invoke(ctx context.Context, id, action string, params map[string]any) (*redfish.InvokeActionResult, error)
	Create(ctx context.Context, collectionID string, entity types.Entity) (*redfish.CreateEntityResult, error)
	Delete(ctx context.Context, id string) (*redfish.DeleteEntityResult, error)
	ServiceRoot(ctx context.Context) (types.Entity, error)
	Graph() *graph.Graph
}

func Debug(enabled string) func(*rfClient) {
	return func(c *rfClient) {
		c.debug = (enabled == "true")
	}
}

// RetryBudget bounds how many times an idempotent read is retried on
// transient transport failure. Mutations and actions are never retried.
func RetryBudget(retries int) func(*rfClient) {
	return func(c *rfClient) {
		if retries > 0 {
			c.retryBudget = retries
		}
	}
}

// ServiceRootID overrides the conventional service root identifier.
func ServiceRootID(id string) func(*rfClient) {
	return func(c *rfClient) {
		c.serviceRoot = id
	}
}

func NewRedfishClient(transport Transport, model *schema.Model, registry *oem.Registry, options ...func(*rfClient)) RedfishClient {
	c := &rfClient{
		transport:   transport,
		model:       model,
		registry:    registry,
		graph:       graph.New(),
		serviceRoot: DefaultServiceRoot,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeResourceID string = "resource-id"
	TraceAttributeActionName string = "action-name"
)

var tracer = otel.Tracer("redfish-client")

type rfClient struct {
	transport   Transport
	model       *schema.Model
	registry    *oem.Registry
	graph       *graph.Graph
	serviceRoot string
	retryBudget int
	debug       bool
}

func (c *rfClient) Graph() *graph.Graph {
	return c.graph
}

func (c *rfClient) ServiceRoot(ctx context.Context) (types.Entity, error) {
	return c.Navigate(ctx, c.serviceRoot)
}

func (c *rfClient) Navigate(ctx context.Context, id string) (types.Entity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "navigate",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	entity, err := c.navigate(ctx, id, schema.TypeRef{})
	return entity, err
}

func (c *rfClient) NavigateLink(ctx context.Context, link types.Link) (types.Entity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "navigate-link",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, link.Target)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = c.graph.CheckLink(link); err != nil {
		return nil, err
	}

	entity, err := c.navigate(ctx, link.Target, link.Expected)
	return entity, err
}

func (c *rfClient) navigate(ctx context.Context, id string, expected schema.TypeRef) (types.Entity, error) {
	if entity, ok := c.graph.Get(id); ok {
		if !expected.IsZero() && !c.model.IsSubtype(entity.Type(), expected) {
			return nil, errors.NewTypeMismatchError(
				fmt.Sprintf("cached resource %s has type %s, expected a subtype of %s", id, entity.Type(), expected),
			)
		}
		return entity, nil
	}

	return c.fetch(ctx, id, expected)
}

// fetch reads a resource over the transport and installs it in the graph.
// Reads are idempotent, so transient transport failures are retried up to
// the configured budget.
func (c *rfClient) fetch(ctx context.Context, id string, expected schema.TypeRef) (types.Entity, error) {
	var response Response
	var err error

	for attempt := 0; attempt <= c.retryBudget; attempt++ {
		response, err = c.transport.Send(ctx, Request{Method: http.MethodGet, Target: id})
		if err == nil {
			break
		}

		if ctx.Err() != nil {
			break
		}

		if c.debug {
			log := logging.GetFromContext(ctx)
			log.Warn("retrying read after transport failure",
				slog.String("resource", id), slog.Int("attempt", attempt+1))
		}
	}

	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, errors.NewErrorFromExtendedInfo(
			response.StatusCode, response.Headers.Get("Content-Type"), response.Body,
		)
	}

	entity, err := entities.NewFromPayload(c.model, c.registry, expected, response.Body,
		entities.ETag(response.Headers.Get("ETag")),
	)
	if err != nil {
		return nil, err
	}

	c.graph.InsertOrReplace(entity)

	return entity, nil
}

func (c *rfClient) List(ctx context.Context, collectionID string) ([]string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-members",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, collectionID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	entity, err := c.navigate(ctx, collectionID, schema.TypeRef{})
	if err != nil {
		return nil, err
	}

	members := entity.Members()
	if members == nil {
		err = errors.NewTypeMismatchError(
			fmt.Sprintf("resource %s of type %s is not a collection", collectionID, entity.Type()),
		)
		return nil, err
	}

	return members, nil
}

func (c *rfClient) Mutate(ctx context.Context, id string, changes map[string]any) (types.Entity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "mutate",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	c.graph.LockEntry(id)
	defer c.graph.UnlockEntry(id)

	current, ok := c.graph.Get(id)
	if !ok {
		current, err = c.fetch(ctx, id, schema.TypeRef{})
		if err != nil {
			return nil, err
		}
	}

	if err = c.validateChanges(current.Type(), changes); err != nil {
		return nil, err
	}

	body, err := marshalChanges(changes)
	if err != nil {
		return nil, err
	}

	// An unconditional PATCH would blindly overwrite concurrent writers,
	// so mutations require a version tag. A tagless cached entry is
	// re-read once in case the server reports a tag after all.
	if current.ETag() == "" {
		c.graph.Invalidate(id)
		current, err = c.fetch(ctx, id, current.Type())
		if err != nil {
			return nil, err
		}
		if current.ETag() == "" {
			err = errors.NewStaleVersionError(
				fmt.Sprintf("resource %s reports no version tag, refusing an unconditional update", id),
			)
			return nil, err
		}
	}

	headers := http.Header{}
	headers.Set("If-Match", current.ETag())

	response, err := c.transport.Send(ctx, Request{
		Method:  http.MethodPatch,
		Target:  id,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		// a precondition failure proves the cached state is superseded,
		// so drop it and let the caller's re-navigate fetch fresh state
		if response.StatusCode == http.StatusPreconditionFailed {
			c.graph.Invalidate(id)
		}
		err = errors.NewErrorFromExtendedInfo(
			response.StatusCode, response.Headers.Get("Content-Type"), response.Body,
		)
		return nil, err
	}

	// Some services acknowledge a PATCH without returning the new
	// representation. Re-read in that case so the graph never holds a
	// state the server did not report.
	if response.StatusCode == http.StatusNoContent || len(response.Body) == 0 {
		c.graph.Invalidate(id)
		entity, err := c.fetch(ctx, id, current.Type())
		return entity, err
	}

	entity, err := entities.NewFromPayload(c.model, c.registry, current.Type(), response.Body,
		entities.ETag(response.Headers.Get("ETag")),
	)
	if err != nil {
		return nil, err
	}

	c.graph.InsertOrReplace(entity)

	return entity, nil
}

func (c *rfClient) Invoke(ctx context.Context, id, action string, params map[string]any) (*redfish.InvokeActionResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "invoke-action",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, id)),
		trace.WithAttributes(attribute.String(TraceAttributeActionName, action)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	entity, err := c.navigate(ctx, id, schema.TypeRef{})
	if err != nil {
		return nil, err
	}

	descriptor, ok := c.lookupAction(entity.Type(), action)
	if !ok {
		err = errors.NewInvalidParametersError(
			fmt.Sprintf("type %s declares no action named %s", entity.Type(), action),
		)
		return nil, err
	}

	if err = c.validateParameters(descriptor, params); err != nil {
		return nil, err
	}

	target, ok := entity.ActionTarget(action)
	if !ok {
		target = id + "/" + descriptor.Target
	}

	body, err := marshalChanges(params)
	if err != nil {
		return nil, err
	}

	response, err := c.transport.Send(ctx, Request{
		Method: http.MethodPost,
		Target: target,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromExtendedInfo(
			response.StatusCode, response.Headers.Get("Content-Type"), response.Body,
		)
		return nil, err
	}

	if descriptor.Mutates {
		c.graph.Invalidate(id)
	}

	taskMonitor := ""
	if response.StatusCode == http.StatusAccepted {
		taskMonitor = response.Headers.Get("Location")
	}

	result, err := redfish.NewInvokeActionResult(taskMonitor, response.Body)
	return result, err
}

func (c *rfClient) Create(ctx context.Context, collectionID string, entity types.Entity) (*redfish.CreateEntityResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-entity",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, collectionID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := entity.MarshalJSON()
	if err != nil {
		return nil, err
	}

	response, err := c.transport.Send(ctx, Request{
		Method: http.MethodPost,
		Target: collectionID,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= http.StatusBadRequest {
		err = errors.NewErrorFromExtendedInfo(
			response.StatusCode, response.Headers.Get("Content-Type"), response.Body,
		)
		return nil, err
	}

	if response.StatusCode != http.StatusCreated {
		err = fmt.Errorf("unexpected response code %d (%w)", response.StatusCode, errors.ErrInternal)
		return nil, err
	}

	location := response.Headers.Get("Location")
	if location == "" {
		log := logging.GetFromContext(ctx)
		log.Warn("service failed to provide a location header with created response",
			slog.String("collection", collectionID))
	}

	c.graph.Invalidate(collectionID)

	return redfish.NewCreateEntityResult(location), nil
}

func (c *rfClient) Delete(ctx context.Context, id string) (*redfish.DeleteEntityResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "delete-entity",
		trace.WithAttributes(attribute.String(TraceAttributeResourceID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	c.graph.LockEntry(id)
	defer c.graph.UnlockEntry(id)

	response, err := c.transport.Send(ctx, Request{Method: http.MethodDelete, Target: id})
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNoContent {
		err = errors.NewErrorFromExtendedInfo(
			response.StatusCode, response.Headers.Get("Content-Type"), response.Body,
		)
		return nil, err
	}

	c.graph.Remove(id)

	return redfish.NewDeleteEntityResult(), nil
}

func (c *rfClient) lookupAction(entityType schema.TypeRef, action string) (*schema.ActionDescriptor, bool) {
	if descriptor, ok := c.model.Action(entityType, action); ok {
		return descriptor, true
	}

	if c.registry == nil {
		return nil, false
	}

	// OEM extensions may contribute actions that the base type lacks.
	for _, vendor := range c.registry.Vendors() {
		ext, ok := c.registry.Resolve(entityType, vendor)
		if !ok {
			continue
		}
		for i := range ext.Actions {
			if ext.Actions[i].Name == action {
				return &ext.Actions[i], true
			}
		}
	}

	return nil, false
}
