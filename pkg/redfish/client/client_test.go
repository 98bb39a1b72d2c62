package client

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/rackwise/redfish-client/internal/pkg/test/mockbmc"
	"github.com/rackwise/redfish-client/pkg/datamodels/oem/contoso"
	"github.com/rackwise/redfish-client/pkg/datamodels/redfishstd"
	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/oem"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
	"github.com/rackwise/redfish-client/pkg/redfish/types/entities"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

const (
	systemID = "/redfish/v1/Systems/1"
	driveID  = "/redfish/v1/Systems/1/Storage/0/Drives/0"
	spareID  = "/redfish/v1/Systems/1/Storage/0/Drives/1"
)

func testModelAndRegistry(t *testing.T) (*schema.Model, *oem.Registry) {
	t.Helper()

	model, err := schema.NewModelFromCatalog()
	if err != nil {
		t.Fatal(err)
	}

	registry := oem.NewRegistry(model)
	if err := contoso.Register(registry); err != nil {
		t.Fatal(err)
	}

	return model, registry
}

func newTestClient(t *testing.T) (RedfishClient, *httptest.Server) {
	t.Helper()

	server := mockbmc.NewWithDefaultTree().Start()
	t.Cleanup(server.Close)

	model, registry := testModelAndRegistry(t)

	c := NewRedfishClient(NewHTTPTransport(server.URL), model, registry)

	return c, server
}

func TestNavigateServiceRoot(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	root, err := c.ServiceRoot(context.Background())
	is.NoErr(err)

	is.Equal(root.ID(), "/redfish/v1")
	is.Equal(root.Type(), redfishstd.ServiceRootType)

	version, ok := root.Property("RedfishVersion")
	is.True(ok)
	is.Equal(version, "1.17.0")

	systems, ok := root.Links()["Systems"]
	is.True(ok)
	is.Equal(systems.Target, "/redfish/v1/Systems")
	is.Equal(systems.Expected, redfishstd.ComputerSystemCollectionType)
}

func TestNavigateServesTheCachedEntryOnASecondCall(t *testing.T) {
	is := is.New(t)
	c, server := newTestClient(t)

	first, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	server.Close()

	second, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)
	is.Equal(second.ETag(), first.ETag())
}

func TestNavigateDriveFilesOEMValuesIntoTheExtensionBag(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	drive, err := c.Navigate(context.Background(), driveID)
	is.NoErr(err)

	_, ok := drive.Property("FirmwareBuild")
	is.True(!ok)

	bag, ok := drive.OEM("Contoso")
	is.True(ok)
	is.Equal(bag["FirmwareBuild"], "7.2.1")
}

func TestNavigateLinkChecksTheExpectedType(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.NavigateLink(context.Background(), types.Link{
		Target:   "/redfish/v1/Chassis/1",
		Expected: redfishstd.ThermalType,
	})

	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrTypeMismatch))
}

func TestNavigateHandlesNotFound(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.Navigate(context.Background(), "/redfish/v1/Systems/does-not-exist")
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrNotFound))
}

func TestNavigateMapsServiceErrorsFromProblemPayloads(t *testing.T) {
	is := is.New(t)

	body := []byte(`{"error": {"code": "Base.1.0.GeneralError", "message": "no such resource", "@Message.ExtendedInfo": [{"MessageId": "Base.1.0.ResourceMissingAtURI", "Message": "no such resource"}]}}`)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusNotFound),
			response.Body(body),
		),
	)
	defer s.Close()

	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(NewHTTPTransport(s.URL()), model, registry)

	_, err := c.Navigate(context.Background(), "/redfish/v1/Chassis/ghost")
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrNotFound))
	is.Equal(err.Error(), "no such resource")
}

func TestListReturnsMemberOrderVerbatim(t *testing.T) {
	is := is.New(t)

	server := mockbmc.NewWithDefaultTree(
		mockbmc.WithResource("/redfish/v1/Chassis/1/Sensors", map[string]any{
			"@odata.type": "#SensorCollection.SensorCollection",
			"Name":        "Sensors",
			"Members": []any{
				map[string]any{"@odata.id": "/redfish/v1/Chassis/1/Sensors/CPU1"},
				map[string]any{"@odata.id": "/redfish/v1/Chassis/1/Sensors/Ambient"},
				map[string]any{"@odata.id": "/redfish/v1/Chassis/1/Sensors/CPU0"},
			},
		}),
	).Start()
	t.Cleanup(server.Close)

	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(NewHTTPTransport(server.URL), model, registry)

	members, err := c.List(context.Background(), "/redfish/v1/Chassis/1/Sensors")
	is.NoErr(err)
	is.Equal(members, []string{
		"/redfish/v1/Chassis/1/Sensors/CPU1",
		"/redfish/v1/Chassis/1/Sensors/Ambient",
		"/redfish/v1/Chassis/1/Sensors/CPU0",
	})

	// listing must not navigate the members as a side effect
	for _, member := range members {
		_, ok := c.Graph().Get(member)
		is.True(!ok)
	}
}

func TestListRejectsNonCollections(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.List(context.Background(), systemID)
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrTypeMismatch))
}

func TestMutateInstallsTheNewStateAndTag(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	before, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	after, err := c.Mutate(context.Background(), systemID, map[string]any{"AssetTag": "fleet-0043"})
	is.NoErr(err)

	tag, _ := after.Property("AssetTag")
	is.Equal(tag, "fleet-0043")
	is.True(after.ETag() != before.ETag())

	cached, ok := c.Graph().Get(systemID)
	is.True(ok)
	is.Equal(cached.ETag(), after.ETag())
}

func TestMutateWithAStaleTagFailsAndDoesNotOverwrite(t *testing.T) {
	is := is.New(t)
	c, server := newTestClient(t)

	_, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	// another actor changes the resource behind this session's back
	req, _ := http.NewRequest(http.MethodPatch, server.URL+systemID,
		bytes.NewBufferString(`{"AssetTag": "taken-by-someone-else"}`))
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)

	_, err = c.Mutate(context.Background(), systemID, map[string]any{"AssetTag": "mine"})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrStaleVersion))

	// the superseded entry must be dropped, so re-navigating picks up
	// the intervening change and a resubmitted mutation can succeed
	_, ok := c.Graph().Get(systemID)
	is.True(!ok)

	current, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	tag, _ := current.Property("AssetTag")
	is.Equal(tag, "taken-by-someone-else")

	after, err := c.Mutate(context.Background(), systemID, map[string]any{"AssetTag": "mine"})
	is.NoErr(err)

	tag, _ = after.Property("AssetTag")
	is.Equal(tag, "mine")
}

func TestMutateRefusesTaglessResources(t *testing.T) {
	is := is.New(t)

	transport := &scriptedTransport{
		body: []byte(`{"@odata.id": "/redfish/v1/Systems/1", "@odata.type": "#ComputerSystem.ComputerSystem", "Name": "System One"}`),
	}

	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(transport, model, registry)

	system, err := entities.New(systemID, redfishstd.ComputerSystemType,
		entities.P("Name", "System One"),
	)
	is.NoErr(err)
	c.Graph().InsertOrReplace(system)

	_, err = c.Mutate(context.Background(), systemID, map[string]any{"AssetTag": "mine"})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrStaleVersion))

	// one re-read to look for a tag, but never an unconditional PATCH
	is.Equal(transport.methods, []string{http.MethodGet})
}

func TestMutateRejectsUndeclaredProperties(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.Mutate(context.Background(), systemID, map[string]any{"NotAProperty": 1})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrInvalidParameters))
}

func TestInvokeValidatesParametersBeforeAnyTransportCall(t *testing.T) {
	is := is.New(t)

	transport := &recordingTransport{}
	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(transport, model, registry)

	system, err := entities.New(systemID, redfishstd.ComputerSystemType,
		entities.P("Name", "System One"),
	)
	is.NoErr(err)
	c.Graph().InsertOrReplace(system)

	_, err = c.Invoke(context.Background(), systemID, "Reset", nil)
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrInvalidParameters))
	is.Equal(transport.calls, 0)

	_, err = c.Invoke(context.Background(), systemID, "Reset", map[string]any{"ResetType": "Sideways"})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrInvalidParameters))
	is.Equal(transport.calls, 0)

	_, err = c.Invoke(context.Background(), systemID, "Vanish", nil)
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrInvalidParameters))
	is.Equal(transport.calls, 0)
}

func TestInvokeResetInvalidatesTheGraphEntry(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	_, err = c.Invoke(context.Background(), systemID, "Reset",
		map[string]any{"ResetType": "ForceOff"})
	is.NoErr(err)

	_, ok := c.Graph().Get(systemID)
	is.True(!ok)

	system, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)

	state, _ := system.Property("PowerState")
	is.Equal(state, "Off")
}

func TestDeleteRemovesTheEntryAndLeavesDanglingLinksDetectable(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	_, err := c.Navigate(context.Background(), spareID)
	is.NoErr(err)

	_, err = c.Delete(context.Background(), spareID)
	is.NoErr(err)

	_, ok := c.Graph().Get(spareID)
	is.True(!ok)

	_, err = c.NavigateLink(context.Background(), types.Link{
		Target:   spareID,
		Expected: redfishstd.DriveType,
	})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrDanglingReference))
}

func TestCreateReturnsTheLocationOfTheNewMember(t *testing.T) {
	is := is.New(t)
	c, _ := newTestClient(t)

	system, err := entities.New("/unassigned", redfishstd.ComputerSystemType,
		entities.P("Name", "System Two"),
		entities.P("PowerState", "Off"),
	)
	is.NoErr(err)

	result, err := c.Create(context.Background(), "/redfish/v1/Systems", system)
	is.NoErr(err)
	is.True(result.Location() != "")

	members, err := c.List(context.Background(), "/redfish/v1/Systems")
	is.NoErr(err)
	is.Equal(len(members), 2)
	is.Equal(members[1], result.Location())
}

func TestNavigateRetriesReadsWithinTheBudget(t *testing.T) {
	is := is.New(t)

	server := mockbmc.NewWithDefaultTree().Start()
	t.Cleanup(server.Close)

	transport := &flakyTransport{failures: 2, inner: NewHTTPTransport(server.URL)}
	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(transport, model, registry, RetryBudget(2))

	system, err := c.Navigate(context.Background(), systemID)
	is.NoErr(err)
	is.Equal(system.ID(), systemID)
}

func TestNavigateSurfacesTransportFailuresWithoutABudget(t *testing.T) {
	is := is.New(t)

	transport := &flakyTransport{failures: 1}
	model, registry := testModelAndRegistry(t)
	c := NewRedfishClient(transport, model, registry)

	_, err := c.Navigate(context.Background(), systemID)
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrTransport))
}

type recordingTransport struct {
	calls int
}

func (r *recordingTransport) Send(ctx context.Context, req Request) (Response, error) {
	r.calls++
	return Response{StatusCode: http.StatusOK}, nil
}

type scriptedTransport struct {
	methods []string
	body    []byte
}

func (s *scriptedTransport) Send(ctx context.Context, req Request) (Response, error) {
	s.methods = append(s.methods, req.Method)
	return Response{StatusCode: http.StatusOK, Headers: http.Header{}, Body: s.body}, nil
}

type flakyTransport struct {
	failures int
	inner    Transport
}

func (f *flakyTransport) Send(ctx context.Context, req Request) (Response, error) {
	if f.failures > 0 {
		f.failures--
		return Response{}, errors.NewTransportError("connection reset")
	}

	if f.inner == nil {
		return Response{}, errors.NewTransportError("no upstream")
	}

	return f.inner.Send(ctx, req)
}
