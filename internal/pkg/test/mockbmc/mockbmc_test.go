package mockbmc

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/matryer/is"
)

const opaModule string = `
package mockbmc.authz

default allow := false

allow {
    input.token == "sesame"
}
`

func TestRequestsWithoutAValidTokenAreRejected(t *testing.T) {
	is := is.New(t)

	authorizer, err := NewAuthorizer(context.Background(), strings.NewReader(opaModule))
	is.NoErr(err)

	server := NewWithDefaultTree(WithAuthorizer(authorizer)).Start()
	defer server.Close()

	resp, err := http.Get(server.URL + "/redfish/v1")
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusUnauthorized)
}

func TestRequestsWithAValidTokenPass(t *testing.T) {
	is := is.New(t)

	authorizer, err := NewAuthorizer(context.Background(), strings.NewReader(opaModule))
	is.NoErr(err)

	server := NewWithDefaultTree(WithAuthorizer(authorizer)).Start()
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/redfish/v1", nil)
	req.Header.Set("Authorization", "Bearer sesame")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)

	body := map[string]any{}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&body))
	is.Equal(body["RedfishVersion"], "1.17.0")
}

func TestConditionalUpdateRequiresTheCurrentTag(t *testing.T) {
	is := is.New(t)

	server := NewWithDefaultTree().Start()
	defer server.Close()

	req, _ := http.NewRequest(http.MethodPatch, server.URL+"/redfish/v1/Systems/1",
		bytes.NewBufferString(`{"AssetTag": "changed"}`))
	req.Header.Set("If-Match", `"not-the-current-tag"`)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusPreconditionFailed)
}

func TestUpdatesRotateTheVersionTag(t *testing.T) {
	is := is.New(t)

	service := NewWithDefaultTree()
	server := service.Start()
	defer server.Close()

	before := service.ETag("/redfish/v1/Systems/1")

	req, _ := http.NewRequest(http.MethodPatch, server.URL+"/redfish/v1/Systems/1",
		bytes.NewBufferString(`{"AssetTag": "changed"}`))
	req.Header.Set("If-Match", before)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()
	is.Equal(resp.StatusCode, http.StatusOK)

	after := service.ETag("/redfish/v1/Systems/1")
	is.True(after != before)
	is.Equal(resp.Header.Get("ETag"), after)
}
