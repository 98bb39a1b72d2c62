// Package mockbmc implements the server side of the management protocol
// for integration tests: a small in-memory resource tree with version
// tags, conditional updates, action endpoints and OEM payload blocks.
package mockbmc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rackwise/redfish-client/internal/pkg/infrastructure/router"
)

func WithAuthorizer(authorizer Authorizer) func(*Service) {
	return func(s *Service) {
		s.authorizer = authorizer
	}
}

// WithResource seeds one resource into the tree before the service
// starts serving.
func WithResource(path string, payload map[string]any) func(*Service) {
	return func(s *Service) {
		s.seed(path, payload)
	}
}

type Service struct {
	mutex      sync.Mutex
	resources  map[string]map[string]any
	etags      map[string]string
	authorizer Authorizer
}

func New(options ...func(*Service)) *Service {
	s := &Service{
		resources: map[string]map[string]any{},
		etags:     map[string]string{},
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Start serves the resource tree on an ephemeral listener. The caller
// owns the returned server and must Close it.
func (s *Service) Start() *httptest.Server {
	return httptest.NewServer(s.Router())
}

func (s *Service) Router() *chi.Mux {
	r := router.New("mock-bmc", s.authorize)

	r.Get("/*", s.get)
	r.Patch("/*", s.patch)
	r.Post("/*", s.post)
	r.Delete("/*", s.delete)

	return r
}

// ETag returns the current version tag of a seeded resource.
func (s *Service) ETag(path string) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.etags[path]
}

func (s *Service) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authorizer != nil {
			if err := s.authorizer.CheckAccess(r.Context(), r); err != nil {
				writeError(w, http.StatusUnauthorized, "Base.1.0.AccessDenied", err.Error())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) seed(path string, payload map[string]any) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tag := `"` + uuid.NewString() + `"`

	payload["@odata.id"] = path
	payload["@odata.etag"] = tag

	s.resources[path] = payload
	s.etags[path] = tag
}

func (s *Service) get(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	payload, ok := s.resources[r.URL.Path]
	if !ok {
		writeError(w, http.StatusNotFound, "Base.1.0.ResourceMissingAtURI",
			fmt.Sprintf("no resource at %s", r.URL.Path))
		return
	}

	writeResource(w, http.StatusOK, s.etags[r.URL.Path], payload)
}

func (s *Service) patch(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	path := r.URL.Path

	payload, ok := s.resources[path]
	if !ok {
		writeError(w, http.StatusNotFound, "Base.1.0.ResourceMissingAtURI",
			fmt.Sprintf("no resource at %s", path))
		return
	}

	ifMatch := r.Header.Get("If-Match")
	if ifMatch != "" && ifMatch != s.etags[path] {
		writeError(w, http.StatusPreconditionFailed, "Base.1.0.PreconditionFailed",
			"the provided version tag does not match the current state of the resource")
		return
	}

	changes := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		writeError(w, http.StatusBadRequest, "Base.1.0.MalformedJSON", err.Error())
		return
	}

	for k, v := range changes {
		payload[k] = v
	}

	tag := `"` + uuid.NewString() + `"`
	payload["@odata.etag"] = tag
	s.etags[path] = tag

	writeResource(w, http.StatusOK, tag, payload)
}

func (s *Service) post(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.URL.Path, "/Actions/") {
		s.invokeAction(w, r)
		return
	}

	s.createMember(w, r)
}

func (s *Service) invokeAction(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	parts := strings.SplitN(r.URL.Path, "/Actions/", 2)
	owner, action := parts[0], parts[1]

	payload, ok := s.resources[owner]
	if !ok {
		writeError(w, http.StatusNotFound, "Base.1.0.ResourceMissingAtURI",
			fmt.Sprintf("no resource at %s", owner))
		return
	}

	params := map[string]any{}
	json.NewDecoder(r.Body).Decode(&params)

	switch {
	case strings.HasSuffix(action, ".Reset"):
		resetType, ok := params["ResetType"].(string)
		if !ok {
			writeError(w, http.StatusBadRequest, "Base.1.0.ActionParameterMissing",
				"the action requires the ResetType parameter")
			return
		}

		if resetType == "On" {
			payload["PowerState"] = "On"
		} else {
			payload["PowerState"] = "Off"
		}

		tag := `"` + uuid.NewString() + `"`
		payload["@odata.etag"] = tag
		s.etags[owner] = tag

		w.WriteHeader(http.StatusNoContent)

	case strings.HasSuffix(action, ".SimpleUpdate"):
		if _, ok := params["ImageURI"].(string); !ok {
			writeError(w, http.StatusBadRequest, "Base.1.0.ActionParameterMissing",
				"the action requires the ImageURI parameter")
			return
		}

		w.Header().Set("Location", "/redfish/v1/TaskService/TaskMonitors/"+uuid.NewString())
		w.WriteHeader(http.StatusAccepted)

	default:
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"Status": "Completed"})
	}
}

func (s *Service) createMember(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	path := r.URL.Path

	collection, ok := s.resources[path]
	if !ok {
		writeError(w, http.StatusNotFound, "Base.1.0.ResourceMissingAtURI",
			fmt.Sprintf("no resource at %s", path))
		return
	}

	member := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		writeError(w, http.StatusBadRequest, "Base.1.0.MalformedJSON", err.Error())
		return
	}

	memberID := path + "/" + uuid.NewString()
	tag := `"` + uuid.NewString() + `"`

	member["@odata.id"] = memberID
	member["@odata.etag"] = tag

	s.resources[memberID] = member
	s.etags[memberID] = tag

	members, _ := collection["Members"].([]any)
	collection["Members"] = append(members, map[string]any{"@odata.id": memberID})
	collection["Members@odata.count"] = len(members) + 1

	w.Header().Set("Location", memberID)
	writeResource(w, http.StatusCreated, tag, member)
}

func (s *Service) delete(w http.ResponseWriter, r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	path := r.URL.Path

	if _, ok := s.resources[path]; !ok {
		writeError(w, http.StatusNotFound, "Base.1.0.ResourceMissingAtURI",
			fmt.Sprintf("no resource at %s", path))
		return
	}

	delete(s.resources, path)
	delete(s.etags, path)

	// drop the member reference from any collection that lists it
	for _, payload := range s.resources {
		members, ok := payload["Members"].([]any)
		if !ok {
			continue
		}

		kept := make([]any, 0, len(members))
		for _, m := range members {
			if ref, ok := m.(map[string]any); ok && ref["@odata.id"] == path {
				continue
			}
			kept = append(kept, m)
		}

		if len(kept) != len(members) {
			payload["Members"] = kept
			payload["Members@odata.count"] = len(kept)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeResource(w http.ResponseWriter, code int, etag string, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, messageID, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    messageID,
			"message": message,
			"@Message.ExtendedInfo": []map[string]any{
				{"MessageId": messageID, "Message": message, "Severity": "Warning"},
			},
		},
	})
}
