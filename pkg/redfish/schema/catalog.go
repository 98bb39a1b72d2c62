package schema

import (
	"fmt"
	"io"
	"sync"

	yaml "gopkg.in/yaml.v2"
)

// The default catalog collects fragment sets from whichever resource
// family packages are linked into a build. Families register themselves
// at init time, so the set of available types is a property of the build
// configuration rather than of any runtime state.
var defaultCatalog = catalog{families: map[string][]Fragment{}}

type catalog struct {
	mutex    sync.Mutex
	families map[string][]Fragment
}

// RegisterFamily adds a named fragment set to the default catalog.
// Registering the same family twice panics: that is a wiring error in the
// importing build, not a runtime condition.
func RegisterFamily(name string, fragments []Fragment) {
	defaultCatalog.mutex.Lock()
	defer defaultCatalog.mutex.Unlock()

	if _, ok := defaultCatalog.families[name]; ok {
		panic(fmt.Sprintf("schema family %s registered twice", name))
	}

	defaultCatalog.families[name] = fragments
}

// RegisteredFamilies returns the names of all families in the default
// catalog.
func RegisteredFamilies() []string {
	defaultCatalog.mutex.Lock()
	defer defaultCatalog.mutex.Unlock()

	names := make([]string, 0, len(defaultCatalog.families))
	for name := range defaultCatalog.families {
		names = append(names, name)
	}

	return names
}

// NewModelFromCatalog builds a model from every family registered in the
// default catalog, plus any extra fragment sets supplied by the caller.
func NewModelFromCatalog(extra ...[]Fragment) (*Model, error) {
	defaultCatalog.mutex.Lock()
	sets := make([][]Fragment, 0, len(defaultCatalog.families)+len(extra))
	for _, fragments := range defaultCatalog.families {
		sets = append(sets, fragments)
	}
	defaultCatalog.mutex.Unlock()

	sets = append(sets, extra...)

	return NewModel(sets...)
}

// LoadFragments reads a YAML fragment file, allowing out-of-tree families
// to be supplied without recompiling.
func LoadFragments(data io.Reader) ([]Fragment, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	doc := struct {
		Fragments []Fragment `yaml:"fragments"`
	}{}

	err = yaml.Unmarshal(buf, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment file: %w", err)
	}

	return doc.Fragments, nil
}
