package graph

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/schema"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
	"github.com/rackwise/redfish-client/pkg/redfish/types/entities"
)

var driveRef = schema.TypeRef{Namespace: "Drive", Name: "Drive"}

func testEntity(t *testing.T, id string, decorators ...entities.EntityDecoratorFunc) types.Entity {
	t.Helper()

	e, err := entities.New(id, driveRef, decorators...)
	if err != nil {
		t.Fatal(err)
	}

	return e
}

func TestGetMissesOnEmptyGraph(t *testing.T) {
	is := is.New(t)
	g := New()

	_, ok := g.Get("/d0")
	is.True(!ok)
}

func TestInsertThenGet(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0"))

	e, ok := g.Get("/d0")
	is.True(ok)
	is.Equal(e.ID(), "/d0")
}

func TestInvalidateForcesAMiss(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0"))
	g.Invalidate("/d0")

	_, ok := g.Get("/d0")
	is.True(!ok)
}

func TestReplacingBumpsTheGeneration(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0", entities.ETag(`"v1"`)))
	first := g.Generation("/d0")

	g.InsertOrReplace(testEntity(t, "/d0", entities.ETag(`"v2"`)))
	second := g.Generation("/d0")

	is.True(second > first)

	e, ok := g.Get("/d0")
	is.True(ok)
	is.Equal(e.ETag(), `"v2"`)
}

func TestRemoveLeavesATombstone(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0"))
	g.Remove("/d0")

	_, ok := g.Get("/d0")
	is.True(!ok)
	is.True(g.Removed("/d0"))

	err := g.CheckLink(types.Link{Target: "/d0", Expected: driveRef})
	is.True(err != nil)
	is.True(stderrors.Is(err, errors.ErrDanglingReference))
}

func TestReinstallClearsTheTombstone(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0"))
	g.Remove("/d0")
	g.InsertOrReplace(testEntity(t, "/d0"))

	is.True(!g.Removed("/d0"))
	is.NoErr(g.CheckLink(types.Link{Target: "/d0"}))
}

func TestLinksToLiveResourcesResolve(t *testing.T) {
	is := is.New(t)
	g := New()

	is.NoErr(g.CheckLink(types.Link{Target: "/never-seen"}))
}

func TestCyclicReferencesAreRepresentable(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/a", entities.LinkTo("Peer", "/b", driveRef)))
	g.InsertOrReplace(testEntity(t, "/b", entities.LinkTo("Peer", "/a", driveRef)))

	a, ok := g.Get("/a")
	is.True(ok)
	is.Equal(a.Links()["Peer"].Target, "/b")

	b, ok := g.Get("/b")
	is.True(ok)
	is.Equal(b.Links()["Peer"].Target, "/a")
}

func TestEntrySlotsSerializeMutationsPerIdentifier(t *testing.T) {
	is := is.New(t)
	g := New()

	g.InsertOrReplace(testEntity(t, "/d0", entities.P("Counter", 0)))

	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			g.LockEntry("/d0")
			defer g.UnlockEntry("/d0")

			counter++
			g.InsertOrReplace(testEntity(t, "/d0", entities.P("Counter", counter)))
		}()
	}

	wg.Wait()

	is.Equal(counter, 32)
	is.Equal(g.Generation("/d0"), uint64(33))
}

func TestSlotsSurviveRemove(t *testing.T) {
	is := is.New(t)
	g := New()

	g.LockEntry("/d0")
	g.Remove("/d0")
	g.UnlockEntry("/d0")

	g.LockEntry("/d0")
	g.UnlockEntry("/d0")

	is.True(g.Removed("/d0"))
}
