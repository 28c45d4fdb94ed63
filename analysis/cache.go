package analysis

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cnf/structhash"
	"github.com/npillmayer/chevrogo/gast"
)

// ClassID derives a stable cache key from a grammar class sample — a
// pointer to (or value of) the named Go type a grammar is organized
// under. Anonymous types are rejected, mirroring spec's requirement that
// self-analysis be "keyed by class name... rejecting anonymous types".
func ClassID(sample interface{}) string {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		panic("chevrogo/analysis: anonymous grammar classes are not supported; pass a named type as the class sample")
	}
	return t.PkgPath() + "." + t.Name()
}

type classEntry struct {
	once    sync.Once
	result  *Result
	err     error
	regHash string
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*classEntry{}
)

func entryFor(classID string) *classEntry {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	e, ok := cache[classID]
	if !ok {
		e = &classEntry{}
		cache[classID] = e
	}
	return e
}

// registrationHash fingerprints the shape of a registration (top rule
// plus ordered rule names) so a second Analyze call against the same
// classID can be checked for consistency. Grounded on the teacher's use
// of structhash.Hash to fingerprint Earley item+state pairs for
// memoization (lr/earley/earley.go) — the same "hash the inputs, compare
// on repeat calls" technique, applied to grammar-cache identity instead
// of parse-item identity.
func registrationHash(topRule string, defs []gast.RuleDef) string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	h, err := structhash.Hash(struct {
		Top   string
		Names []string
	}{topRule, names}, 1)
	if err != nil {
		panic(err)
	}
	return h
}

func checkConsistentRegistration(classID string, e *classEntry, topRule string, defs []gast.RuleDef) {
	h := registrationHash(topRule, defs)
	if e.regHash == "" {
		e.regHash = h
		return
	}
	if e.regHash != h {
		panic(fmt.Sprintf("chevrogo/analysis: class %q analyzed twice with different rule registrations", classID))
	}
}
