package registry

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"rregexd/pkg/types"
)

// Registry is the fixed set of engine versions known at startup.
type Registry struct {
	versions []types.Version
	byKey    map[string]types.Version
	def      string
}

// New builds a registry sorted newest first, with keys that are not versions
// last in lexical order. Duplicate keys keep the first occurrence. defaultKey is used by Default when present in the set.
func New(versions []types.Version, defaultKey string) *Registry {
	r := &Registry{byKey: make(map[string]types.Version, len(versions))}
	for _, v := range versions {
		if _, dup := r.byKey[v.Key]; dup {
			continue
		}
		r.byKey[v.Key] = v
		r.versions = append(r.versions, v)
	}
	sort.SliceStable(r.versions, func(i, j int) bool {
		return newer(r.versions[i].Key, r.versions[j].Key)
	})
	if _, ok := r.byKey[defaultKey]; ok {
		r.def = defaultKey
	} else if len(r.versions) > 0 {
		r.def = r.versions[0].Key
	}
	return r
}

// Less orders keys by semantic version. Keys that are not valid versions sort
// before every valid one and among themselves lexically.
func Less(a, b string) bool {
	va, vb := canonical(a), canonical(b)
	switch {
	case va == "" && vb == "":
		return a < b
	case va == "":
		return true
	case vb == "":
		return false
	}
	if c := semver.Compare(va, vb); c != 0 {
		return c < 0
	}
	return a < b
}

// newer is the List order: valid versions newest first, then the rest in
// lexical order.
func newer(a, b string) bool {
	va, vb := canonical(a), canonical(b)
	switch {
	case va == "" && vb == "":
		return a < b
	case va == "":
		return false
	case vb == "":
		return true
	}
	return Less(b, a)
}

func canonical(key string) string {
	v := key
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Has reports whether key is a known version. It is total over all strings.
func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Get returns the version for key.
func (r *Registry) Get(key string) (types.Version, bool) {
	v, ok := r.byKey[key]
	return v, ok
}

// List returns a copy of the versions, newest first.
func (r *Registry) List() []types.Version {
	out := make([]types.Version, len(r.versions))
	copy(out, r.versions)
	return out
}

// Len returns the number of known versions.
func (r *Registry) Len() int { return len(r.versions) }

// Default returns the configured default key, or the newest one.
func (r *Registry) Default() string { return r.def }

// Resolve returns key when it is known and the default otherwise.
func (r *Registry) Resolve(key string) string {
	if r.Has(key) {
		return key
	}
	return r.def
}
