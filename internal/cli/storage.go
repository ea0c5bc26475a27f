package cli

import (
	"fmt"

	"invidx/internal/adapter/codec"
	"invidx/internal/adapter/store"
	"invidx/internal/port"
)

// newStoragePolicy resolves a storage name ("binary", "json", "bolt") to the
// matching policy. The policy is injected into dump and load at the call
// site; there is no implicit default inside the index itself.
func newStoragePolicy(name string) (port.StoragePolicy, error) {
	switch name {
	case "", "binary":
		return codec.NewBinaryPolicy(), nil
	case "json":
		return codec.NewJSONPolicy(), nil
	case "bolt":
		return store.NewBoltPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown storage policy %q (want binary, json, or bolt)", name)
	}
}
