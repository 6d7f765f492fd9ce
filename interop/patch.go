package interop

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/liabri/zmerald/ir"
)

// JSONPatch applies an RFC 6902 patch to doc. ops is the patch operation
// list, for example parsed from `[{op: "add", path: "/a", value: 1}]`.
func JSONPatch(doc, ops ir.Value) (ir.Value, error) {
	od, err := ToJSON(ops, "")
	if err != nil {
		return ir.Value{}, err
	}
	patch, err := jsonpatch.DecodePatch(od)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not decode json patch: %w", err)
	}
	dd, err := ToJSON(doc, "")
	if err != nil {
		return ir.Value{}, err
	}
	out, err := patch.Apply(dd)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not apply json patch: %w", err)
	}
	return FromJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, patch ir.Value) (ir.Value, error) {
	dd, err := ToJSON(doc, "")
	if err != nil {
		return ir.Value{}, err
	}
	pd, err := ToJSON(patch, "")
	if err != nil {
		return ir.Value{}, err
	}
	out, err := jsonpatch.MergePatch(dd, pd)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not apply merge patch: %w", err)
	}
	return FromJSON(out)
}

// CreateMergePatch returns the merge patch turning from into to.
func CreateMergePatch(from, to ir.Value) (ir.Value, error) {
	fd, err := ToJSON(from, "")
	if err != nil {
		return ir.Value{}, err
	}
	td, err := ToJSON(to, "")
	if err != nil {
		return ir.Value{}, err
	}
	out, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return ir.Value{}, fmt.Errorf("could not create merge patch: %w", err)
	}
	return FromJSON(out)
}
