package mockdata

// ProtectedFields can never be overwritten by a merge.
var ProtectedFields = []string{FieldID, FieldCreatedAt}

// MergeShallow returns base with the top-level fields of patch applied.
// Nested objects and arrays in patch replace the stored value wholesale.
// A nil patch value removes the field.
func MergeShallow(base Document, patch map[string]interface{}) Document {
	out := base.Clone()
	if out == nil {
		out = Document{}
	}
	for k, v := range patch {
		if isProtected(k) {
			continue
		}
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

// MergeNested merges patch into the sub-object stored at key, keeping sibling fields.
// Nested objects inside patch merge recursively.
func MergeNested(base Document, key string, patch map[string]interface{}) Document {
	out := base.Clone()
	if out == nil {
		out = Document{}
	}
	current, _ := out[key].(map[string]interface{})
	out[key] = deepMerge(current, patch)
	return out
}

func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	out := cloneMap(dst)
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]interface{})
		dstMap, dstIsMap := out[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			out[k] = deepMerge(dstMap, srcMap)
			continue
		}
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

func isProtected(key string) bool {
	for _, p := range ProtectedFields {
		if p == key {
			return true
		}
	}
	return false
}
