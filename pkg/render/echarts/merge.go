package echarts

import (
	"github.com/tiendc/go-deepcopy"
)

// mergeAdvanced deep-merges a copy of advanced into o. Nested objects merge
// key by key; arrays and scalars replace the generated value.
func mergeAdvanced(o Options, advanced map[string]any) {
	var patch map[string]any
	if err := deepcopy.Copy(&patch, &advanced); err != nil {
		patch = advanced
	}
	mergeInto(o, patch)
}

// Merge returns a deep-merged copy of base with patch applied using the same
// rules as advanced overrides. Neither input is modified.
func Merge(base, patch Options) Options {
	var out Options
	if err := deepcopy.Copy(&out, &base); err != nil || out == nil {
		out = Options{}
	}
	mergeAdvanced(out, patch)
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		sv, ok := asObject(v)
		if !ok {
			dst[k] = v
			continue
		}
		dv, ok := asObject(dst[k])
		if !ok {
			dst[k] = sv
			continue
		}
		mergeInto(dv, sv)
		dst[k] = dv
	}
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Options:
		return m, true
	}
	return nil, false
}
