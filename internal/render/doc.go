// Package render picks and renders the template of a template node.
//
// A node carries a default template and an ordered list of variants. Each
// variant is guarded by a CEL condition evaluated against the graph state;
// the first one that holds is rendered, otherwise the default is. Conditions
// that fail to evaluate or do not return a boolean are logged and skipped.
//
// Templates see the graph state under "state", the node's static data, and
// the graph inputs at top level:
//
//	config := &NodeConfig{
//	    Template: "Hello {{capitalizeFirst name}}",
//	    Variants: []Variant{
//	        {Name: "es", Condition: "state.inputs.lang == 'es'", Template: "Hola {{capitalizeFirst name}}"},
//	    },
//	}
//	result, err := renderer.Render(ctx, state, config)
package render
