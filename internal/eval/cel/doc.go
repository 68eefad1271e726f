// Package cel provides a CEL (Common Expression Language) evaluator used to
// pick a template variant from graph state.
//
// The environment declares a single variable, state, of type map(string, dyn).
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	vars := map[string]interface{}{
//	    "state": map[string]interface{}{
//	        "inputs": map[string]interface{}{"lang": "es"},
//	    },
//	}
//
//	matched, err := evaluator.EvaluateBool(ctx, "state.inputs.lang == 'es'", vars)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// matched == true
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - String operations: contains, startsWith, endsWith, matches
//   - Arithmetic: +, -, *, /, %
//   - List operations: in, size
//   - Map access: state.field, state["field"], has(state.field)
package cel
