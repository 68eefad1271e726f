// Package template provides a Handlebars template engine backed by raymond.
//
// Every compiled template gets the comparison helper library from package
// helpers (is, gt, compare, if_eq, prioSort, capitalizeFirst, ...) registered
// on it. Compiled templates are cached by source.
//
// Example usage:
//
//	engine := template.NewEngine()
//
//	data := map[string]interface{}{
//	    "score": 12,
//	    "title": "quarterly report",
//	}
//
//	tpl := "{{capitalizeFirst title}}: {{#gt score 10}}high{{else}}low{{/gt}}"
//	result, err := engine.Render(tpl, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Output: Quarterly report: high
//
// Helper failures (an unknown compare operator, for instance) abort the render
// and are returned from Render.
package template
