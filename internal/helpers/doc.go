// Package helpers provides comparison and formatting helpers for Handlebars templates.
//
// Block helpers receive the host's then/else render callbacks through the Block
// interface and return exactly one of them. *raymond.Options satisfies Block,
// HashBlock and Iterator, so the functions returned by Helpers can be registered
// on a raymond template as they are:
//
//	tpl := raymond.MustParse(source)
//	tpl.RegisterHelpers(helpers.Helpers())
//	out, err := tpl.Exec(data)
//
// Example templates:
//
//	{{#gt score 10}}high{{else}}low{{/gt}}
//	{{#compare status "!==" "done"}}pending{{/compare}}
//	{{#if_eq kind compare="error"}}!{{/if_eq}}
//	{{#prioSort animals "id" favourites}}{{id}} {{/prioSort}}
//	{{capitalizeFirst title}} {{hyphenate title}}
//
// Helpers never fail on unexpected operands: nil or mismatched values simply
// select the else branch. Only compare and prioSort validate their arguments;
// they return ErrInvalidArguments or ErrUnknownOperator from the Go API and
// abort the render pass when called from a template.
package helpers
