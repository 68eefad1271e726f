package helpers

import (
	"strings"
)

// PrioritizedOrder returns records reordered so that records whose key field
// matches an entry of priority come first, grouped in priority order, followed
// by every other record in its original order. Each record appears exactly
// once in the result.
func PrioritizedOrder(records []interface{}, key string, priority []interface{}) []interface{} {
	ordered := make([]interface{}, 0, len(records))
	taken := make([]bool, len(records))

	for _, want := range priority {
		for i, record := range records {
			if taken[i] {
				continue
			}
			if v, ok := field(record, key); ok && strictEqual(v, want) {
				taken[i] = true
				ordered = append(ordered, record)
			}
		}
	}

	for i, record := range records {
		if !taken[i] {
			ordered = append(ordered, record)
		}
	}

	return ordered
}

// PrioSort renders the block once per record in prioritized order and
// concatenates the results. args are the records, the key field name and the
// priority list. Non-list records or priority operands count as empty.
//
//	{{#prioSort animals "id" favourites}}{{id}} {{/prioSort}}
func PrioSort(options Iterator, args ...interface{}) (string, error) {
	if len(args) < 3 {
		return "", NewInvalidArgumentsError("prioSort", 3, len(args))
	}

	records, _ := listOf(args[0])
	priority, _ := listOf(args[2])

	var b strings.Builder
	for _, record := range PrioritizedOrder(records, stringOf(args[1]), priority) {
		b.WriteString(options.FnWith(record))
	}
	return b.String(), nil
}
