// Package tablespec loads declarative transition table definitions from
// YAML, so designers can author entity behavior as data without touching Go
// code.
//
// A spec names states and conditions as strings; conditions are resolved at
// build time against a registry of predicates the host registers in code:
//
//	start: idle
//	transitions:
//	  - from: idle
//	    to: chase
//	    when: player_visible
//	  - from: "*"
//	    to: dead
//	    when: hp_zero
//
//	spec, err := tablespec.ParseFile("enemy_grunt.yaml")
//	table, err := tablespec.Build(spec, map[string]fsm.Condition[*Enemy]{
//	    "player_visible": func(e *Enemy) bool { return e.SeesPlayer },
//	    "hp_zero":        func(e *Enemy) bool { return e.HP <= 0 },
//	})
//
// Rule order in the document is the table's match priority, mirroring the
// first-match-wins evaluation of fsm.Table.
package tablespec
