package ruleset

import "github.com/donaldgifford/fixerconf/internal/version"

// The tables below are functions so every caller gets a private copy.

func baseRules() Rules {
	return Rules{
		"@PhpCsFixer": On(),
		"align_multiline_comment": With(map[string]any{
			"comment_type": "all_multiline",
		}),
		"blank_line_before_statement": With(map[string]any{
			"statements": []string{
				"case",
				"continue",
				"declare",
				"default",
				"do",
				"exit",
				"for",
				"foreach",
				"include",
				"include_once",
				"require",
				"require_once",
				"return",
				"switch",
				"throw",
				"try",
				"while",
			},
		}),
		"concat_space": With(map[string]any{"spacing": "one"}),
		"ordered_class_elements": With(map[string]any{
			"order": []string{
				"use_trait",
				"constant_public",
				"constant_protected",
				"constant_private",
				"property_public",
				"property_protected",
				"property_private",
				"construct",
				"phpunit",
			},
		}),
		"php_unit_test_class_requires_covers": Off(),
		"phpdoc_add_missing_param_annotation": Off(),
		"phpdoc_line_span":                    On(),
		"phpdoc_to_comment":                   Off(),
		"phpdoc_types_order": With(map[string]any{
			"sort_algorithm":  "none",
			"null_adjustment": "always_last",
		}),
		"self_static_accessor": On(),
		"simplified_if_return": On(),
		"yoda_style":           Off(),
	}
}

func riskyRules() Rules {
	return Rules{
		"@PhpCsFixer:risky":                      On(),
		"@PHPUnit84Migration:risky":              On(),
		"date_time_immutable":                    On(),
		"final_class":                            On(),
		"final_public_method_for_abstract_class": On(),
		"php_unit_test_case_static_method_calls": With(map[string]any{"call_type": "self"}),
		"psr_autoloading":                        On(),
		"regular_callable_call":                  On(),
		"static_lambda":                          On(),
	}
}

func php71MigrationRisky() Rules { return Rules{"@PHP71Migration:risky": On()} }
func php74MigrationRisky() Rules { return Rules{"@PHP74Migration:risky": On()} }
func php80MigrationRisky() Rules { return Rules{"@PHP80Migration:risky": On()} }

// migrationRules returns the syntax-modernization set and the extra
// version-specific tweaks for tag, in merge order.
func migrationRules(tag version.Tag) ([]Rules, bool) {
	switch tag {
	case version.PHP72:
		return []Rules{{"@PHP71Migration": On()}}, true
	case version.PHP73:
		return []Rules{
			{"@PHP73Migration": On()},
			{"heredoc_indentation": On()},
		}, true
	case version.PHP74:
		return []Rules{
			{"@PHP74Migration": On()},
			{"no_null_property_initialization": On()},
		}, true
	case version.PHP80:
		return []Rules{
			{"@PHP80Migration": On()},
			{"no_null_property_initialization": On()},
		}, true
	case version.PHP81:
		return []Rules{
			{"@PHP81Migration": On()},
			{"no_null_property_initialization": On()},
		}, true
	}
	return nil, false
}

// riskyMigrationRules returns the risky migration set enabled for tag.
func riskyMigrationRules(tag version.Tag) (Rules, bool) {
	switch tag {
	case version.PHP72, version.PHP73:
		return php71MigrationRisky(), true
	case version.PHP74:
		return php74MigrationRisky(), true
	case version.PHP80, version.PHP81:
		return php80MigrationRisky(), true
	}
	return nil, false
}

// allRiskyTables lists every risky table regardless of version.
func allRiskyTables() []Rules {
	return []Rules{
		riskyRules(),
		php71MigrationRisky(),
		php74MigrationRisky(),
		php80MigrationRisky(),
	}
}

// Risky reports whether name belongs to any risky table.
func Risky(name string) bool {
	return inAny(name, allRiskyTables())
}
