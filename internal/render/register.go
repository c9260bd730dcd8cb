package render

func init() {
	// PHP first: it is the default and what both tools load natively.
	Register(&PHP{})
	Register(&JSON{})
	Register(&YAML{})
}
