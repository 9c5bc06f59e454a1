package connectors

// assign copies a partial-update field onto the entity when supplied.
func assign[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}

// assignList copies a sequence field when supplied; a nil slice means
// "leave unchanged", an empty non-nil slice clears the field.
func assignList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}
