package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// NonEmptyString is String, except that "" gives nil, which encodes as json null.
func NonEmptyString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// StringValue dereferences p, nil gives "".
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
