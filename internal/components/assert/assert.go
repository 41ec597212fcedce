package assert

// NotNil panics if value is nil, it is meant for constructor preconditions.
func NotNil(value any) {
	if value == nil {
		panic("expected value to be not nil")
	}
}
