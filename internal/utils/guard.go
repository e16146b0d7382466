package utils

// Recover runs fn and logs a panic from it as an error instead of
// unwinding further. It reports whether fn completed.
func Recover(what string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			Error("%s failed: %v", what, r)
			ok = false
		}
	}()
	fn()
	return true
}

// Scoped calls begin, then body, then end. end runs even when body panics,
// so paired modes such as texture or scissor mode are always closed.
func Scoped(begin, end func(), body func()) {
	begin()
	defer end()
	body()
}
