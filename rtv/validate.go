//go:build rtvdebug

package rtv

// checkInvariants runs the full structural audit (the invariants listed in
// SPEC_FULL.md section 3) after every
// mutation. It is only compiled when the rtvdebug build tag is set; see
// validate_off.go for the zero-cost default. Invariants itself (the audit
// logic) lives in invariants.go and is always compiled, since tools like
// rtvctl validate call it directly regardless of this build tag.
func (v *Vector[T]) checkInvariants() {
	if err := v.Invariants(); err != nil {
		panic(err)
	}
}
