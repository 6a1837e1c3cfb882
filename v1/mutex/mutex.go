package mutex

// Mutex grants exclusive access to the value it protects.
//
// T is the type of the protected value. Implementations guarantee that for
// the duration of f no other caller in the same concurrency domain observes
// or mutates the value. How the guarantee is provided is entirely up to the
// implementation; this interface only fixes the shape of the contract.
// Whether Lock blocks, fails or panics when exclusion cannot be obtained is
// likewise implementation policy.
type Mutex[T any] interface {
	// Lock runs f with exclusive access to the protected value.
	Lock(f func(*T))
}

// With locks m, runs f against the protected value and returns its result
// unchanged. Go interface methods cannot declare their own type parameters,
// so the result-returning form of Lock lives here as a free function.
func With[T, R any](m Mutex[T], f func(*T) R) R {
	var r R
	m.Lock(func(v *T) {
		r = f(v)
	})
	return r
}

// With2 locks a then b, left to right, and runs f with exclusive access to
// both values. Callers must keep the lock order consistent across call
// sites; With2 does nothing to prevent deadlock.
func With2[A, B, R any](a Mutex[A], b Mutex[B], f func(*A, *B) R) R {
	return With(a, func(av *A) R {
		return With(b, func(bv *B) R {
			return f(av, bv)
		})
	})
}

// With3 locks a, b and c left to right, then runs f with exclusive access
// to all three values.
func With3[A, B, C, R any](a Mutex[A], b Mutex[B], c Mutex[C], f func(*A, *B, *C) R) R {
	return With2(a, b, func(av *A, bv *B) R {
		return With(c, func(cv *C) R {
			return f(av, bv, cv)
		})
	})
}

// With4 locks a, b, c and d left to right, then runs f with exclusive
// access to all four values.
func With4[A, B, C, D, R any](a Mutex[A], b Mutex[B], c Mutex[C], d Mutex[D], f func(*A, *B, *C, *D) R) R {
	return With3(a, b, c, func(av *A, bv *B, cv *C) R {
		return With(d, func(dv *D) R {
			return f(av, bv, cv, dv)
		})
	})
}
