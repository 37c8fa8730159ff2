package try

// Option is a value that may be absent.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// ToTry turns an absent Option into a Failure holding err.
func (o Option[T]) ToTry(err error) Try[T] {
	if o.present {
		return success(o.value)
	}
	return OfFailure[T](err)
}
