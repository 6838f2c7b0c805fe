package rsqrt

// Number is any Go integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Of converts v to float64 and returns Float64 of it.
func Of[T Number](v T) float64 {
	return Float64(float64(v))
}
