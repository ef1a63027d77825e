package domain

import "strconv"

// ToNumeric coerces a math-binary operand to a float64, the common ground
// every operand is reduced to before arithmetic: ints and floats pass
// through, Datetime coerces to epoch seconds, Timedelta to duration
// seconds, and numeric strings parse directly. Anything else fails,
// signaling the caller to treat the operand as non-coercible (coercion
// failure propagates as absent).
func ToNumeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case Datetime:
		return x.EpochSeconds(), true
	case Timedelta:
		return x.Seconds(), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
