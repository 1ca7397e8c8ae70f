package verify

import "fmt"

// SweepFor looks up the named artifact's sweep, matching pkg/sim's
// registry names where an artifact has one. n_byte_adder's sample count
// defaults to 10000 when samples<=0.
func SweepFor(name string, params []int, samples int) (Sweep, error) {
	switch name {
	case "eight-bit-adder":
		return EightBitAdderSweep(), nil
	case "n-byte-adder":
		if len(params) != 1 {
			return Sweep{}, fmt.Errorf("verify: n-byte-adder takes 1 param, got %d", len(params))
		}
		if samples <= 0 {
			samples = 10000
		}
		return NByteAdderSweep(params[0], samples), nil
	case "eight-bit-subtractor":
		return EightBitSubtractorSweep(), nil
	case "comparator":
		return ComparatorSweep(), nil
	case "eight-bit-comparator":
		return EightBitComparatorSweep(), nil
	case "eight-bit-multiplier":
		return EightBitMultiplierSweep(), nil
	case "bit-decoder":
		if len(params) != 1 {
			return Sweep{}, fmt.Errorf("verify: bit-decoder takes 1 param, got %d", len(params))
		}
		return DecoderSweep(params[0]), nil
	default:
		return Sweep{}, fmt.Errorf("verify: no sweep registered for %q (ram uses verify.RAM directly)", name)
	}
}
