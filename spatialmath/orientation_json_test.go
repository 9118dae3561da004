package spatialmath

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"go.viam.com/test"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/num/quat"
)

func TestOrientationRegistryParse(t *testing.T) {
	file, err := os.Open("data/orientations.json")
	test.That(t, err, test.ShouldBeNil)
	defer utils.UncheckedErrorFunc(file.Close)

	data, err := io.ReadAll(file)
	test.That(t, err, test.ShouldBeNil)
	var testMap map[string]json.RawMessage
	err = json.Unmarshal(data, &testMap)
	test.That(t, err, test.ShouldBeNil)

	reg := NewOrientationRegistry()

	// unknown orientation type
	var ro RawOrientation
	err = json.Unmarshal(testMap["wrong"], &ro)
	test.That(t, err, test.ShouldBeNil)
	_, err = reg.Parse(ro)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "oiler_angles not recognized")

	// good type, bad value
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["wrongvalue"], &ro)
	test.That(t, err, test.ShouldBeNil)
	_, err = reg.Parse(ro)
	test.That(t, err, test.ShouldNotBeNil)

	// empty config decodes to no rotation
	ro = RawOrientation{}
	err = json.Unmarshal(testMap["empty"], &ro)
	test.That(t, err, test.ShouldBeNil)
	o, err := reg.Parse(ro)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Quaternion(), test.ShouldResemble, quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0})

	// each builtin tag decodes to the same 45 degree roll
	for _, name := range []string{"euler", "eulerdegrees", "axisangle", "quaternion", "matrix"} {
		t.Run(name, func(t *testing.T) {
			ro = RawOrientation{}
			err = json.Unmarshal(testMap[name], &ro)
			test.That(t, err, test.ShouldBeNil)
			o, err := reg.Parse(ro)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, QuaternionAlmostEqual(o.Quaternion(), q45x, 1e-9), test.ShouldBeTrue)
		})
	}
}

func TestOrientationRegistryRegister(t *testing.T) {
	reg := NewOrientationRegistry()

	// builtins cannot be shadowed
	err := reg.Register(EulerAnglesType, func(json.RawMessage) (Orientation, error) {
		return NewZeroOrientation(), nil
	})
	test.That(t, err, test.ShouldNotBeNil)

	err = reg.Register("identity", nil)
	test.That(t, err, test.ShouldNotBeNil)

	err = reg.Register("identity", func(json.RawMessage) (Orientation, error) {
		return NewZeroOrientation(), nil
	})
	test.That(t, err, test.ShouldBeNil)
	o, err := reg.Parse(RawOrientation{Type: "identity", Value: json.RawMessage(`{}`)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Quaternion(), test.ShouldResemble, quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0})
}
