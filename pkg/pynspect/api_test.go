package pynspect

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/cesnet/pynspect/pkg/eval"
)

func TestEngineFilterSource(t *testing.T) {
	Convey("Engine.FilterSource", t, func() {
		engine, err := NewEngine(nil)
		So(err, ShouldBeNil)

		Convey("evaluates a plain comparison", func() {
			record := map[string]interface{}{"ConnCount": int64(5)}
			got, err := engine.FilterSource(record, "ConnCount gt 1")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, true)
		})

		Convey("lifts and compares an IPv4 field through the default compiler", func() {
			record := map[string]interface{}{"Source": []interface{}{
				map[string]interface{}{"IP4": []interface{}{"188.14.166.39"}},
			}}
			got, err := engine.FilterSource(record, `Source.IP4 == "188.14.166.39"`)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, true)
		})

		Convey("reports a syntax error from a malformed filter", func() {
			_, err := engine.FilterSource(map[string]interface{}{}, "1 +")
			So(err, ShouldNotBeNil)
		})

		Convey("MatchSource coerces an absent result to false", func() {
			matched, err := engine.MatchSource(map[string]interface{}{}, "Missing gt 1")
			So(err, ShouldBeNil)
			So(matched, ShouldBeFalse)
		})
	})
}

func TestEngineWithoutCompiler(t *testing.T) {
	Convey("an Engine with EnableCompiler false still filters correctly", t, func() {
		engine, err := NewEngine(&Config{EnableCompiler: false})
		So(err, ShouldBeNil)

		record := map[string]interface{}{"Source": []interface{}{
			map[string]interface{}{"IP4": []interface{}{"188.14.166.39"}},
		}}
		got, err := engine.FilterSource(record, `Source.IP4 == "188.14.166.39"`)
		So(err, ShouldBeNil)
		So(got, ShouldEqual, true)
	})
}

func TestEngineCustomFunction(t *testing.T) {
	Convey("a Config.Functions entry extends the evaluator's registry", t, func() {
		engine, err := NewEngine(&Config{Functions: map[string]eval.Func{
			"always_three": func(args []interface{}) (interface{}, error) {
				return int64(3), nil
			},
		}})
		So(err, ShouldBeNil)

		got, err := engine.FilterSource(map[string]interface{}{}, "always_three() eq 3")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, true)
	})
}

func TestEngineCustomTypedField(t *testing.T) {
	Convey("Config.ExtraIPv4Fields registers an additional typed field", t, func() {
		engine, err := NewEngine(&Config{EnableCompiler: true, ExtraIPv4Fields: []string{"Gateway.IP4"}})
		So(err, ShouldBeNil)

		record := map[string]interface{}{"Gateway": []interface{}{
			map[string]interface{}{"IP4": []interface{}{"10.0.0.1"}},
		}}
		got, err := engine.FilterSource(record, `Gateway.IP4 == "10.0.0.1"`)
		So(err, ShouldBeNil)
		So(got, ShouldEqual, true)

		Convey("an Engine without the custom field compares the raw strings directly", func() {
			plain, err := NewEngine(nil)
			So(err, ShouldBeNil)
			got, err := plain.FilterSource(record, `Gateway.IP4 == "10.0.0.1"`)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, true)
		})
	})
}

func TestDecodeYAML(t *testing.T) {
	Convey("DecodeYAML builds a filterable record", t, func() {
		record, err := DecodeYAML([]byte("ConnCount: 5\nSource:\n  IP4: 188.14.166.39\n"))
		So(err, ShouldBeNil)
		So(record["ConnCount"], ShouldEqual, 5)

		engine, err := NewEngine(nil)
		So(err, ShouldBeNil)
		got, err := engine.FilterSource(record, "ConnCount gt 1")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, true)
	})
}
