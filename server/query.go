package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/notargets/gasdyn/utils"
)

// ParameterError is a missing or malformed query parameter
type ParameterError struct {
	Name, Value, Reason string
}

func (pe *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s=%q: %s", pe.Name, pe.Value, pe.Reason)
}

type query struct {
	url.Values
	Degrees bool
}

func newQuery(values url.Values, degrees bool) (q query, err error) {
	q = query{Values: values, Degrees: degrees}
	if d := values.Get("deg"); d != "" {
		if q.Degrees, err = strconv.ParseBool(d); err != nil {
			err = &ParameterError{Name: "deg", Value: d, Reason: "expected a boolean"}
		}
	}
	return
}

func (q query) Has(name string) bool {
	return q.Values.Get(name) != ""
}

func (q query) Float(name string) (x float64, err error) {
	val := q.Values.Get(name)
	if val == "" {
		return 0, &ParameterError{Name: name, Reason: "required"}
	}
	if x, err = strconv.ParseFloat(val, 64); err != nil {
		return 0, &ParameterError{Name: name, Value: val, Reason: "expected a number"}
	}
	if math.IsNaN(x) {
		return 0, &ParameterError{Name: name, Value: val, Reason: "NaN is not a value"}
	}
	return
}

func (q query) FloatDefault(name string, def float64) (float64, error) {
	if !q.Has(name) {
		return def, nil
	}
	return q.Float(name)
}

// Angle reads an angle parameter in the query's unit and returns radians
func (q query) Angle(name string) (rad float64, err error) {
	if rad, err = q.Float(name); err != nil {
		return
	}
	if q.Degrees {
		rad = utils.Deg2Rad(rad)
	}
	return
}

// Out converts an angle in radians to the query's unit
func (q query) Out(rad float64) float64 {
	if q.Degrees {
		return utils.Rad2Deg(rad)
	}
	return rad
}
