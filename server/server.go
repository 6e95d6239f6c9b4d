/*
Package server exposes the gas dynamic relations as a JSON over HTTP API with
prometheus metrics.
*/
package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/gasdyn/types"
)

type Config struct {
	Gamma   float64 // Used when a query has no gamma parameter
	Degrees bool    // Angle unit when a query has no deg parameter
}

type Server struct {
	Config
	Router *mux.Router
}

// solver evaluates one relation from the parsed query
type solver func(q query, gamma float64) (interface{}, error)

func NewServer(cfg Config) (s *Server, err error) {
	if cfg.Gamma == 0 {
		cfg.Gamma = types.DefaultGamma
	}
	if err = types.CheckGamma(cfg.Gamma); err != nil {
		return
	}
	s = &Server{Config: cfg, Router: mux.NewRouter()}
	for name, fn := range map[string]solver{
		"isentropic":     isentropicHandler,
		"area-mach":      areaMachHandler,
		"prandtl-meyer":  prandtlMeyerHandler,
		"shock":          shockHandler,
		"normal-shock":   normalShockHandler,
		"max-deflection": maxDeflectionHandler,
		"expansion":      expansionHandler,
	} {
		s.Router.HandleFunc("/"+name, s.handle(name, fn)).Methods("GET")
	}
	s.Router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return
}

func (s *Server) ListenAndServe(addr string) error {
	log.WithFields(log.Fields{"addr": addr, "gamma": s.Gamma, "degrees": s.Degrees}).Info("gasdyn server listening")
	return http.ListenAndServe(addr, s.Router)
}

func (s *Server) handle(name string, fn solver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			code   = http.StatusOK
			result interface{}
			q      query
			gamma  float64
			err    error
		)
		start := time.Now()
		if q, err = newQuery(r.URL.Query(), s.Degrees); err == nil {
			if gamma, err = q.FloatDefault("gamma", s.Gamma); err == nil {
				result, err = fn(q, gamma)
			}
		}
		solveSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			var class string
			code, class = classify(err)
			errorCounter.WithLabelValues(name, class).Inc()
			log.WithFields(log.Fields{
				"endpoint": name,
				"query":    r.URL.RawQuery,
				"class":    class,
			}).Warn(err)
			result = map[string]string{"error": err.Error(), "class": class}
		} else {
			log.WithFields(log.Fields{"endpoint": name, "query": r.URL.RawQuery}).Debug("solved")
		}
		requestCounter.WithLabelValues(name, strconv.Itoa(code)).Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err = json.NewEncoder(w).Encode(result); err != nil {
			log.WithField("endpoint", name).Error(err)
		}
	}
}

func classify(err error) (code int, class string) {
	var pe *ParameterError
	switch {
	case errors.As(err, &pe):
		return http.StatusBadRequest, "parameter"
	case errors.Is(err, types.ErrDomain):
		return http.StatusUnprocessableEntity, "domain"
	case errors.Is(err, types.ErrNumerical):
		return http.StatusInternalServerError, "numerical"
	}
	return http.StatusInternalServerError, "internal"
}

// Number is a float64 that encodes the infinite limits of the relations as the strings
// "+Inf" and "-Inf", which plain JSON numbers cannot carry
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) (err error) {
	switch string(data) {
	case `"+Inf"`:
		*n = Number(math.Inf(1))
		return
	case `"-Inf"`:
		*n = Number(math.Inf(-1))
		return
	case "null":
		*n = Number(math.NaN())
		return
	}
	var f float64
	if err = json.Unmarshal(data, &f); err != nil {
		return
	}
	*n = Number(f)
	return
}
