package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/sambeau/unitz/pkg/unitz"
)

// apiRequest is the body of every POST endpoint. Options are applied on top
// of the registry defaults; their keys are the Go field names in any case
// ("significant", "unitSpacer", "onlyUnits").
type apiRequest struct {
	Input     json.RawMessage `json:"input"`
	Other     json.RawMessage `json:"other"`
	Unit      string          `json:"unit"`
	Factor    float64         `json:"factor"`
	Transform json.RawMessage `json:"transform"`
	Output    json.RawMessage `json:"output"`
	Sort      json.RawMessage `json:"sort"`
}

type apiResponse struct {
	Output string      `json:"output"`
	Ranges []rangeJSON `json:"ranges"`
}

type rangeJSON struct {
	Text string    `json:"text"`
	Min  valueJSON `json:"min"`
	Max  valueJSON `json:"max"`
}

type valueJSON struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
	Num   float64 `json:"num"`
	Den   float64 `json:"den"`
	Unit  string  `json:"unit"`
	Class string  `json:"class,omitempty"`
}

type apiError struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// call carries a decoded request into an operation.
type call struct {
	base      *unitz.Base
	req       apiRequest
	transform unitz.Transform
	output    unitz.Output
	sort      unitz.Sort
}

// statusError carries an HTTP status out of an operation.
type statusError struct {
	status     int
	msg        string
	suggestion string
}

func (e *statusError) Error() string { return e.msg }

type operationFunc func(s *Server, c *call) (*unitz.Base, error)

var operations = map[string]operationFunc{
	"parse": func(_ *Server, c *call) (*unitz.Base, error) { return c.base, nil },
	"normalize": func(_ *Server, c *call) (*unitz.Base, error) {
		return c.base.Normalize(&c.transform, &c.output), nil
	},
	"compact":     func(_ *Server, c *call) (*unitz.Base, error) { return c.base.Compact(&c.transform), nil },
	"expand":      func(_ *Server, c *call) (*unitz.Base, error) { return c.base.Expand(&c.transform), nil },
	"conversions": func(_ *Server, c *call) (*unitz.Base, error) { return c.base.Conversions(&c.transform), nil },
	"filter":      func(_ *Server, c *call) (*unitz.Base, error) { return c.base.Filter(&c.transform), nil },
	"sort":        func(_ *Server, c *call) (*unitz.Base, error) { return c.base.Sort(&c.sort), nil },
	"scale": func(_ *Server, c *call) (*unitz.Base, error) {
		if c.req.Factor == 0 {
			return nil, &statusError{status: http.StatusBadRequest, msg: "factor is required"}
		}
		return c.base.Scale(c.req.Factor), nil
	},
	"convert": func(s *Server, c *call) (*unitz.Base, error) {
		if c.req.Unit == "" {
			return nil, &statusError{status: http.StatusBadRequest, msg: "unit is required"}
		}
		if s.reg.Lookup(c.req.Unit) == nil {
			return nil, &statusError{
				status:     http.StatusNotFound,
				msg:        fmt.Sprintf("%v: %q", unitz.ErrUnknownUnit, c.req.Unit),
				suggestion: s.reg.Suggest(c.req.Unit),
			}
		}
		return c.base.To(c.req.Unit), nil
	},
	"add": func(_ *Server, c *call) (*unitz.Base, error) {
		other, err := c.other()
		if err != nil {
			return nil, err
		}
		return c.base.Add(other), nil
	},
	"sub": func(_ *Server, c *call) (*unitz.Base, error) {
		other, err := c.other()
		if err != nil {
			return nil, err
		}
		return c.base.Sub(other), nil
	},
}

func (c *call) other() (unitz.Input, error) {
	in, err := decodeInput(c.req.Other)
	if err != nil {
		return nil, &statusError{status: http.StatusBadRequest, msg: "other: " + err.Error()}
	}
	return in, nil
}

// operation adapts an operationFunc into a handler: decode, parse,
// validate, run, respond.
func (s *Server) operation(op operationFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}

		c, err := s.newCall(req)
		if err != nil {
			s.writeStatusError(w, err)
			return
		}

		out, err := op(s, c)
		if err != nil {
			s.writeStatusError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, render(out, &c.output))
	})
}

func (s *Server) newCall(req apiRequest) (*call, error) {
	d := s.reg.Defaults()
	c := &call{req: req, transform: d.Transform, output: d.Output, sort: d.Sort}
	// decoding reuses slices and maps, which are shared with the defaults
	c.transform.OnlyUnits = slices.Clone(c.transform.OnlyUnits)
	c.transform.NotUnits = slices.Clone(c.transform.NotUnits)
	c.transform.OnlyClasses = slices.Clone(c.transform.OnlyClasses)
	c.transform.NotClasses = slices.Clone(c.transform.NotClasses)
	c.sort.Classes = maps.Clone(c.sort.Classes)

	for name, opts := range map[string]struct {
		raw json.RawMessage
		dst any
	}{
		"transform": {req.Transform, &c.transform},
		"output":    {req.Output, &c.output},
		"sort":      {req.Sort, &c.sort},
	} {
		if len(opts.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(opts.raw, opts.dst); err != nil {
			return nil, &statusError{status: http.StatusBadRequest, msg: name + ": " + err.Error()}
		}
	}

	in, err := decodeInput(req.Input)
	if err != nil {
		return nil, &statusError{status: http.StatusBadRequest, msg: "input: " + err.Error()}
	}
	c.base = s.reg.Parse(in)
	if c.base.Len() == 0 || !c.base.IsValid() {
		return nil, &statusError{status: http.StatusUnprocessableEntity, msg: unitz.ErrInvalidInput.Error()}
	}
	return c, nil
}

var errNoInput = errors.New("missing")

// explicitJSON is the object form of a single quantity.
type explicitJSON struct {
	Value float64 `json:"value"`
	Num   float64 `json:"num"`
	Den   float64 `json:"den"`
	Unit  string  `json:"unit"`
}

func (e explicitJSON) input() unitz.ExplicitValue {
	return unitz.ExplicitValue{Value: e.Value, Num: e.Num, Den: e.Den, Unit: e.Unit}
}

// decodeInput accepts a string, an array of inputs, a value object
// {"value", "num", "den", "unit"} or a range object {"min", "max"}.
func decodeInput(raw json.RawMessage) (unitz.Input, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errNoInput
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return unitz.Text(text), nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		list := make(unitz.List, 0, len(items))
		for i, item := range items {
			in, err := decodeInput(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			list = append(list, in)
		}
		return list, nil
	}

	var obj struct {
		explicitJSON
		Min *explicitJSON `json:"min"`
		Max *explicitJSON `json:"max"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("expected text, a list, or a quantity object")
	}
	if obj.Min == nil && obj.Max == nil {
		return obj.explicitJSON.input(), nil
	}
	if obj.Min == nil {
		obj.Min = obj.Max
	}
	if obj.Max == nil {
		obj.Max = obj.Min
	}
	return unitz.ExplicitRange{Min: obj.Min.input(), Max: obj.Max.input()}, nil
}

func render(b *unitz.Base, o *unitz.Output) apiResponse {
	resp := apiResponse{Output: b.Output(o), Ranges: []rangeJSON{}}
	for _, r := range b.Ranges() {
		if !r.IsValid() {
			continue
		}
		resp.Ranges = append(resp.Ranges, rangeJSON{
			Text: o.Range(r),
			Min:  valueToJSON(r.Min(), o),
			Max:  valueToJSON(r.Max(), o),
		})
	}
	return resp
}

func valueToJSON(v unitz.Value, o *unitz.Output) valueJSON {
	out := valueJSON{
		Text:  o.Value(v),
		Value: v.Float(),
		Num:   v.Num(),
		Den:   v.Den(),
		Unit:  v.Unit(),
	}
	if g := v.Group(); g != nil && !g.Dynamic() {
		out.Class = g.Class().Name()
	}
	return out
}

type classJSON struct {
	Name   string      `json:"name"`
	Groups []groupJSON `json:"groups"`
}

type groupJSON struct {
	Unit         string   `json:"unit"`
	BaseUnit     string   `json:"base_unit"`
	System       string   `json:"system"`
	Common       bool     `json:"common"`
	Denominators []int    `json:"denominators"`
	Aliases      []string `json:"aliases"`
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	classes := s.reg.Classes()
	out := make([]classJSON, 0, len(classes))
	for _, c := range classes {
		cj := classJSON{Name: c.Name()}
		for _, g := range c.Groups() {
			gj := groupJSON{
				Unit:         g.Unit(),
				BaseUnit:     g.BaseUnit(),
				System:       g.System().String(),
				Common:       g.Common(),
				Denominators: g.Denominators(),
			}
			for _, a := range g.Units() {
				gj.Aliases = append(gj.Aliases, a.Name)
			}
			cj.Groups = append(cj.Groups, gj)
		}
		out = append(out, cj)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	units := s.reg.Units()
	if prefix := r.URL.Query().Get("prefix"); prefix != "" {
		units = slices.DeleteFunc(units, func(u string) bool {
			return len(u) < len(prefix) || u[:len(prefix)] != prefix
		})
	}
	writeJSON(w, http.StatusOK, units)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeStatusError(w http.ResponseWriter, err error) {
	var se *statusError
	if errors.As(err, &se) {
		writeJSON(w, se.status, apiError{Error: se.msg, Suggestion: se.suggestion})
		return
	}
	s.log.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiError{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
