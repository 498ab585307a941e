package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/delaneyj/eventsignal/binder"
	"github.com/delaneyj/eventsignal/signal"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Scenario describes objects with plain fields, the bindings between them and
// a list of steps to run against them.
type Scenario struct {
	Objects  map[string]map[string]any `yaml:"objects"`
	Bindings []Binding                 `yaml:"bindings"`
	Steps    []Step                    `yaml:"steps"`
}

// Binding names two members as "object.member". To may be empty when
// unbinding, which removes only From's side.
type Binding struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Step is one action. Exactly one of its fields should be set.
type Step struct {
	Set     string         `yaml:"set"`
	Value   any            `yaml:"value"`
	Delete  string         `yaml:"delete"`
	Bind    *Binding       `yaml:"bind"`
	Unbind  *Binding       `yaml:"unbind"`
	Block   string         `yaml:"block"`
	Unblock string         `yaml:"unblock"`
	Expect  map[string]any `yaml:"expect"`
}

var errExpectation = errors.New("expectation failed")

func loadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseScenario(f)
}

func parseScenario(r io.Reader) (*Scenario, error) {
	sc := &Scenario{}
	if err := yaml.NewDecoder(r).Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return sc, nil
}

// object exposes its fields as accessor members so binding promotes them to
// observable properties.
type object struct {
	name    string
	values  map[string]any
	present map[string]bool
	members signal.Members
}

func newObject(name string, values map[string]any) *object {
	o := &object{
		name:    name,
		values:  map[string]any{},
		present: map[string]bool{},
		members: signal.Members{},
	}
	for field, v := range values {
		o.values[field] = v
		o.present[field] = true
		o.members[field] = signal.Accessor{
			Get: func() any { return o.values[field] },
			Set: func(v any) {
				o.values[field] = v
				o.present[field] = true
			},
			Delete: func() {
				delete(o.values, field)
				o.present[field] = false
			},
		}
	}
	return o
}

func (o *object) Members() signal.Members {
	return o.members
}

func (o *object) fields() []string {
	fields := make([]string, 0, len(o.present))
	for f := range o.present {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// runner holds the live objects of a scenario.
type runner struct {
	objects map[string]*object
	traced  map[signal.Source]bool
	trace   io.Writer
}

func newRunner(sc *Scenario, trace io.Writer) (*runner, error) {
	r := &runner{
		objects: map[string]*object{},
		traced:  map[signal.Source]bool{},
		trace:   trace,
	}
	for name, values := range sc.Objects {
		r.objects[name] = newObject(name, values)
	}
	for _, b := range sc.Bindings {
		if err := r.bind(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *runner) resolve(ref string) (*object, string, signal.Source, error) {
	objName, field, ok := strings.Cut(ref, ".")
	if !ok {
		return nil, "", nil, fmt.Errorf("%q: want object.member", ref)
	}
	obj, ok := r.objects[objName]
	if !ok {
		return nil, "", nil, fmt.Errorf("%q: unknown object %q", ref, objName)
	}
	src, err := binder.ResolveSource(obj, field)
	if err != nil {
		return nil, "", nil, fmt.Errorf("%q: %w", ref, err)
	}
	if !r.traced[src] {
		r.traced[src] = true
		for _, ch := range []string{signal.Change, signal.Delete} {
			src.On(ch, signal.Func(func(args ...any) {
				fmt.Fprintf(r.trace, "  %s %s %v\n", ref, ch, args)
			}))
		}
	}
	return obj, field, src, nil
}

func (r *runner) bind(b Binding) error {
	_, _, from, err := r.resolve(b.From)
	if err != nil {
		return err
	}
	_, _, to, err := r.resolve(b.To)
	if err != nil {
		return err
	}
	return binder.BindSignals(from, to)
}

func (r *runner) unbind(b Binding) error {
	_, _, from, err := r.resolve(b.From)
	if err != nil {
		return err
	}
	var to signal.Source
	if b.To != "" {
		if _, _, to, err = r.resolve(b.To); err != nil {
			return err
		}
	}
	if to == nil {
		return binder.UnbindSignals(from, nil)
	}
	return binder.UnbindSignals(from, to)
}

func (r *runner) step(i int, s Step) error {
	switch {
	case s.Set != "":
		fmt.Fprintf(r.trace, "step %d: set %s = %v\n", i, s.Set, s.Value)
		_, _, src, err := r.resolve(s.Set)
		if err != nil {
			return err
		}
		_, err = src.Call(s.Value)
		return err
	case s.Delete != "":
		fmt.Fprintf(r.trace, "step %d: delete %s\n", i, s.Delete)
		_, _, src, err := r.resolve(s.Delete)
		if err != nil {
			return err
		}
		del, ok := src.(interface{ Delete() error })
		if !ok {
			return fmt.Errorf("%q: %w", s.Delete, signal.ErrDelete)
		}
		return del.Delete()
	case s.Bind != nil:
		fmt.Fprintf(r.trace, "step %d: bind %s <-> %s\n", i, s.Bind.From, s.Bind.To)
		return r.bind(*s.Bind)
	case s.Unbind != nil:
		fmt.Fprintf(r.trace, "step %d: unbind %s\n", i, s.Unbind.From)
		return r.unbind(*s.Unbind)
	case s.Block != "":
		fmt.Fprintf(r.trace, "step %d: block %s\n", i, s.Block)
		_, _, src, err := r.resolve(s.Block)
		if err != nil {
			return err
		}
		src.Block(true)
		return nil
	case s.Unblock != "":
		fmt.Fprintf(r.trace, "step %d: unblock %s\n", i, s.Unblock)
		_, _, src, err := r.resolve(s.Unblock)
		if err != nil {
			return err
		}
		src.Block(false)
		return nil
	case len(s.Expect) > 0:
		fmt.Fprintf(r.trace, "step %d: expect\n", i)
		return r.expect(s.Expect)
	}
	return fmt.Errorf("step %d: nothing to do", i)
}

func (r *runner) expect(want map[string]any) error {
	var errs []error
	refs := make([]string, 0, len(want))
	for ref := range want {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	for _, ref := range refs {
		objName, field, _ := strings.Cut(ref, ".")
		obj, ok := r.objects[objName]
		if !ok {
			errs = append(errs, fmt.Errorf("%q: unknown object %q", ref, objName))
			continue
		}
		got := obj.values[field]
		if !reflect.DeepEqual(got, want[ref]) {
			errs = append(errs, fmt.Errorf("%w: %s = %v, want %v", errExpectation, ref, got, want[ref]))
		}
	}
	return errors.Join(errs...)
}

func (r *runner) run(steps []Step) error {
	for i, s := range steps {
		if err := r.step(i+1, s); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *runner) render(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetTitle("Final state")
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"object", "member", "value"})

	names := make([]string, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		obj := r.objects[name]
		for _, field := range obj.fields() {
			value := any("<deleted>")
			if obj.present[field] {
				value = obj.values[field]
			}
			tbl.AppendRow(table.Row{name, field, value})
		}
	}
	tbl.Render()
}

// runScenario loads path, runs it and prints the final state.
func runScenario(path string, out io.Writer) error {
	sc, err := loadScenario(path)
	if err != nil {
		return err
	}
	r, err := newRunner(sc, out)
	if err != nil {
		return err
	}
	err = r.run(sc.Steps)
	r.render(out)
	if err != nil {
		return err
	}
	log.Printf("Scenario %s passed (%d steps)", path, len(sc.Steps))
	return nil
}
