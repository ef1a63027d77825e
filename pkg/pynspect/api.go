// Package pynspect wires the lexer, parser, domain-typing compiler and
// evaluator into a single library entry point: an Engine built from a
// Config, offering Parse/Compile/Filter/Match over filter source and
// records.
package pynspect

import (
	"github.com/cesnet/pynspect/pkg/ast"
	"github.com/cesnet/pynspect/pkg/compiler"
	"github.com/cesnet/pynspect/pkg/eval"
	"github.com/cesnet/pynspect/pkg/parser"
)

// Logger receives diagnostic output from an Engine at three levels.
type Logger interface {
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Trace(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

// Config configures an Engine.
type Config struct {
	// Logger receives Parse diagnostics (a trace of each filter parsed and
	// any parse error); Compile logs nothing. Defaults to a no-op.
	Logger Logger

	// EnableCompiler runs the domain-typing compiler (pkg/compiler) over
	// every parsed tree before filtering. pkg/eval's opportunistic literal
	// lifting means correctness doesn't depend on this, but leaving it on
	// avoids re-parsing IP/datetime/timedelta literals on every Filter call.
	EnableCompiler bool

	// EnableCache memoizes compiled trees by structural hash
	// (internal/treehash via compiler.Cache), skipping recompilation of a
	// filter submitted more than once.
	EnableCache bool

	// Functions extends or overrides the evaluator's built-in utcnow/size
	// function registry.
	Functions map[string]eval.Func

	// ExtraDatetimeFields, ExtraIPv4Fields and ExtraIPv6Fields extend the
	// compiler's typed-field registry beyond the built-in IDEA
	// Source/Target.IP4/IP6 and *Time fields, for records whose schema
	// carries additional typed JPaths.
	ExtraDatetimeFields []string
	ExtraIPv4Fields     []string
	ExtraIPv6Fields     []string
}

// DefaultConfig returns the Engine configuration used when no Config is
// supplied to NewEngine: compiler and cache both on, no extra functions.
func DefaultConfig() *Config {
	return &Config{
		Logger:         nopLogger{},
		EnableCompiler: true,
		EnableCache:    true,
	}
}

// Engine is the library entry point: parse filter source, optionally
// domain-compile it, then filter/match records against it.
type Engine interface {
	Parse(src string) (*ast.Node, error)
	Compile(n *ast.Node) (*ast.Node, error)
	Filter(record map[string]interface{}, n *ast.Node) (interface{}, error)
	Match(record map[string]interface{}, n *ast.Node) (bool, error)

	// FilterSource and MatchSource chain Parse -> Compile -> Filter/Match
	// for the common case of a one-shot filter string.
	FilterSource(record map[string]interface{}, src string) (interface{}, error)
	MatchSource(record map[string]interface{}, src string) (bool, error)
}

type engine struct {
	cfg      *Config
	eval     *eval.Evaluator
	compiler *compiler.Compiler
	cache    compiler.Cache
}

// NewEngine builds an Engine from cfg. A nil cfg is equivalent to
// DefaultConfig().
func NewEngine(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}

	ev := eval.New()
	for name, fn := range cfg.Functions {
		ev.Functions[name] = fn
	}

	cmp := compiler.NewWithFields(cfg.ExtraDatetimeFields, cfg.ExtraIPv4Fields, cfg.ExtraIPv6Fields)

	e := &engine{cfg: cfg, eval: ev, compiler: cmp}
	e.cache.Compiler = cmp
	return e, nil
}

func (e *engine) Parse(src string) (*ast.Node, error) {
	e.cfg.Logger.Trace("pynspect: parsing filter %q", src)
	n, err := parser.Parse(src)
	if err != nil {
		e.cfg.Logger.Error("pynspect: parse error for %q: %v", src, err)
		return nil, err
	}
	return n, nil
}

func (e *engine) Compile(n *ast.Node) (*ast.Node, error) {
	if !e.cfg.EnableCompiler {
		return n, nil
	}
	if e.cfg.EnableCache {
		return e.cache.Compile(n)
	}
	return e.compiler.Compile(n)
}

func (e *engine) Filter(record map[string]interface{}, n *ast.Node) (interface{}, error) {
	return e.eval.Filter(record, n)
}

func (e *engine) Match(record map[string]interface{}, n *ast.Node) (bool, error) {
	return e.eval.Match(record, n)
}

func (e *engine) FilterSource(record map[string]interface{}, src string) (interface{}, error) {
	n, err := e.Parse(src)
	if err != nil {
		return nil, err
	}
	n, err = e.Compile(n)
	if err != nil {
		return nil, err
	}
	return e.Filter(record, n)
}

func (e *engine) MatchSource(record map[string]interface{}, src string) (bool, error) {
	n, err := e.Parse(src)
	if err != nil {
		return false, err
	}
	n, err = e.Compile(n)
	if err != nil {
		return false, err
	}
	return e.Match(record, n)
}
