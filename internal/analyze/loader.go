package analyze

import (
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"reflect"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/tools/go/packages"

	"path-flattener/internal/common"
	"path-flattener/internal/shape"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

var (
	// ErrTypeNotFound is returned when the requested type is not declared in the loaded packages.
	ErrTypeNotFound = errors.New("type not found")
	// ErrNotStruct is returned when the requested type is not a struct.
	ErrNotStruct = errors.New("type is not a struct")
	// ErrRecursiveType is returned when a struct contains itself outside of a list.
	ErrRecursiveType = errors.New("recursive type")
	// ErrAmbiguousType is returned by Find when several loaded packages declare the name.
	ErrAmbiguousType = errors.New("ambiguous type")
)

// Config controls how struct fields are turned into shape fields.
type Config struct {
	// UseJSONNames names fields after their json tag when present.
	UseJSONNames bool
	// OmitemptyOptional marks leaves tagged json:",omitempty" as optional.
	OmitemptyOptional bool
	// Logger receives load progress. Defaults to a discarding logger.
	Logger logr.Logger
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		UseJSONNames:      true,
		OmitemptyOptional: true,
	}
}

// Analyzer loads Go packages and derives shapes from their struct types.
type Analyzer struct {
	cfg   Config
	log   logr.Logger
	pkgs  map[string]*packages.Package
	order []string // package paths in load order
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	log := cfg.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &Analyzer{
		cfg:  cfg,
		log:  log,
		pkgs: make(map[string]*packages.Package),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./examples/pagination").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if _, seen := a.pkgs[pkg.PkgPath]; !seen {
			a.order = append(a.order, pkg.PkgPath)
		}

		a.pkgs[pkg.PkgPath] = pkg
		a.log.V(1).Info("loaded package", "path", pkg.PkgPath, "files", len(pkg.GoFiles))
	}

	return nil
}

// Packages returns the loaded package paths in load order.
func (a *Analyzer) Packages() []string {
	return slices.Clone(a.order)
}

// Shape derives the shape of the named struct type declared in pkgPath.
func (a *Analyzer) Shape(pkgPath, typeName string) (*shape.Shape, error) {
	pkg, ok := a.pkgs[pkgPath]
	if !ok {
		return nil, fmt.Errorf("%w: package %s is not loaded", ErrTypeNotFound, pkgPath)
	}

	tn, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, common.QualifiedName(pkgPath, typeName))
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, common.QualifiedName(pkgPath, typeName))
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotStruct, common.QualifiedName(pkgPath, typeName), named.Underlying())
	}

	s, err := a.structShape(named.Obj().Name(), st, []*types.Named{named})
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", common.QualifiedName(pkgPath, typeName), err)
	}

	return s, nil
}

// Find derives the shape of typeName, searching every loaded package.
// typeName may be qualified with the package alias ("pagination.Query").
func (a *Analyzer) Find(typeName string) (*shape.Shape, error) {
	alias, name := "", typeName
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		alias, name = typeName[:i], typeName[i+1:]
	}

	var matches []string

	for _, path := range a.order {
		if alias != "" && alias != common.PkgAlias(path) && alias != path {
			continue
		}

		if _, ok := a.pkgs[path].Types.Scope().Lookup(name).(*types.TypeName); ok {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, typeName)
	case 1:
		return a.Shape(matches[0], name)
	default:
		return nil, fmt.Errorf("%w: %s is declared in %s", ErrAmbiguousType, typeName, strings.Join(matches, ", "))
	}
}

// structShape converts the exported fields of st. stack holds the named
// struct types currently being expanded.
func (a *Analyzer) structShape(name string, st *types.Struct, stack []*types.Named) (*shape.Shape, error) {
	s := &shape.Shape{Name: name}

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() {
			continue
		}

		tag := parseJSONTag(reflect.StructTag(st.Tag(i)))
		if tag.skip {
			continue
		}

		// Embedded structs without a json name are inlined, like encoding/json does.
		if v.Embedded() && tag.name == "" {
			if inner, named, ok := a.inlineStruct(v.Type()); ok {
				if slices.Contains(stack, named) {
					return nil, fmt.Errorf("%w: %s embeds itself", ErrRecursiveType, named.Obj().Name())
				}

				embedded, err := a.structShape(name, inner, append(slices.Clone(stack), named))
				if err != nil {
					return nil, err
				}

				s.Fields = append(s.Fields, embedded.Fields...)

				continue
			}
		}

		fieldName := v.Name()
		if a.cfg.UseJSONNames && tag.name != "" {
			fieldName = tag.name
		}

		f, err := a.field(fieldName, v.Type(), tag.omitempty, stack)
		if err != nil {
			return nil, err
		}

		s.Fields = append(s.Fields, f)
	}

	return s, nil
}

func (a *Analyzer) inlineStruct(t types.Type) (*types.Struct, *types.Named, bool) {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok || a.isExternal(named) {
		return nil, nil, false
	}

	st, ok := named.Underlying().(*types.Struct)

	return st, named, ok
}

// field converts a single struct field.
func (a *Analyzer) field(name string, t types.Type, omitempty bool, stack []*types.Named) (shape.Field, error) {
	optional := false

	for {
		p, ok := types.Unalias(t).(*types.Pointer)
		if !ok {
			break
		}

		optional = true
		t = p.Elem()
	}

	t = types.Unalias(t)
	leafOptional := optional || (omitempty && a.cfg.OmitemptyOptional)

	switch u := t.Underlying().(type) {
	case *types.Slice:
		f := shape.List(name, a.typeRef(u.Elem()))
		f.Optional = leafOptional

		return f, nil

	case *types.Array:
		f := shape.List(name, a.typeRef(u.Elem()))
		f.Optional = leafOptional

		return f, nil

	case *types.Map:
		f := shape.List(name, a.typeRef(u.Elem()))
		f.Optional = leafOptional

		return f, nil

	case *types.Struct:
		named, _ := t.(*types.Named)
		if named != nil && a.isExternal(named) {
			return shape.Field{Name: name, Kind: shape.KindLeaf, Type: a.typeRef(named), Optional: leafOptional}, nil
		}

		nextStack := stack
		nestedName := ""

		if named != nil {
			if slices.Contains(stack, named) {
				return shape.Field{}, fmt.Errorf("%w: %s.%s refers back to %s",
					ErrRecursiveType, stack[len(stack)-1].Obj().Name(), name, named.Obj().Name())
			}

			nextStack = append(slices.Clone(stack), named)
			nestedName = named.Obj().Name()
		}

		nested, err := a.structShape(nestedName, u, nextStack)
		if err != nil {
			return shape.Field{}, err
		}

		// encoding/json never omits struct values, so only pointers make a branch optional.
		return shape.Field{Name: name, Kind: shape.KindBranch, Shape: nested, Optional: optional}, nil

	default:
		return shape.Field{Name: name, Kind: shape.KindLeaf, Type: a.typeRef(t), Optional: leafOptional}, nil
	}
}

// typeRef describes a leaf or element type.
func (a *Analyzer) typeRef(t types.Type) shape.TypeRef {
	t = types.Unalias(t)

	if p, ok := t.(*types.Pointer); ok {
		return a.typeRef(p.Elem())
	}

	if named, ok := t.(*types.Named); ok {
		if lits := a.literals(named); len(lits) > 0 {
			return shape.Union(lits...)
		}

		obj := named.Obj()
		if obj.Pkg() == nil {
			return shape.Named(obj.Name())
		}

		return shape.Named(common.QualifiedName(obj.Pkg().Path(), obj.Name()))
	}

	if b, ok := t.Underlying().(*types.Basic); ok {
		info := b.Info()

		switch {
		case info&types.IsString != 0:
			return shape.String
		case info&types.IsBoolean != 0:
			return shape.Boolean
		case info&types.IsNumeric != 0:
			return shape.Number
		}
	}

	return shape.Named(types.TypeString(t, func(p *types.Package) string { return p.Name() }))
}

// literals returns the values of constants declared with the named string
// type, in declaration order. Only types from loaded packages are considered.
// Unions hold string literals, so numeric enums stay named types.
func (a *Analyzer) literals(named *types.Named) []string {
	if a.isExternal(named) {
		return nil
	}

	if b, ok := named.Underlying().(*types.Basic); !ok || b.Info()&types.IsString == 0 {
		return nil
	}

	scope := named.Obj().Pkg().Scope()

	var consts []*types.Const

	for _, n := range scope.Names() {
		c, ok := scope.Lookup(n).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			consts = append(consts, c)
		}
	}

	slices.SortFunc(consts, func(x, y *types.Const) int {
		return int(x.Pos()) - int(y.Pos())
	})

	out := make([]string, 0, len(consts))

	for _, c := range consts {
		out = append(out, constant.StringVal(c.Val()))
	}

	return out
}

// isExternal returns true if the type's package is not in our loaded set.
func (a *Analyzer) isExternal(named *types.Named) bool {
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return true
	}

	_, ok := a.pkgs[pkg.Path()]

	return !ok
}

type jsonTag struct {
	name      string
	omitempty bool
	skip      bool
}

func parseJSONTag(tag reflect.StructTag) jsonTag {
	raw, ok := tag.Lookup("json")
	if !ok {
		return jsonTag{}
	}

	if raw == "-" {
		return jsonTag{skip: true}
	}

	name, opts, _ := strings.Cut(raw, ",")

	return jsonTag{
		name:      name,
		omitempty: slices.Contains(strings.Split(opts, ","), "omitempty"),
	}
}
