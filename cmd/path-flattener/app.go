package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"path-flattener/internal/analyze"
	"path-flattener/internal/config"
	"path-flattener/internal/dotpath"
	"path-flattener/internal/flatten"
	"path-flattener/internal/shape"
)

type app struct {
	cfg       *config.Config
	log       logr.Logger
	out       io.Writer
	cache     *flatten.Cache
	emitShape bool
}

func newApp(cfg *config.Config, log logr.Logger, out io.Writer) (*app, error) {
	cache, err := flatten.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: log, out: out, cache: cache}, nil
}

func (a *app) dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]

	switch {
	case cmd == "flatten" && len(rest) == 1:
		return a.flattenFile(rest[0])
	case cmd == "struct" && len(rest) == 2:
		return a.flattenStruct(rest[0], rest[1])
	case cmd == "resolve" && len(rest) == 2:
		return a.resolve(rest[0], rest[1])
	case cmd == "parse" && len(rest) == 1:
		return a.parse(rest[0])
	default:
		return fmt.Errorf("%w: %q with %d argument(s)", errUsage, cmd, len(rest))
	}
}

// typeRefs picks the mapper domain: config overrides, then the shape file.
func (a *app) typeRefs(resourceState, params string) (shape.TypeRef, shape.TypeRef) {
	if a.cfg.ResourceState != "" {
		resourceState = a.cfg.ResourceState
	}

	if a.cfg.Params != "" {
		params = a.cfg.Params
	}

	return shape.Named(resourceState), shape.Named(params)
}

func (a *app) loadShape(path string) (*shape.Document, *shape.Shape, error) {
	doc, err := shape.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	s, err := doc.Shape()
	if err != nil {
		return nil, nil, err
	}

	a.log.V(1).Info("loaded shape", "file", path, "shape", s.Name, "fingerprint", s.Fingerprint())
	a.log.V(2).Info("shape dump", "dump", spew.Sdump(s))

	return doc, s, nil
}

func (a *app) flattenFile(path string) error {
	doc, s, err := a.loadShape(path)
	if err != nil {
		return err
	}

	state, params := a.typeRefs(doc.ResourceState, doc.Params)

	return a.writeFlattened(s, state, params)
}

func (a *app) flattenStruct(pattern, typeName string) error {
	an := analyze.NewAnalyzer(analyze.Config{
		UseJSONNames:      a.cfg.JSONNames,
		OmitemptyOptional: a.cfg.Omitempty,
		Logger:            a.log.WithName("analyze"),
	})

	if err := an.LoadPackages(pattern); err != nil {
		return err
	}

	s, err := an.Find(typeName)
	if err != nil {
		return err
	}

	state, params := a.typeRefs(shape.DefaultResourceState, shape.DefaultParams)

	if a.emitShape {
		data, err := shape.Marshal(shape.NewDocument(s, state, params))
		if err != nil {
			return err
		}

		_, err = a.out.Write(data)

		return err
	}

	return a.writeFlattened(s, state, params)
}

func (a *app) writeFlattened(s *shape.Shape, state, params shape.TypeRef) error {
	f := flatten.New(state, params,
		flatten.WithLogger(a.log.WithName("flatten")),
		flatten.WithCache(a.cache),
	)

	m, err := f.Flatten(s)
	if err != nil {
		return err
	}

	data, err := flatten.ExportYAML(m)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)

	return err
}

type resolvedNode struct {
	Path     string   `yaml:"path"`
	Segments []string `yaml:"segments"`
	Kind     string   `yaml:"kind"`
	Optional bool     `yaml:"optional"`
	Type     string   `yaml:"type"`
}

func (a *app) resolve(file, path string) error {
	_, s, err := a.loadShape(file)
	if err != nil {
		return err
	}

	n, err := shape.ResolveString(s, path)
	if err != nil {
		return err
	}

	return a.writeYAML(resolvedNode{
		Path:     n.Path.String(),
		Segments: n.Path.Segments(),
		Kind:     n.Kind.String(),
		Optional: n.Optional,
		Type:     n.TypeString(),
	})
}

func (a *app) parse(path string) error {
	p, err := dotpath.Parse(path)
	if err != nil {
		return err
	}

	return a.writeYAML(p.Segments())
}

func (a *app) writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	_, err = a.out.Write(data)

	return err
}
