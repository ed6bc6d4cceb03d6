// Package manifestcheck provides a go/analysis based analyzer enforcing the
// scoped manifest convention: once a package advertises manifests, its
// scoped classes may only be consulted from other packages through one of
// those manifests.
//
// A package advertises a class by referencing it inside any ScopedManifest
// method (see the scoped package's Declarer). Packages that declare no
// manifests opt out of the convention entirely and their classes may be
// used freely.
package manifestcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var scopedPkgPath string

func init() {
	Analyzer.Flags.StringVar(&scopedPkgPath, "scoped-pkg", "github.com/goliatone/go-scoped",
		"import path of the scoped package whose Class type is checked")
}

// Analyzer is the manifest convention checker.
var Analyzer = &analysis.Analyzer{
	Name:      "manifestcheck",
	Doc:       "checks that scoped classes are consulted through advertised manifests",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	FactTypes: []analysis.Fact{(*advertisedFact)(nil), (*declaresManifestsFact)(nil)},
}

// advertisedFact marks a package-level scoped class variable that some
// manifest in its home package advertises.
type advertisedFact struct{}

func (*advertisedFact) AFact()         {}
func (*advertisedFact) String() string { return "advertised" }

// declaresManifestsFact marks a package that declares at least one
// manifest, putting the convention in force for its classes.
type declaresManifestsFact struct{}

func (*declaresManifestsFact) AFact()         {}
func (*declaresManifestsFact) String() string { return "declares manifests" }

const manifestMethodName = "ScopedManifest"

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	manifestRanges, advertised := collectManifests(pass)

	if len(manifestRanges) > 0 {
		pass.ExportPackageFact(&declaresManifestsFact{})
	}
	exportClassFacts(pass, advertised)

	reportUnadvertisedUses(pass, insp, manifestRanges)

	return nil, nil
}

type posRange struct {
	start, end token.Pos
}

func (r posRange) contains(pos token.Pos) bool {
	return r.start <= pos && pos <= r.end
}

// collectManifests finds every ScopedManifest method declared in the
// package, returning the body ranges and the set of class objects those
// bodies reference.
func collectManifests(pass *analysis.Pass) ([]posRange, map[types.Object]bool) {
	var ranges []posRange
	advertised := make(map[types.Object]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || fn.Name.Name != manifestMethodName || fn.Body == nil {
				continue
			}
			ranges = append(ranges, posRange{start: fn.Body.Pos(), end: fn.Body.End()})
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				ident, ok := n.(*ast.Ident)
				if !ok {
					return true
				}
				if obj := pass.TypesInfo.Uses[ident]; obj != nil && isClassVar(obj) {
					advertised[obj] = true
				}
				return true
			})
		}
	}

	return ranges, advertised
}

// exportClassFacts attaches an advertisedFact to every package-level class
// variable of the current package that a manifest references.
func exportClassFacts(pass *analysis.Pass, advertised map[types.Object]bool) {
	scope := pass.Pkg.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !isClassVar(obj) {
			continue
		}
		if advertised[obj] {
			pass.ExportObjectFact(obj, &advertisedFact{})
		}
	}
}

// reportUnadvertisedUses flags cross-package references to class variables
// whose home package declares manifests but does not advertise them.
// References inside ScopedManifest bodies are exempt; they are the
// advertising mechanism itself.
func reportUnadvertisedUses(pass *analysis.Pass, insp *inspector.Inspector, manifestRanges []posRange) {
	nodeFilter := []ast.Node{(*ast.Ident)(nil)}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		ident := n.(*ast.Ident)
		obj := pass.TypesInfo.Uses[ident]
		if obj == nil || !isClassVar(obj) {
			return
		}
		home := obj.Pkg()
		if home == nil || home == pass.Pkg {
			return
		}
		if !pass.ImportPackageFact(home, &declaresManifestsFact{}) {
			return
		}
		if pass.ImportObjectFact(obj, &advertisedFact{}) {
			return
		}
		for _, r := range manifestRanges {
			if r.contains(ident.Pos()) {
				return
			}
		}
		pass.Reportf(ident.Pos(), "scoped class %q is not advertised by any manifest of package %s",
			obj.Name(), home.Path())
	})
}

// isClassVar reports whether obj is a package-level variable of type
// *scoped.Class[...] (or a field of that type on a manifest struct).
func isClassVar(obj types.Object) bool {
	v, ok := obj.(*types.Var)
	if !ok || v.IsField() {
		return false
	}
	return isClassPointer(v.Type())
}

func isClassPointer(t types.Type) bool {
	ptr, ok := t.Underlying().(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj == nil || obj.Name() != "Class" || obj.Pkg() == nil {
		return false
	}
	path := obj.Pkg().Path()
	return path == scopedPkgPath || strings.HasSuffix(path, "/"+scopedPkgPath)
}
