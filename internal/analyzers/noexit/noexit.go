// Package noexit implements an analyzer that keeps process exits in package main.
//
// Library code reports failures as errors; only a command decides to terminate. The
// analyzer flags calls to os.Exit, log.Fatal*, log.Panic* and the Fatal methods of zap
// loggers in every package except main. Test files and generated files are skipped.
package noexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "forbid process exits (os.Exit, log.Fatal, zap Fatal) outside package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg == nil || pass.Pkg.Name() == "main" {
		return nil, nil
	}

	skip := make(map[*ast.File]bool)
	for _, f := range pass.Files {
		name := pass.Fset.Position(f.Pos()).Filename
		if strings.HasSuffix(name, "_test.go") || ast.IsGenerated(f) {
			skip[f] = true
		}
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		if f, ok := stack[0].(*ast.File); ok && skip[f] {
			return false
		}

		call := n.(*ast.CallExpr)
		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil {
			return true
		}
		if name, bad := exitCall(fn); bad {
			pass.Reportf(call.Pos(), "%s terminates the process; return an error and let main decide", name)
		}
		return true
	})
	return nil, nil
}

// exitCall reports whether fn terminates the process and how to name it.
func exitCall(fn *types.Func) (string, bool) {
	pkg, name := fn.Pkg().Path(), fn.Name()

	if recv := fn.Type().(*types.Signature).Recv(); recv != nil {
		if pkg == "go.uber.org/zap" && strings.HasPrefix(name, "Fatal") {
			return "zap " + name, true
		}
		return "", false
	}

	switch {
	case pkg == "os" && name == "Exit":
		return "os.Exit", true
	case pkg == "log" && (strings.HasPrefix(name, "Fatal") || strings.HasPrefix(name, "Panic")):
		return "log." + name, true
	}
	return "", false
}
