package constraintlint

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

const beanvalidatorPath = "github.com/nakamurakj/bean-validation/pkg/beanvalidator"

// Analyzer checks constraint struct tags and DeclareConstraints methods.
var Analyzer = &analysis.Analyzer{
	Name:     "constraintlint",
	Doc:      "checks that constraint tags parse, sit on string fields, and that DeclareConstraints names real fields",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	inspect.WithStack([]ast.Node{(*ast.StructType)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		owner := enclosingTypeName(stack)
		for _, field := range n.(*ast.StructType).Fields.List {
			checkField(pass, owner, field)
		}
		return true
	})

	inspect.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		checkDeclarer(pass, n.(*ast.FuncDecl))
	})

	return nil, nil
}

// checkField reports a constraint tag that does not parse, carries an
// invalid configuration, or sits on a field that cannot hold a string.
func checkField(pass *analysis.Pass, owner string, field *ast.Field) {
	if field.Tag == nil || hasNoLint(field.Doc) || hasNoLint(field.Comment) {
		return
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return
	}
	tag := reflect.StructTag(raw)
	value, ok := tag.Lookup(bv.TagName)
	if !ok {
		return
	}
	name := fieldJSONName(field, tag)

	if t := pass.TypesInfo.TypeOf(field.Type); t != nil && !isStringType(t) {
		pass.Reportf(field.Tag.Pos(), "constraint tag on field %s of non-string type %s", name, t)
		return
	}

	constraints, err := bv.ParseTag(name, value)
	if err != nil {
		pass.Reportf(field.Tag.Pos(), "invalid constraint tag on field %s: %v", name, err)
		return
	}
	if err := bv.ValidateConstraints(owner, constraints); err != nil {
		pass.Reportf(field.Tag.Pos(), "invalid constraint tag on field %s: %v", name, err)
	}
}

// enclosingTypeName returns the name of the innermost type declaration in
// stack, or "struct" for an anonymous struct.
func enclosingTypeName(stack []ast.Node) string {
	for i := len(stack) - 1; i >= 0; i-- {
		if ts, ok := stack[i].(*ast.TypeSpec); ok {
			return ts.Name.Name
		}
	}
	return "struct"
}

// checkDeclarer reports field names passed to Constrain or ConstrainKind
// inside a DeclareConstraints method that the receiver struct does not have.
func checkDeclarer(pass *analysis.Pass, fn *ast.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) == 0 || fn.Body == nil {
		return
	}
	if fn.Name.Name != "DeclareConstraints" || hasNoLint(fn.Doc) {
		return
	}

	recvType := pass.TypesInfo.TypeOf(fn.Recv.List[0].Type)
	if recvType == nil {
		return
	}
	if ptrType, ok := recvType.(*types.Pointer); ok {
		recvType = ptrType.Elem()
	}
	namedType, ok := recvType.(*types.Named)
	if !ok {
		return
	}
	structType, ok := namedType.Underlying().(*types.Struct)
	if !ok {
		return
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 || !isConstrainCall(pass, call) {
			return true
		}
		tv, ok := pass.TypesInfo.Types[call.Args[0]]
		if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
			return true
		}
		fieldName := constant.StringVal(tv.Value)
		if findFieldInStruct(structType, fieldName) != nil {
			return true
		}

		msg := fmt.Sprintf("DeclareConstraints names field %q which is not on %s", fieldName, namedType.Obj().Name())
		if suggestions := findSimilarFields(structType, fieldName); len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		pass.Reportf(call.Args[0].Pos(), "%s", msg)
		return true
	})
}

func isConstrainCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	var ident *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		ident = fun.Sel
	case *ast.Ident:
		ident = fun
	default:
		return false
	}
	obj, ok := pass.TypesInfo.Uses[ident].(*types.Func)
	if !ok || obj.Pkg() == nil || obj.Pkg().Path() != beanvalidatorPath {
		return false
	}
	return obj.Name() == "Constrain" || obj.Name() == "ConstrainKind"
}

func isStringType(t types.Type) bool {
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsString != 0
}

// fieldJSONName returns the name a field is addressed by in constraints:
// its json tag name, or its Go name.
func fieldJSONName(field *ast.Field, tag reflect.StructTag) string {
	if name, _, _ := strings.Cut(tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	return types.ExprString(field.Type)
}

func jsonName(v *types.Var, tag string) string {
	if name, _, _ := strings.Cut(reflect.StructTag(tag).Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return v.Name()
}

// findFieldInStruct searches for a field by JSON name, including embedded structs.
func findFieldInStruct(structType *types.Struct, name string) *types.Var {
	return findFieldInStructRecursive(structType, name, make(map[*types.Struct]bool))
}

func findFieldInStructRecursive(structType *types.Struct, name string, visited map[*types.Struct]bool) *types.Var {
	if visited[structType] {
		return nil
	}
	visited[structType] = true

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Embedded() && jsonName(field, structType.Tag(i)) == name {
			return field
		}
		if field.Embedded() {
			if embedded := embeddedStruct(field); embedded != nil {
				if found := findFieldInStructRecursive(embedded, name, visited); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

func embeddedStruct(field *types.Var) *types.Struct {
	t := field.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	s, _ := t.Underlying().(*types.Struct)
	return s
}

// findSimilarFields suggests JSON names that differ from target by one or two
// letters or contain it.
func findSimilarFields(structType *types.Struct, target string) []string {
	var suggestions []string
	targetLower := strings.ToLower(target)

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if field.Embedded() {
			continue
		}
		name := jsonName(field, structType.Tag(i))
		lower := strings.ToLower(name)

		if len(lower) == len(targetLower) {
			diffs := 0
			for j := 0; j < len(lower); j++ {
				if lower[j] != targetLower[j] {
					diffs++
				}
			}
			if diffs > 0 && diffs <= 2 {
				suggestions = append(suggestions, name)
				continue
			}
		}
		if name != target && (strings.Contains(lower, targetLower) || strings.Contains(targetLower, lower)) {
			suggestions = append(suggestions, name)
		}
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

// hasNoLint reports a nolint:constraintlint or nolint:all directive.
func hasNoLint(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	text := cg.Text()
	return strings.Contains(text, "nolint:constraintlint") || strings.Contains(text, "nolint:all")
}
